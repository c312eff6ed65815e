package immargs

import (
	"strconv"
	"time"
)

// Decoder converts a raw command-line token into a typed value. A Decoder is
// attached to a slot at declaration time; the engine invokes it while binding
// and wraps any failure into an invalid-value diagnostic naming the token.
type Decoder func(raw string) (any, error)

// DecodeString accepts any token unchanged.
func DecodeString(raw string) (any, error) {
	return raw, nil
}

// DecodeInt decodes a token as an int, accepting 0x/0o/0b prefixes.
func DecodeInt(raw string) (any, error) {
	v, err := strconv.ParseInt(raw, 0, 0)
	if err != nil {
		return nil, err
	}
	return int(v), nil
}

// DecodeInt64 decodes a token as an int64, accepting 0x/0o/0b prefixes.
func DecodeInt64(raw string) (any, error) {
	return strconv.ParseInt(raw, 0, 64)
}

// DecodeUint decodes a token as a uint64, accepting 0x/0o/0b prefixes.
func DecodeUint(raw string) (any, error) {
	return strconv.ParseUint(raw, 0, 64)
}

// DecodeFloat decodes a token as a float64.
func DecodeFloat(raw string) (any, error) {
	return strconv.ParseFloat(raw, 64)
}

// DecodeBool decodes a token as a bool ("true", "false", "1", "0", ...).
func DecodeBool(raw string) (any, error) {
	return strconv.ParseBool(raw)
}

// DecodeDuration decodes a token as a time.Duration ("1h30m", "5s", ...).
func DecodeDuration(raw string) (any, error) {
	return time.ParseDuration(raw)
}
