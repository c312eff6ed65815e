package immargs

import (
	"strings"
	"unicode/utf8"
)

const (
	dash     = "-"
	dashDash = "--"
	equals   = "="
)

// lexState is the lexer state machine state.
type lexState int

const (
	// lexAny: the next token can be an option, an option value, or a
	// non-option.
	lexAny lexState = iota
	// lexShort: mid-way through a combined short-option cluster ("-abc").
	lexShort
	// lexValue: an attached value ("-o=v", "-ov", "--opt=v") is owed to the
	// next request.
	lexValue
	// lexNone: terminal; all remaining tokens are non-options.
	lexNone
)

// lexer turns a raw argument vector into option tokens, option values and a
// trailing block of non-options. It knows nothing about the Spec.
type lexer struct {
	state   lexState
	pending string // short remainder or attached value, meaning depends on state
	option  string // most recently returned option name, for diagnostics
	args    []string
	head    int // index of the next unconsumed token
}

func newLexer(args []string) *lexer {
	return &lexer{args: args}
}

func (l *lexer) peek() (string, bool) {
	if l.head >= len(l.args) {
		return "", false
	}
	return l.args[l.head], true
}

func (l *lexer) take() string {
	arg := l.args[l.head]
	l.head++
	return arg
}

// nextShort consumes the leading "-X" of a short-option token. Any remainder
// becomes either a pending attached value ("=..." with the '=' stripped) or a
// re-queued short cluster to be lexed on the next call.
func (l *lexer) nextShort(short string) string {
	_, size := utf8.DecodeRuneInString(short[len(dash):])
	if remaining := short[len(dash)+size:]; remaining != "" {
		if strings.HasPrefix(remaining, equals) {
			l.state = lexValue
			l.pending = remaining[len(equals):]
		} else {
			l.state = lexShort
			l.pending = dash + remaining
		}
		short = short[:len(dash)+size]
	}

	l.option = short
	return short
}

// nextLong splits "--opt=value" into an option name and a pending attached
// value. Without '=', the whole token is the option name.
func (l *lexer) nextLong(long string) string {
	if idx := strings.Index(long, equals); idx != -1 {
		l.state = lexValue
		l.pending = long[idx+len(equals):]
		long = long[:idx]
	}

	l.option = long
	return long
}

// nextOption returns the next option token, or ok=false once the stream has
// reached its non-option tail. Calling it again after ok=false is a
// programming error.
func (l *lexer) nextOption() (string, bool, error) {
	state := l.state
	l.state = lexAny

	switch state {
	case lexAny:
		arg, ok := l.peek()
		if ok && arg == dashDash {
			// Discard the terminator, and any that immediately follow it.
			for ok && arg == dashDash {
				l.take()
				arg, ok = l.peek()
			}
		} else if ok {
			if rest, isLong := strings.CutPrefix(arg, dashDash); isLong && rest != "" {
				return l.nextLong(l.take()), true, nil
			}
			if rest, isShort := strings.CutPrefix(arg, dash); isShort && rest != "" {
				return l.nextShort(l.take()), true, nil
			}
		}
		l.option = ""
		l.state = lexNone
		return "", false, nil
	case lexShort:
		return l.nextShort(l.pending), true, nil
	case lexValue:
		// A value was attached but the caller asked for another option.
		return "", false, errUnexpectedValue(l.option, l.pending)
	default:
		panic("immargs: nextOption called in non-option mode")
	}
}

// nextValue consumes the value owed to the immediately preceding option,
// either from pending attached state or as the next raw token.
func (l *lexer) nextValue() (string, error) {
	state := l.state
	l.state = lexAny

	switch state {
	case lexAny:
		if value, ok := l.peek(); ok {
			l.take()
			l.option = ""
			return value, nil
		}
		return "", errMissingValue(l.option)
	case lexShort:
		// pending is "-rest"; the dash was re-attached for re-lexing only.
		return l.pending[len(dash):], nil
	case lexValue:
		return l.pending, nil
	default:
		panic("immargs: nextValue called in non-option mode")
	}
}

// nonOptions returns the remaining tokens verbatim. Options must be
// exhausted first; calling this mid-cluster or with options left is a
// programming error.
func (l *lexer) nonOptions() ([]string, error) {
	if l.state == lexAny {
		if _, ok, err := l.nextOption(); err != nil {
			return nil, err
		} else if ok {
			panic("immargs: nonOptions called with options remaining")
		}
	}

	if l.state != lexNone {
		panic("immargs: nonOptions called with options remaining")
	}
	return l.args[l.head:], nil
}
