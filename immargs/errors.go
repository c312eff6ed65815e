package immargs

import (
	"fmt"
	"strings"
)

// ErrorType classifies parse-time diagnostics. Every failed parse returns a
// *ParseError carrying one of these categories, so hosts can react to the
// category instead of matching on message text.
type ErrorType string

const (
	// ErrorTypeInvalidOption reports an option token matching no declared slot.
	ErrorTypeInvalidOption ErrorType = "invalid_option"
	// ErrorTypeInvalidArgument reports a positional token no slot could absorb.
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	// ErrorTypeInvalidCommand reports a sub-command token matching no declared
	// command name or alias.
	ErrorTypeInvalidCommand ErrorType = "invalid_command"
	// ErrorTypeMissingArgument reports a required positional slot that
	// received no token.
	ErrorTypeMissingArgument ErrorType = "missing_argument"
	// ErrorTypeMissingChoice reports a forced-choice group with no set member.
	ErrorTypeMissingChoice ErrorType = "missing_choice"
	// ErrorTypeMissingValue reports an option requiring a value with none
	// available.
	ErrorTypeMissingValue ErrorType = "missing_value"
	// ErrorTypeUnexpectedValue reports a value attached to an option that
	// takes none.
	ErrorTypeUnexpectedValue ErrorType = "unexpected_value"
	// ErrorTypeConflictingArguments reports two set slots sharing a conflict
	// group.
	ErrorTypeConflictingArguments ErrorType = "conflicting_arguments"
	// ErrorTypeInvalidValue reports a value a slot's decoder rejected.
	ErrorTypeInvalidValue ErrorType = "invalid_value"
	// ErrorTypeVersionRequested signals that --version was used. Not a true
	// error: the Message holds the version text to display.
	ErrorTypeVersionRequested ErrorType = "version_requested"
	// ErrorTypeHelpRequested signals that --help was used. Not a true error:
	// the Message holds the rendered help text to display.
	ErrorTypeHelpRequested ErrorType = "help_requested"
)

// ParseError is a terminal parse diagnostic. The engine never retries: the
// first failure aborts the parse and propagates to the caller.
type ParseError struct {
	Type         ErrorType
	Option       string   // offending or owning option name, as the user typed it
	Arg          string   // offending token or slot display name
	Value        string   // offending value, for value-related categories
	Alternatives []string // forced-choice members, in declaration order
	Suggestion   string   // optional "did you mean" hint, empty when none
	Message      string
	Cause        error // decoder failure, for ErrorTypeInvalidValue
}

// Error implements the error interface. The message matches the category
// exactly; suggestions are carried separately so hosts control rendering.
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap exposes the decoder failure behind ErrorTypeInvalidValue.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

func errInvalidOption(option string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidOption,
		Option:  option,
		Message: fmt.Sprintf("invalid option '%s'", option),
	}
}

func errInvalidArgument(arg string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidArgument,
		Arg:     arg,
		Message: fmt.Sprintf("invalid argument '%s'", arg),
	}
}

func errInvalidCommand(arg string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidCommand,
		Arg:     arg,
		Message: fmt.Sprintf("invalid command '%s'", arg),
	}
}

func errMissingArgument(arg string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingArgument,
		Arg:     arg,
		Message: fmt.Sprintf("missing argument '%s'", arg),
	}
}

func errMissingChoice(alternatives []string) *ParseError {
	quoted := make([]string, len(alternatives))
	for i, alt := range alternatives {
		quoted[i] = fmt.Sprintf("'%s'", alt)
	}
	return &ParseError{
		Type:         ErrorTypeMissingChoice,
		Alternatives: alternatives,
		Message:      fmt.Sprintf("missing argument %s", strings.Join(quoted, " or ")),
	}
}

func errMissingValue(option string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingValue,
		Option:  option,
		Message: fmt.Sprintf("missing value for option '%s'", option),
	}
}

func errUnexpectedValue(option, value string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeUnexpectedValue,
		Option:  option,
		Value:   value,
		Message: fmt.Sprintf("unexpected value for option '%s': %s", option, value),
	}
}

func errConflictingArguments(arg0, arg1 string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeConflictingArguments,
		Arg:     arg0,
		Value:   arg1,
		Message: fmt.Sprintf("conflicting arguments '%s' and '%s'", arg0, arg1),
	}
}

func errInvalidValue(value string, cause error) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidValue,
		Value:   value,
		Cause:   cause,
		Message: fmt.Sprintf("cannot parse argument '%s': %v", value, cause),
	}
}

func errVersionRequested(message string) *ParseError {
	return &ParseError{Type: ErrorTypeVersionRequested, Message: message}
}

func errHelpRequested(message string) *ParseError {
	return &ParseError{Type: ErrorTypeHelpRequested, Message: message}
}

// SpecError reports an ill-formed specification. These are programmer
// mistakes detected before any user input is read, deliberately a different
// type from ParseError so hosts cannot confuse authoring bugs with bad input.
type SpecError struct {
	Slot    string // display name of the offending slot, empty for spec-wide errors
	Message string
}

func (e *SpecError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("%s: %s", e.Slot, e.Message)
	}
	return e.Message
}

func specErrorf(slot, format string, args ...any) *SpecError {
	return &SpecError{Slot: slot, Message: fmt.Sprintf(format, args...)}
}
