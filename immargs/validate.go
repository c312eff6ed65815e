package immargs

import (
	"strings"
	"unicode/utf8"
)

const (
	helpLong    = "--help"
	versionLong = "--version"
)

// Validate checks the Spec once, before any parsing. Failures are authoring
// errors (*SpecError), surfaced at program startup rather than parse time.
// Validation is idempotent: a validated Spec always re-validates to nil, a
// rejected one always reports the same first error.
func (s *Spec) Validate() error {
	if s.err != nil {
		return s.err
	}
	if s.validated {
		return nil
	}

	v := &verifier{
		shorts: make(map[string]bool),
		longs:  make(map[string]bool),
		fields: make(map[string]bool),
	}

	for _, opt := range s.options {
		if err := s.validateOption(opt, v); err != nil {
			s.err = err
			return err
		}
	}
	if err := s.validateNonOptions(v); err != nil {
		s.err = err
		return err
	}
	if err := s.validateConflicts(); err != nil {
		s.err = err
		return err
	}
	if err := s.validateHelp(); err != nil {
		s.err = err
		return err
	}

	s.validated = true
	return nil
}

type verifier struct {
	shorts map[string]bool
	longs  map[string]bool
	fields map[string]bool
}

func (v *verifier) uniqueField(slot, field string) *SpecError {
	if v.fields[field] {
		return specErrorf(slot, "conflicts with previously declared argument")
	}
	v.fields[field] = true
	return nil
}

func (s *Spec) validateOption(opt *Option, v *verifier) *SpecError {
	if len(opt.names) == 0 {
		return specErrorf("", "option declared without names")
	}

	var shorts, longs []string
	for _, name := range opt.names {
		switch {
		case strings.Contains(name, equals):
			return specErrorf(name, "option name must not contain '='")
		case strings.HasPrefix(name, dashDash):
			if utf8.RuneCountInString(name[len(dashDash):]) < 2 {
				return specErrorf(name, "long option must be at least 2 characters")
			}
			if v.longs[name] {
				return specErrorf(name, "conflicts with previously declared long option")
			}
			v.longs[name] = true
			longs = append(longs, name)
		case strings.HasPrefix(name, dash) && name != dash:
			if utf8.RuneCountInString(name[len(dash):]) != 1 {
				return specErrorf(name, "short option must be a single character")
			}
			if v.shorts[name] {
				return specErrorf(name, "conflicts with previously declared short option")
			}
			v.shorts[name] = true
			shorts = append(shorts, name)
		default:
			return specErrorf(name, "option name must start with '-' or '--'")
		}
	}

	// The first long name anchors the result field, falling back to the
	// first short name.
	if len(longs) > 0 {
		opt.field = strings.TrimPrefix(longs[0], dashDash)
	} else {
		opt.field = strings.TrimPrefix(shorts[0], dash)
	}
	if err := v.uniqueField(opt.names[0], opt.field); err != nil {
		return err
	}

	for _, long := range longs {
		switch long {
		case helpLong:
			opt.kind = optionHelp
		case versionLong:
			opt.kind = optionVersion
		default:
			continue
		}
		if opt.takesValue() || opt.variadic || len(opt.conflicts) > 0 {
			return specErrorf(long,
				"special option cannot take a value, be variadic, or have conflicts")
		}
	}

	opt.usage = optionUsage(shorts, longs, opt.valueName)
	return nil
}

func (s *Spec) validateNonOptions(v *verifier) *SpecError {
	var hasVariadic, hasCommand bool

	for _, arg := range s.nonOptions {
		if arg.name == "" {
			return specErrorf("", "argument declared without a name")
		}
		arg.field = arg.name
		if err := v.uniqueField(arg.displayName(), arg.field); err != nil {
			return err
		}

		switch {
		case arg.isCommand() && arg.variadic:
			return specErrorf(arg.displayName(), "command argument cannot be variadic")
		case hasVariadic && arg.variadic:
			return specErrorf(arg.displayName(), "cannot have multiple variadic arguments")
		case hasVariadic && arg.isCommand():
			return specErrorf(arg.displayName(), "command argument cannot follow variadic argument")
		case hasCommand:
			return specErrorf(arg.displayName(), "arguments cannot follow command argument")
		}
		hasVariadic = hasVariadic || arg.variadic
		hasCommand = hasCommand || arg.isCommand()

		if arg.isCommand() {
			if err := validateCommands(arg); err != nil {
				return err
			}
		}

		arg.usage = nonOptionUsage(arg)
	}

	return nil
}

func validateCommands(arg *NonOption) *SpecError {
	if len(arg.commands) == 0 {
		return specErrorf(arg.displayName(), "command argument declares no commands")
	}

	seen := make(map[string]bool)
	for _, cmd := range arg.commands {
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			if name == "" {
				return specErrorf(arg.displayName(), "command name must not be empty")
			}
			if seen[name] {
				return specErrorf(arg.displayName(), "duplicate command name or alias '%s'", name)
			}
			seen[name] = true
		}
	}
	return nil
}

// validateConflicts rejects groups that can never trigger: a group with one
// member has no effect, and a group with two positional members could only
// be checked after all positions are filled.
func (s *Spec) validateConflicts() *SpecError {
	type member struct {
		slot      string
		nonOption bool
	}
	groups := make(map[string][]member)
	var order []string

	add := func(tag, slot string, nonOption bool) {
		if _, ok := groups[tag]; !ok {
			order = append(order, tag)
		}
		groups[tag] = append(groups[tag], member{slot: slot, nonOption: nonOption})
	}
	for _, opt := range s.options {
		for _, tag := range opt.conflicts {
			add(tag, opt.primaryName(), false)
		}
	}
	for _, arg := range s.nonOptions {
		for _, tag := range arg.conflicts {
			add(tag, arg.displayName(), true)
		}
	}

	for _, tag := range order {
		members := groups[tag]
		if len(members) == 1 {
			return specErrorf(members[0].slot, "conflict has no effect")
		}
		numNonOptions := 0
		for _, m := range members {
			if m.nonOption {
				numNonOptions++
			}
			if numNonOptions > 1 {
				return specErrorf(m.slot, "non-options cannot conflict with each other")
			}
		}
	}

	return nil
}

// validateHelp rejects option help text that could never be shown: without a
// --help option there is nothing to trigger rendering. Help text on
// positional slots and command entries is allowed either way.
func (s *Spec) validateHelp() *SpecError {
	helpOption := false
	helpText := false

	for _, opt := range s.options {
		helpOption = helpOption || opt.kind == optionHelp
		helpText = helpText || opt.help != ""
	}

	if helpText && !helpOption {
		return specErrorf("", "help text without --help option has no effect")
	}
	return nil
}

func optionUsage(shorts, longs []string, valueName string) string {
	names := make([]string, 0, len(shorts)+len(longs))
	names = append(names, shorts...)
	names = append(names, longs...)
	usage := strings.Join(names, ", ")
	if valueName != "" {
		usage += " <" + valueName + ">"
	}
	return usage
}

func nonOptionUsage(arg *NonOption) string {
	usage := arg.displayName()
	if arg.variadic {
		usage += "..."
	}
	if arg.optional {
		usage = "[" + usage + "]"
	}
	return usage
}
