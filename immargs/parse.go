package immargs

import (
	"path/filepath"
	"strings"

	"github.com/pliden/go-immargs/internal/fuzzy"
)

// suggestDistance is the maximum edit distance for "did you mean" hints.
const suggestDistance = 2

// Parse runs the argument vector against the Spec. argv[0] is the binary
// name; the remaining tokens are lexed, bound and checked. The Spec is
// validated first if it has not been already.
//
// A nil error means every slot bound cleanly. A *ParseError carries the
// category and, for ErrorTypeHelpRequested and ErrorTypeVersionRequested,
// the text to display.
func Parse(spec *Spec, argv []string) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	p := &parser{
		spec:   spec,
		result: newResult(spec, binName(argv)),
	}
	if len(argv) > 0 {
		p.lex = newLexer(argv[1:])
	} else {
		p.lex = newLexer(nil)
	}

	if err := p.run(); err != nil {
		return nil, err
	}
	return p.result, nil
}

// binName derives the display name of the binary from argv[0].
func binName(argv []string) string {
	if len(argv) == 0 || argv[0] == "" {
		return "<program>"
	}
	return filepath.Base(argv[0])
}

// parser holds the state of a single parse. It is created per call, so a
// validated Spec can serve concurrent parses.
type parser struct {
	spec   *Spec
	lex    *lexer
	result *Result
}

func (p *parser) run() error {
	if err := p.bindOptions(); err != nil {
		return err
	}
	if err := p.bindNonOptions(); err != nil {
		return err
	}
	if err := p.checkConflicts(); err != nil {
		return err
	}
	return p.bindCommand()
}

// bindOptions drains the lexer's option phase, matching each token against
// the declared slots. The reserved help and version slots short-circuit the
// parse as soon as they are seen.
func (p *parser) bindOptions() error {
	for {
		name, ok, err := p.lex.nextOption()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		opt := p.spec.findOption(name)
		if opt == nil {
			perr := errInvalidOption(name)
			perr.Suggestion = fuzzy.FindBestOption(name, p.spec.optionNames(), suggestDistance)
			return perr
		}

		switch opt.kind {
		case optionHelp:
			return errHelpRequested(renderHelp(p.spec, p.result.binName))
		case optionVersion:
			return errVersionRequested(renderVersion(p.spec))
		}

		state := p.result.option(opt.field)
		state.usedName = name // last use wins, for diagnostics
		state.count++

		if opt.takesValue() {
			raw, err := p.lex.nextValue()
			if err != nil {
				return err
			}
			value, err := opt.decode(raw)
			if err != nil {
				perr := errInvalidValue(raw, err)
				perr.Option = name
				return perr
			}
			state.values = append(state.values, value)
		}
	}
}

// bindNonOptions distributes the trailing non-option tokens over the
// positional slots: one grant per required slot first, then one per optional
// slot, then the remainder to the variadic or command slot. Tokens are then
// drained and decoded in declaration order.
func (p *parser) bindNonOptions() error {
	rest, err := p.lex.nonOptions()
	if err != nil {
		return err
	}

	slots := p.spec.nonOptions
	grants := make([]int, len(slots))
	available := len(rest)

	for i, slot := range slots {
		if !slot.optional && !slot.variadic && !slot.isCommand() && available > 0 {
			grants[i] = 1
			available--
		}
	}
	for i, slot := range slots {
		if slot.optional && !slot.variadic && !slot.isCommand() && available > 0 {
			grants[i] = 1
			available--
		}
	}
	for i, slot := range slots {
		if slot.variadic || slot.isCommand() {
			grants[i] += available
			available = 0
			break
		}
	}

	head := 0
	for i, slot := range slots {
		state := p.result.arg(slot.field)
		for n := 0; n < grants[i]; n++ {
			raw := rest[head]
			head++
			if slot.isCommand() {
				// Raw tokens only: the first one is matched against the
				// command table in bindCommand, the rest pass through to
				// the sub-command's own parse.
				state.raw = append(state.raw, raw)
				continue
			}
			value, err := slot.decode(raw)
			if err != nil {
				perr := errInvalidValue(raw, err)
				perr.Arg = slot.displayName()
				return perr
			}
			state.values = append(state.values, value)
			state.raw = append(state.raw, raw)
		}
	}

	for _, slot := range slots {
		if !slot.optional && len(p.result.arg(slot.field).raw) == 0 {
			return errMissingArgument(slot.displayName())
		}
	}

	// Only now report tokens no slot could absorb, so a decode failure on a
	// granted token wins over trailing excess.
	if available > 0 {
		return errInvalidArgument(rest[len(rest)-available])
	}
	return nil
}

// checkConflicts walks all set slots in declaration order, options before
// non-options, claiming each conflict group for its first set member. A
// second claimant of any group is a conflict; a forced-choice group that
// ends up unclaimed is a missing choice.
func (p *parser) checkConflicts() error {
	claims := make(map[string]string)

	claim := func(tags []string, name string) error {
		for _, tag := range tags {
			if first, taken := claims[tag]; taken {
				if first != name {
					return errConflictingArguments(first, name)
				}
				continue
			}
			claims[tag] = name
		}
		return nil
	}

	for _, opt := range p.spec.options {
		state := p.result.option(opt.field)
		if state.count == 0 {
			continue
		}
		if err := claim(opt.conflicts, state.usedName); err != nil {
			return err
		}
	}
	for _, slot := range p.spec.nonOptions {
		if len(p.result.arg(slot.field).raw) == 0 {
			continue
		}
		if err := claim(slot.conflicts, slot.displayName()); err != nil {
			return err
		}
	}

	// Completeness: every forced-choice group must have a claimant. Groups
	// are visited in first-declaration order so diagnostics are stable.
	seen := make(map[string]bool)
	check := func(tags []string, alternatives func(string) []string) error {
		for _, tag := range tags {
			if !strings.HasPrefix(tag, choicePrefix) || seen[tag] {
				continue
			}
			seen[tag] = true
			if _, taken := claims[tag]; !taken {
				return errMissingChoice(alternatives(tag))
			}
		}
		return nil
	}
	for _, opt := range p.spec.options {
		if err := check(opt.conflicts, p.spec.groupMembers); err != nil {
			return err
		}
	}
	for _, slot := range p.spec.nonOptions {
		if err := check(slot.conflicts, p.spec.groupMembers); err != nil {
			return err
		}
	}
	return nil
}

// bindCommand matches the command slot's first token against the command
// table, normalizes aliases to the canonical name, and assembles the
// residual argument vector for the sub-command's parse.
func (p *parser) bindCommand() error {
	slot := p.spec.commandSlot()
	if slot == nil {
		return nil
	}

	state := p.result.arg(slot.field)
	if len(state.raw) == 0 {
		// Optional command slot left empty.
		return nil
	}

	entry := slot.findCommand(state.raw[0])
	if entry == nil {
		perr := errInvalidCommand(state.raw[0])
		perr.Suggestion = fuzzy.FindBestCommand(state.raw[0], slot.commandNames(), suggestDistance)
		return perr
	}

	p.result.subcommand = entry.Name
	p.result.residual = append(
		[]string{p.result.binName + " " + entry.Name}, state.raw[1:]...)
	state.values = []any{entry.Name}
	return nil
}

// findOption returns the slot declaring the given name, or nil.
func (s *Spec) findOption(name string) *Option {
	for _, opt := range s.options {
		for _, n := range opt.names {
			if n == name {
				return opt
			}
		}
	}
	return nil
}

// optionNames returns every declared option name, for suggestions.
func (s *Spec) optionNames() []string {
	var names []string
	for _, opt := range s.options {
		names = append(names, opt.names...)
	}
	return names
}

// commandSlot returns the sub-command slot, or nil when none is declared.
func (s *Spec) commandSlot() *NonOption {
	for _, slot := range s.nonOptions {
		if slot.isCommand() {
			return slot
		}
	}
	return nil
}

// groupMembers returns the primary names of every slot in a conflict group,
// in declaration order, options before non-options.
func (s *Spec) groupMembers(tag string) []string {
	var members []string
	for _, opt := range s.options {
		for _, t := range opt.conflicts {
			if t == tag {
				members = append(members, opt.primaryName())
			}
		}
	}
	for _, slot := range s.nonOptions {
		for _, t := range slot.conflicts {
			if t == tag {
				members = append(members, slot.displayName())
			}
		}
	}
	return members
}

func (n *NonOption) findCommand(name string) *CommandEntry {
	for i := range n.commands {
		entry := &n.commands[i]
		if entry.Name == name {
			return entry
		}
		for _, alias := range entry.Aliases {
			if alias == name {
				return entry
			}
		}
	}
	return nil
}

// commandNames returns every command name and alias, for suggestions.
func (n *NonOption) commandNames() []string {
	var names []string
	for _, entry := range n.commands {
		names = append(names, entry.Name)
		names = append(names, entry.Aliases...)
	}
	return names
}
