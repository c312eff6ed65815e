package immargs

import "strings"

// optionKind distinguishes ordinary option slots from the two reserved,
// engine-recognized slots that short-circuit the parse.
type optionKind int

const (
	optionPlain optionKind = iota
	optionHelp
	optionVersion
)

// conflict tag encoding: exclusion tags are stored as "!id" and forced-choice
// tags as "?id", so the two kinds with the same id form distinct groups.
const (
	exclusionPrefix = "!"
	choicePrefix    = "?"
)

// Option is one declared option slot. Immutable once the owning Spec has been
// validated, so validated Specs may be shared across concurrent parses.
type Option struct {
	names     []string // "-x" and "--xyz" forms, in declaration order
	field     string   // result field identifier, from the first long name
	valueName string   // display name of the value, e.g. "level"
	decode    Decoder  // nil for valueless options
	variadic  bool
	conflicts []string // encoded conflict tags
	help      string
	kind      optionKind
	usage     string // computed at validation time, e.g. "-l, --log <level>"
}

func (o *Option) takesValue() bool {
	return o.decode != nil
}

// primaryName is the name used in choice diagnostics: the first long name,
// falling back to the first name declared.
func (o *Option) primaryName() string {
	for _, name := range o.names {
		if strings.HasPrefix(name, dashDash) {
			return name
		}
	}
	return o.names[0]
}

// CommandEntry is one declared sub-command: a canonical name, its aliases and
// optional help text.
type CommandEntry struct {
	Name    string
	Aliases []string
	Help    string
}

// NonOption is one declared positional slot. A non-nil command table marks it
// as the sub-command selector.
type NonOption struct {
	name      string // display name, without brackets
	field     string
	decode    Decoder
	optional  bool
	variadic  bool
	conflicts []string
	help      string
	commands  []CommandEntry
	usage     string // computed at validation time, e.g. "[<files>...]"
}

func (n *NonOption) isCommand() bool {
	return n.commands != nil
}

// displayName is the angle-bracketed form used in diagnostics.
func (n *NonOption) displayName() string {
	return "<" + n.name + ">"
}

// Spec is an immutable description of the arguments a program accepts. Build
// it once at startup with New and the fluent Option/Arg builders, then parse
// any number of argument vectors against it. A validated Spec is read-only
// and safe for concurrent use; per-parse state lives in the Result.
type Spec struct {
	name       string
	version    string
	options    []*Option
	nonOptions []*NonOption
	validated  bool
	err        *SpecError // first authoring error observed by the builders
}

// New creates an empty Spec. The name is used in version output; usage and
// help output use the binary name from the parsed argument vector instead.
func New(name string) *Spec {
	return &Spec{name: name}
}

// Version sets the version string reported by a reserved --version option.
func (s *Spec) Version(version string) *Spec {
	s.version = version
	return s
}

// Option declares an option slot with the given names ("-f", "--force").
// Later builder calls refine it; by default it is a valueless boolean option.
func (s *Spec) Option(names ...string) *OptionBuilder {
	opt := &Option{names: names}
	s.options = append(s.options, opt)
	return &OptionBuilder{spec: s, opt: opt}
}

// Arg declares a positional slot. Declaration order is binding order. The
// default decoder is DecodeString; by default the slot is required and takes
// exactly one token.
func (s *Spec) Arg(name string) *NonOptionBuilder {
	arg := &NonOption{name: name, decode: DecodeString}
	s.nonOptions = append(s.nonOptions, arg)
	return &NonOptionBuilder{spec: s, arg: arg}
}

// OptionBuilder refines a declared option slot.
type OptionBuilder struct {
	spec *Spec
	opt  *Option
}

// Value gives the option a value with a display name and a decoder.
func (b *OptionBuilder) Value(name string, decode Decoder) *OptionBuilder {
	b.opt.valueName = name
	b.opt.decode = decode
	return b
}

// Variadic makes the option repeatable with cumulative effect: valued options
// accumulate every value, valueless options count occurrences.
func (b *OptionBuilder) Variadic() *OptionBuilder {
	b.opt.variadic = true
	return b
}

// Conflict adds the option to exclusion groups: at most one member of each
// group may be set. An empty tag names the default group.
func (b *OptionBuilder) Conflict(tags ...string) *OptionBuilder {
	b.opt.conflicts = appendTags(b.opt.conflicts, exclusionPrefix, tags)
	return b
}

// Choice adds the option to forced-choice groups: exactly one member of each
// group must be set. An empty tag names the default group.
func (b *OptionBuilder) Choice(tags ...string) *OptionBuilder {
	b.opt.conflicts = appendTags(b.opt.conflicts, choicePrefix, tags)
	return b
}

// Help attaches help text shown in the options section of the help output.
func (b *OptionBuilder) Help(text string) *OptionBuilder {
	b.opt.help = text
	return b
}

// NonOptionBuilder refines a declared positional slot.
type NonOptionBuilder struct {
	spec *Spec
	arg  *NonOption
}

// Value replaces the slot's decoder (DecodeString by default).
func (b *NonOptionBuilder) Value(decode Decoder) *NonOptionBuilder {
	b.arg.decode = decode
	return b
}

// Optional marks the slot as allowed to receive no token.
func (b *NonOptionBuilder) Optional() *NonOptionBuilder {
	b.arg.optional = true
	return b
}

// Variadic makes the slot absorb every excess token left after each fixed
// slot has taken at most one. At most one slot per Spec may be variadic.
func (b *NonOptionBuilder) Variadic() *NonOptionBuilder {
	b.arg.variadic = true
	return b
}

// Conflict adds the slot to exclusion groups.
func (b *NonOptionBuilder) Conflict(tags ...string) *NonOptionBuilder {
	b.arg.conflicts = appendTags(b.arg.conflicts, exclusionPrefix, tags)
	return b
}

// Choice adds the slot to forced-choice groups.
func (b *NonOptionBuilder) Choice(tags ...string) *NonOptionBuilder {
	b.arg.conflicts = appendTags(b.arg.conflicts, choicePrefix, tags)
	return b
}

// Help attaches help text shown in the arguments section of the help output.
func (b *NonOptionBuilder) Help(text string) *NonOptionBuilder {
	b.arg.help = text
	return b
}

// Command marks the slot as the sub-command selector and declares one command
// with its aliases. Call it once per command, in the order commands should
// appear in help output. The slot must be the last one declared.
func (b *NonOptionBuilder) Command(name string, aliases ...string) *NonOptionBuilder {
	if b.arg.commands == nil {
		b.arg.commands = []CommandEntry{}
	}
	b.arg.commands = append(b.arg.commands, CommandEntry{Name: name, Aliases: aliases})
	return b
}

// CommandHelp attaches help text to the most recently declared command.
func (b *NonOptionBuilder) CommandHelp(text string) *NonOptionBuilder {
	if len(b.arg.commands) == 0 {
		b.spec.recordErr(specErrorf(b.arg.displayName(), "CommandHelp before any Command declaration"))
		return b
	}
	b.arg.commands[len(b.arg.commands)-1].Help = text
	return b
}

func (s *Spec) recordErr(err *SpecError) {
	if s.err == nil {
		s.err = err
	}
}

func appendTags(conflicts []string, prefix string, tags []string) []string {
	if len(tags) == 0 {
		tags = []string{""}
	}
	for _, tag := range tags {
		conflicts = append(conflicts, prefix+tag)
	}
	return conflicts
}
