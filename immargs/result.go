package immargs

import "time"

// optionState is the per-parse state of one option slot.
type optionState struct {
	usedName string // name as last typed by the user, for diagnostics
	count    int    // occurrences
	values   []any  // decoded values, for valued options
}

// argState is the per-parse state of one positional slot.
type argState struct {
	raw    []string // tokens granted to the slot, verbatim
	values []any    // decoded values
}

// Result is the outcome of one successful parse. Slots are addressed by
// field name: the first long option name without its dashes, the first short
// name without its dash, or the positional slot's declared name.
type Result struct {
	spec       *Spec
	binName    string
	subcommand string
	residual   []string
	options    map[string]*optionState
	args       map[string]*argState
}

func newResult(spec *Spec, binName string) *Result {
	return &Result{
		spec:    spec,
		binName: binName,
		options: make(map[string]*optionState),
		args:    make(map[string]*argState),
	}
}

func (r *Result) option(field string) *optionState {
	state, ok := r.options[field]
	if !ok {
		state = &optionState{}
		r.options[field] = state
	}
	return state
}

func (r *Result) arg(field string) *argState {
	state, ok := r.args[field]
	if !ok {
		state = &argState{}
		r.args[field] = state
	}
	return state
}

// BinName returns the binary name derived from argv[0].
func (r *Result) BinName() string {
	return r.binName
}

// Subcommand returns the canonical name of the matched sub-command, or ""
// when the Spec declares no command slot or the slot is empty. Aliases are
// already normalized.
func (r *Result) Subcommand() string {
	return r.subcommand
}

// Rest returns the argument vector for the matched sub-command: a synthetic
// argv[0] of the form "bin command" followed by the tokens the command slot
// absorbed. Pass it to the sub-command's own Parse.
func (r *Result) Rest() []string {
	return r.residual
}

// Has reports whether the option or positional slot received any input.
func (r *Result) Has(field string) bool {
	if state, ok := r.options[field]; ok && state.count > 0 {
		return true
	}
	if state, ok := r.args[field]; ok && len(state.raw) > 0 {
		return true
	}
	return false
}

// Count returns the number of occurrences of a valueless variadic option,
// e.g. repeated -v.
func (r *Result) Count(field string) int {
	if state, ok := r.options[field]; ok {
		return state.count
	}
	return 0
}

// Get returns the decoded value of a slot, or nil when the slot is unset.
// For repeated non-variadic options, the last occurrence wins.
func (r *Result) Get(field string) any {
	if state, ok := r.options[field]; ok && len(state.values) > 0 {
		return state.values[len(state.values)-1]
	}
	if state, ok := r.args[field]; ok && len(state.values) > 0 {
		return state.values[0]
	}
	return nil
}

// GetAll returns every decoded value of a variadic slot, in the order the
// tokens appeared.
func (r *Result) GetAll(field string) []any {
	if state, ok := r.options[field]; ok && len(state.values) > 0 {
		return state.values
	}
	if state, ok := r.args[field]; ok {
		return state.values
	}
	return nil
}

// GetString returns a slot's value as a string, or "" when unset.
func (r *Result) GetString(field string) string {
	v, _ := r.Get(field).(string)
	return v
}

// GetInt returns a slot's value as an int, or 0 when unset.
func (r *Result) GetInt(field string) int {
	v, _ := r.Get(field).(int)
	return v
}

// GetInt64 returns a slot's value as an int64, or 0 when unset.
func (r *Result) GetInt64(field string) int64 {
	v, _ := r.Get(field).(int64)
	return v
}

// GetUint returns a slot's value as a uint64, or 0 when unset.
func (r *Result) GetUint(field string) uint64 {
	v, _ := r.Get(field).(uint64)
	return v
}

// GetFloat returns a slot's value as a float64, or 0 when unset.
func (r *Result) GetFloat(field string) float64 {
	v, _ := r.Get(field).(float64)
	return v
}

// GetBool returns a slot's value as a bool. For valueless options it reports
// whether the option was used at all.
func (r *Result) GetBool(field string) bool {
	if state, ok := r.options[field]; ok && len(state.values) == 0 {
		return state.count > 0
	}
	v, _ := r.Get(field).(bool)
	return v
}

// GetDuration returns a slot's value as a time.Duration, or 0 when unset.
func (r *Result) GetDuration(field string) time.Duration {
	v, _ := r.Get(field).(time.Duration)
	return v
}

// GetStringSlice returns every value of a variadic slot as strings,
// skipping values of other types.
func (r *Result) GetStringSlice(field string) []string {
	values := r.GetAll(field)
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Raw returns the verbatim tokens a positional slot absorbed.
func (r *Result) Raw(field string) []string {
	if state, ok := r.args[field]; ok {
		return state.raw
	}
	return nil
}
