package immargs

import "fmt"

// Handler runs one sub-command. rest is the argument vector assembled for
// the command, with a synthetic "bin command" in position zero, ready to be
// parsed against the command's own Spec.
type Handler func(result *Result, rest []string) error

// Dispatcher routes a parsed sub-command to its registered handler. A
// Dispatcher wraps one Spec with a command slot; nesting Dispatchers inside
// Handlers gives arbitrarily deep command trees.
type Dispatcher struct {
	spec     *Spec
	handlers map[string]Handler
	fallback Handler
}

// NewDispatcher creates a Dispatcher for a Spec with a command slot.
func NewDispatcher(spec *Spec) *Dispatcher {
	return &Dispatcher{
		spec:     spec,
		handlers: make(map[string]Handler),
	}
}

// Handle registers the handler for a canonical command name. Aliases are
// normalized during parsing, so only canonical names are registered here.
func (d *Dispatcher) Handle(name string, handler Handler) *Dispatcher {
	d.handlers[name] = handler
	return d
}

// Fallback registers the handler invoked when the Spec's command slot is
// optional and no command was given.
func (d *Dispatcher) Fallback(handler Handler) *Dispatcher {
	d.fallback = handler
	return d
}

// Dispatch parses argv and invokes the matched command's handler. Parse
// errors, including help and version requests, propagate to the caller
// untouched; see Run for the exiting variant.
func (d *Dispatcher) Dispatch(argv []string) error {
	result, err := Parse(d.spec, argv)
	if err != nil {
		return err
	}
	return d.dispatch(result)
}

func (d *Dispatcher) dispatch(result *Result) error {
	name := result.Subcommand()
	if name == "" {
		if d.fallback != nil {
			return d.fallback(result, nil)
		}
		return fmt.Errorf("no command given and no fallback registered")
	}

	handler, ok := d.handlers[name]
	if !ok {
		// Declared in the Spec but never registered here.
		return fmt.Errorf("no handler registered for command '%s'", name)
	}
	return handler(result, result.Rest())
}
