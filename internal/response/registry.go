package response

import "sort"

// Registry maps response function names to their implementations. It is the
// dispatch point for configuration-driven selection: callers resolve a name
// taken from config and invoke whatever function comes back.
//
// Registration is expected to happen during startup; the registry is safe
// for concurrent reads but not for registration concurrent with use.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a registry pre-populated with the built-in response
// shapes: "linear", "loglinear", and "saturating".
func NewRegistry() *Registry {
	r := &Registry{funcs: map[string]Func{}}
	r.funcs["linear"] = Linear
	r.funcs["loglinear"] = LogLinear
	r.funcs["saturating"] = Saturating
	return r
}

// Register adds a custom response function under the given name. Registering
// a name that already exists fails with a DuplicateNameError; existing
// entries are never overwritten.
func (r *Registry) Register(name string, fn Func) error {
	if _, exists := r.funcs[name]; exists {
		return &DuplicateNameError{Name: name}
	}
	r.funcs[name] = fn
	return nil
}

// Resolve returns the function registered under name, or an
// UnknownNameError listing the registered names.
func (r *Registry) Resolve(name string) (Func, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, &UnknownNameError{Name: name, Available: r.Names()}
	}
	return fn, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
