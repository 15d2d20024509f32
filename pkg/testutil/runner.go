package testutil

import (
	"context"
	"path/filepath"
)

// Call records a single tool invocation made through a FakeRunner
type Call struct {
	Name string
	Args []string
}

// FakeRunner is an osarun.Runner for tests. If Handler is set it decides the
// result of every call; otherwise Outputs/Errs are looked up by the tool's
// base name.
type FakeRunner struct {
	Calls   []Call
	Outputs map[string]string
	Errs    map[string]error
	Handler func(name string, args []string) (string, error)
}

func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})

	if f.Handler != nil {
		return f.Handler(name, args)
	}

	base := filepath.Base(name)
	if err, ok := f.Errs[base]; ok {
		return "", err
	}
	return f.Outputs[base], nil
}

// CallsTo returns the recorded calls whose tool base name matches tool
func (f *FakeRunner) CallsTo(tool string) []Call {
	var calls []Call
	for _, c := range f.Calls {
		if filepath.Base(c.Name) == tool {
			calls = append(calls, c)
		}
	}
	return calls
}
