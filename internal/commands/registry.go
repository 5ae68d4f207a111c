package commands

import (
	"cmp"
	"fmt"
	"slices"
)

// Registry resolves command names and aliases. It is filled from init
// functions and only read afterwards.
type Registry struct {
	commands []Command
	byName   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

func (r *Registry) Register(c Command) error {
	names := append([]string{c.Name()}, c.Aliases()...)
	if i := slices.IndexFunc(names, r.taken); i >= 0 {
		return fmt.Errorf("command name already registered: %s", names[i])
	}

	r.commands = append(r.commands, c)
	for _, name := range names {
		r.byName[name] = len(r.commands) - 1
	}
	return nil
}

func (r *Registry) taken(name string) bool {
	_, ok := r.byName[name]
	return ok
}

func (r *Registry) Find(name string) (Command, bool) {
	i, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.commands[i], true
}

// All returns the commands sorted by name.
func (r *Registry) All() []Command {
	sorted := slices.Clone(r.commands)
	slices.SortFunc(sorted, func(a, b Command) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return sorted
}

var DefaultRegistry = NewRegistry()

func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
