package console

import (
	"fmt"

	"github.com/vipcxj/num/internal/num"
)

// Registry holds the named instances created in a console session. Names are
// "num1", "num2", ... in creation order and are never reused.
type Registry struct {
	counter int
	entries []Entry
	byName  map[string]num.Num
}

type Entry struct {
	Index int
	Name  string
	Value num.Num
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]num.Num)}
}

// Add stores n under the next free name and returns that name.
func (r *Registry) Add(n num.Num) string {
	r.counter++
	name := fmt.Sprintf("num%d", r.counter)
	r.entries = append(r.entries, Entry{Index: r.counter, Name: name, Value: n})
	r.byName[name] = n
	return name
}

// Lookup implements calc.Resolver.
func (r *Registry) Lookup(name string) (num.Num, bool) {
	n, ok := r.byName[name]
	return n, ok
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Select returns the entries whose index passes f, in creation order.
func (r *Registry) Select(f IndexFilter) []Entry {
	var out []Entry
	for _, e := range r.entries {
		if f.Test(e.Index) {
			out = append(out, e)
		}
	}
	return out
}
