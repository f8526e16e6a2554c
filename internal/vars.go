package internal

import "sort"

// Vars is a variable environment, mapping names to their current values.
type Vars map[string]Value

// Clone returns an independent copy of the environment. Values are immutable
// scalars, so later changes to either map never show through the other.
func (v Vars) Clone() Vars {
	r := make(Vars, len(v))
	for name, val := range v {
		r[name] = val
	}
	return r
}

// Lookup returns the value bound to name, if any.
func (v Vars) Lookup(name string) (Value, bool) {
	val, ok := v[name]
	return val, ok
}

// Names returns the bound names in sorted order.
func (v Vars) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Funcs is the function table. A single table is shared by every call frame.
type Funcs map[string]*FuncDef

// Names returns the defined function names in sorted order.
func (f Funcs) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
