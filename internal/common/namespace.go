package common

import "strconv"

// Namespace hands out unique identifiers. The zero value is ready to use.
type Namespace struct {
	taken map[string]struct{}
}

// NewNamespace returns a namespace where the given names are already taken.
func NewNamespace(reserved ...string) *Namespace {
	ns := &Namespace{}
	for _, name := range reserved {
		ns.Reserve(name)
	}

	return ns
}

// Reserve takes name and reports whether it was free.
func (ns *Namespace) Reserve(name string) bool {
	if ns.taken == nil {
		ns.taken = make(map[string]struct{})
	}

	if _, ok := ns.taken[name]; ok {
		return false
	}

	ns.taken[name] = struct{}{}

	return true
}

// Name returns name if it is free, otherwise the first free of name2, name3...
// A "_" separates the counter when name already ends with a digit.
func (ns *Namespace) Name(name string) string {
	if ns.Reserve(name) {
		return name
	}

	sep := ""
	if last := name[len(name)-1]; last >= '0' && last <= '9' {
		sep = "_"
	}

	for i := 2; ; i++ {
		candidate := name + sep + strconv.Itoa(i)
		if ns.Reserve(candidate) {
			return candidate
		}
	}
}
