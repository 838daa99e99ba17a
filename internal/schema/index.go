package schema

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Index looks up descriptors by name while keeping authoring order.
type Index struct {
	objects   *linkedhashmap.Map // name -> *Object
	callables *linkedhashmap.Map // name -> *Callable

	// DuplicateObjects and DuplicateCallables hold names seen more than once.
	// The first declaration is the one indexed.
	DuplicateObjects   []string
	DuplicateCallables []string
}

// NewIndex indexes the descriptors of doc. The index points into doc.
func NewIndex(doc *Document) *Index {
	idx := &Index{
		objects:   linkedhashmap.New(),
		callables: linkedhashmap.New(),
	}

	for i := range doc.Objects {
		o := &doc.Objects[i]
		if _, found := idx.objects.Get(o.Name); found {
			idx.DuplicateObjects = append(idx.DuplicateObjects, o.Name)
			continue
		}

		idx.objects.Put(o.Name, o)
	}

	for i := range doc.Callables {
		c := &doc.Callables[i]
		if _, found := idx.callables.Get(c.Name); found {
			idx.DuplicateCallables = append(idx.DuplicateCallables, c.Name)
			continue
		}

		idx.callables.Put(c.Name, c)
	}

	return idx
}

// Object returns the object named name.
func (idx *Index) Object(name string) (*Object, bool) {
	v, found := idx.objects.Get(name)
	if !found {
		return nil, false
	}

	return v.(*Object), true
}

// Callable returns the callable named name.
func (idx *Index) Callable(name string) (*Callable, bool) {
	v, found := idx.callables.Get(name)
	if !found {
		return nil, false
	}

	return v.(*Callable), true
}

// Objects returns the indexed objects in authoring order.
func (idx *Index) Objects() []*Object {
	out := make([]*Object, 0, idx.objects.Size())

	it := idx.objects.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*Object))
	}

	return out
}

// Callables returns the indexed callables in authoring order.
func (idx *Index) Callables() []*Callable {
	out := make([]*Callable, 0, idx.callables.Size())

	it := idx.callables.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*Callable))
	}

	return out
}

// ObjectNames returns object names in authoring order.
func (idx *Index) ObjectNames() []string {
	out := make([]string, 0, idx.objects.Size())
	for _, k := range idx.objects.Keys() {
		out = append(out, k.(string))
	}

	return out
}

// Ancestors returns the parent chain of o, nearest first. It stops at an
// unknown parent or when the chain loops back; cycle reports the latter.
func (idx *Index) Ancestors(o *Object) (chain []*Object, cycle bool) {
	seen := map[string]struct{}{o.Name: {}}

	for cur := o; cur.Parent != ""; {
		parent, ok := idx.Object(cur.Parent)
		if !ok {
			return chain, false
		}

		if _, dup := seen[parent.Name]; dup {
			return chain, true
		}

		seen[parent.Name] = struct{}{}
		chain = append(chain, parent)
		cur = parent
	}

	return chain, false
}
