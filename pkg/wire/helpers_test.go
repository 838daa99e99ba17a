package wire

import (
	"errors"
)

// point is a hand-assembled value object in the shape the generator emits.
type point struct {
	X    int64
	Kind string
	Tag  *string
}

var (
	codecPoint     Codec[*point]
	fieldPointX    *Field
	fieldPointKind *Field
	fieldPointTag  *Field
)

func init() {
	codecPoint = Object[*point]("Point", pointFromWire)

	fieldPointX = &Field{Name: "x", Key: "x", Candidates: []Candidate{Integer}}
	fieldPointKind = &Field{Name: "kind", Key: "kind", Candidates: []Candidate{String}, Const: "point"}
	fieldPointTag = &Field{Name: "tag", Key: "tag", Candidates: []Candidate{String}, Optional: true}
}

var pointFieldNames = Names{"x", "kind", "tag"}

func newPoint(v point) (*point, error) {
	if v.Kind == "" {
		v.Kind = "point"
	}

	p := v
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p *point) Validate() error {
	return errors.Join(
		fieldPointX.Check(p.X),
		fieldPointKind.Check(p.Kind),
		fieldPointTag.Check(Deref(p.Tag)),
	)
}

func (p *point) ToWire() (map[string]any, error) {
	m := make(map[string]any, 3)
	if err := Put(m, fieldPointX, p.X); err != nil {
		return nil, err
	}

	if err := Put(m, fieldPointKind, p.Kind); err != nil {
		return nil, err
	}

	if err := Put(m, fieldPointTag, Deref(p.Tag)); err != nil {
		return nil, err
	}

	return m, nil
}

func (p *point) String() string {
	return Repr("Point", pointFieldNames, p.X, p.Kind, p.Tag)
}

func pointFromWire(raw any, sink Sink) (*point, error) {
	m, err := ObjectMap(raw, "Point")
	if err != nil || m == nil {
		return nil, err
	}

	var v point

	r, err := Deserialize(m[fieldPointX.Key], fieldPointX, sink)
	if err != nil {
		return nil, err
	}

	Take(r, 0, &v.X)

	r, err = Deserialize(m[fieldPointKind.Key], fieldPointKind, sink)
	if err != nil {
		return nil, err
	}

	Take(r, 0, &v.Kind)

	r, err = Deserialize(m[fieldPointTag.Key], fieldPointTag, sink)
	if err != nil {
		return nil, err
	}

	TakePtr(r, 0, &v.Tag)

	return newPoint(v)
}
