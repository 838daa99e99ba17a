package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepr(t *testing.T) {
	tag := "blue"
	p, err := newPoint(point{X: 4, Tag: &tag})
	require.NoError(t, err)

	assert.Equal(t, `Point(x=4, kind="point", tag="blue")`, p.String())

	p.Tag = nil
	assert.Equal(t, `Point(x=4, kind="point", tag=nil)`, p.String())

	nested := Repr("Line", Names{"points", "closed"}, []*point{p}, false)
	assert.Equal(t, `Line(points=[Point(x=4, kind="point", tag=nil)], closed=false)`, nested)
}

func TestNames(t *testing.T) {
	n := Names{"x", "kind"}
	assert.True(t, n.Has("kind"))
	assert.False(t, n.Has("Kind"))

	l := n.List()
	l[0] = "changed"
	assert.Equal(t, "x", n[0])
}

func TestObjectMap(t *testing.T) {
	m, err := ObjectMap(map[string]any{}, "Point")
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = ObjectMap(map[string]any{"x": 1}, "Point")
	require.NoError(t, err)
	assert.Len(t, m, 1)

	_, err = ObjectMap([]any{}, "Point")

	var ce *CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Point", ce.Type.Name)
}

func TestDescribe(t *testing.T) {
	out := Describe(map[string]any{"b": 1, "a": "x"})
	assert.Equal(t, "(map[string]interface {})map[a:(string)x b:(int)1]", out)
}

