package wire

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserialize_FirstDeclaredCandidateWins(t *testing.T) {
	intFirst := &Field{Name: "n", Key: "n", Candidates: []Candidate{Integer, Float}}
	floatFirst := &Field{Name: "n", Key: "n", Candidates: []Candidate{Float, Integer}}

	for range 3 {
		r, err := Deserialize(json.Number("3"), intFirst, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, r.Index)
		assert.Equal(t, int64(3), r.Value)

		r, err = Deserialize(json.Number("3"), floatFirst, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, r.Index)
		assert.Equal(t, float64(3), r.Value)
	}
}

func TestDeserialize_FallsBackInOrder(t *testing.T) {
	f := &Field{Name: "chat_id", Key: "chat_id", Candidates: []Candidate{Integer, String}}
	rec := &Recorder{}

	r, err := Deserialize("@channel", f, rec)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Index)
	assert.Equal(t, String.Type(), r.Type)
	assert.Equal(t, "@channel", r.Value)

	rejections := rec.Rejections()
	require.Len(t, rejections, 1)
	assert.Equal(t, "chat_id", rejections[0].Field)
	assert.Equal(t, Integer.Type(), rejections[0].Candidate)
	assert.Equal(t, "@channel", rejections[0].Raw)
}

func TestDeserialize_OptionalAbsent(t *testing.T) {
	f := &Field{Name: "tag", Key: "tag", Candidates: []Candidate{Integer}, Optional: true}
	rec := &Recorder{}

	r, err := Deserialize(nil, f, rec)
	require.NoError(t, err)
	assert.False(t, r.Present())
	assert.Equal(t, -1, r.Index)
	assert.Empty(t, rec.Rejections())
}

func TestDeserialize_Exhausted(t *testing.T) {
	f := &Field{Name: "value", Key: "value", Candidates: []Candidate{Integer, codecPoint}}
	rec := &Recorder{}

	_, err := Deserialize("nope", f, rec)

	var pe *ParseExhausted
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "value", pe.Field)
	require.Len(t, pe.Failures, 2)
	assert.Equal(t, Integer.Type(), pe.Failures[0].Type)
	assert.Equal(t, "Point", pe.Failures[1].Type.Name)
	assert.Len(t, rec.Rejections(), 2)

	var ce *CoercionError
	assert.ErrorAs(t, err, &ce)
	assert.Contains(t, err.Error(), "no candidate type matched")
}

func TestDeserialize_RequiredNilTriesCandidates(t *testing.T) {
	f := &Field{Name: "id", Key: "id", Candidates: []Candidate{Integer}}

	_, err := Deserialize(nil, f, nil)

	var pe *ParseExhausted
	require.ErrorAs(t, err, &pe)
	assert.Len(t, pe.Failures, 1)
}

func TestDeserialize_EmptyObject(t *testing.T) {
	required := &Field{Name: "p", Key: "p", Candidates: []Candidate{codecPoint}}
	fallback := &Field{Name: "p", Key: "p", Candidates: []Candidate{codecPoint, Boolean}}
	optional := &Field{Name: "p", Key: "p", Candidates: []Candidate{codecPoint}, Optional: true}

	tests := []struct {
		name   string
		raw    any
		actual string
	}{
		{"nil", nil, "nil"},
		{"empty map", map[string]any{}, "empty map"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}

			_, err := Deserialize(tt.raw, required, rec)

			var pe *ParseExhausted
			require.ErrorAs(t, err, &pe)
			require.Len(t, pe.Failures, 1)

			var ce *CoercionError
			require.ErrorAs(t, pe.Failures[0].Err, &ce)
			assert.Equal(t, tt.actual, ce.Actual)
			assert.Len(t, rec.Rejections(), 1)

			_, err = Deserialize(tt.raw, fallback, nil)
			require.ErrorAs(t, err, &pe)
			assert.Len(t, pe.Failures, 2)

			r, err := Deserialize(tt.raw, optional, nil)
			require.NoError(t, err)
			assert.False(t, r.Present())
		})
	}
}

func TestDeserialize_ObjectConstantRejected(t *testing.T) {
	f := &Field{Name: "p", Key: "p", Candidates: []Candidate{codecPoint, String}}

	r, err := Deserialize(map[string]any{"x": int64(1), "kind": "circle"}, f, nil)

	var pe *ParseExhausted
	require.ErrorAs(t, err, &pe)
	assert.False(t, r.Present())

	var ve *ValidationError
	require.True(t, errors.As(pe.Failures[0].Err, &ve))
	assert.Equal(t, "kind", ve.Field)
}

func TestRoundTrip(t *testing.T) {
	tag := "t"
	values := []point{
		{X: 0},
		{X: -5, Tag: &tag},
		{X: 1 << 40, Kind: "point"},
	}

	for _, v := range values {
		p, err := newPoint(v)
		require.NoError(t, err)

		w, err := p.ToWire()
		require.NoError(t, err)

		back, err := pointFromWire(w, nil)
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
}

func TestFromWire_EmptyIsNoObject(t *testing.T) {
	p, err := pointFromWire(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = pointFromWire(map[string]any{}, nil)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestResolved_Take(t *testing.T) {
	r := Resolved{Index: 1, Type: String.Type(), Value: "x"}

	var n int64
	assert.False(t, Take(r, 0, &n))

	var s *string
	assert.True(t, TakePtr(r, 1, &s))
	require.NotNil(t, s)
	assert.Equal(t, "x", *s)

	assert.False(t, TakePtr(None, 1, &s))
}

func TestDeserialize_SinkFunc(t *testing.T) {
	f := &Field{Name: "flag", Key: "flag", Candidates: []Candidate{Boolean, String}}

	var got []Rejection

	r, err := Deserialize("yes", f, SinkFunc(func(rej Rejection) {
		got = append(got, rej)
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Index)

	require.Len(t, got, 1)
	assert.Equal(t, "flag", got[0].Field)
	assert.Equal(t, Builtin(NameBoolean), got[0].Candidate)
	assert.Equal(t, "yes", got[0].Raw)
}
