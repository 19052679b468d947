package capsule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, c Capsule) Capsule {
	t.Helper()
	raw := Encode(c)
	decoded, err := Decode(raw)
	require.NoError(t, err)
	return decoded
}

func TestPrimitiveRoundTrip(t *testing.T) {
	assert.Equal(t, IntegerCapsule{Value: 7}, roundTrip(t, IntegerCapsule{Value: 7}))
	assert.Equal(t, BooleanCapsule{Value: true}, roundTrip(t, BooleanCapsule{Value: true}))
	assert.Equal(t, StringCapsule{Value: "hi"}, roundTrip(t, StringCapsule{Value: "hi"}))
	assert.Equal(t, UnicodeCapsule{Value: "hi"}, roundTrip(t, UnicodeCapsule{Value: "hi"}))
	assert.Equal(t, NoneCapsule{}, roundTrip(t, NoneCapsule{}))
}

func TestContainerRoundTrip(t *testing.T) {
	list := ListCapsule{Items: []Capsule{IntegerCapsule{Value: 1}, StringCapsule{Value: "a"}}}
	decoded := roundTrip(t, list)
	assert.Equal(t, list, decoded)

	tuple := TupleCapsule{Items: []Capsule{IntegerCapsule{Value: 1}}}
	assert.Equal(t, tuple, roundTrip(t, tuple))

	set := SetCapsule{Items: []Capsule{BooleanCapsule{Value: false}}}
	assert.Equal(t, set, roundTrip(t, set))

	dict := DictionaryCapsule{Items: map[string]Capsule{"k": IntegerCapsule{Value: 9}}}
	assert.Equal(t, dict, roundTrip(t, dict))
}

func TestHandleRoundTrip(t *testing.T) {
	id := uuid.New()
	decoded := roundTrip(t, HandleCapsule{ID: id})
	assert.Equal(t, HandleCapsule{ID: id}, decoded)
}

func TestDecodeMissingSerial(t *testing.T) {
	_, err := Decode(map[string]any{})
	require.Error(t, err)
}

func TestDecodeUnknownSerial(t *testing.T) {
	_, err := Decode(map[string]any{"serial": "nonexistent"})
	require.Error(t, err)
}

type stubAccessor struct {
	values map[uuid.UUID]any
}

func (a stubAccessor) Access(id uuid.UUID) (any, error) {
	v, ok := a.values[id]
	if !ok {
		return nil, assert.AnError
	}
	return v, nil
}

func TestWrapPrimitives(t *testing.T) {
	c, err := Wrap(true)
	require.NoError(t, err)
	assert.Equal(t, "boolean", c.Serial())

	c, err = Wrap(3)
	require.NoError(t, err)
	assert.Equal(t, "integer", c.Serial())

	c, err = Wrap("s")
	require.NoError(t, err)
	assert.Equal(t, "string", c.Serial())

	c, err = Wrap(nil)
	require.NoError(t, err)
	assert.Equal(t, "none", c.Serial())
}

func TestWrapUnsupportedType(t *testing.T) {
	_, err := Wrap(3.14)
	require.Error(t, err)
	var wrapErr *WrapTypeError
	assert.ErrorAs(t, err, &wrapErr)
}

func TestWrapTupleAndSet(t *testing.T) {
	c, err := Wrap(Tuple{1, "a"})
	require.NoError(t, err)
	assert.Equal(t, "tuple", c.Serial())

	c, err = Wrap(Set{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "set", c.Serial())
}

func TestHandleCapsuleActualValue(t *testing.T) {
	id := uuid.New()
	accessor := stubAccessor{values: map[uuid.UUID]any{id: "bound"}}
	value, err := HandleCapsule{ID: id}.ActualValue(accessor)
	require.NoError(t, err)
	assert.Equal(t, "bound", value)
}
