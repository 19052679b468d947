package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeeves-cluster-organization/remoteable/capsule"
	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

type testObject struct {
	Value int
	items map[string]int
}

func (o *testObject) Method(arg int) int {
	o.Value += arg
	return o.Value
}

func TestFetchCommand(t *testing.T) {
	tbl := table.New()
	tbl.Export("obj", &testObject{Value: 20})

	resp := FetchCommand{Name: "obj"}.Execute(tbl)
	handleResp, ok := resp.(response.HandleResponse)
	require.True(t, ok)
	assert.Equal(t, 1, tbl.Size())
	_ = handleResp
}

func TestFetchCommandUnknownName(t *testing.T) {
	tbl := table.New()
	resp := FetchCommand{Name: "missing"}.Execute(tbl)
	assert.Equal(t, "error-access", resp.Serial())
}

func TestStoreCommand(t *testing.T) {
	tbl := table.New()
	resp := StoreCommand{Value: capsule.IntegerCapsule{Value: 42}}.Execute(tbl)
	_, ok := resp.(response.HandleResponse)
	require.True(t, ok)
	assert.Equal(t, 1, tbl.Size())
}

func TestReleaseCommand(t *testing.T) {
	tbl := table.New()
	tbl.Export("obj", 1)
	id, err := tbl.Fetch("obj")
	require.NoError(t, err)

	resp := ReleaseCommand{ID: id}.Execute(tbl)
	assert.Equal(t, "empty", resp.Serial())
	assert.Equal(t, 0, tbl.Size())

	resp = ReleaseCommand{ID: id}.Execute(tbl)
	assert.Equal(t, "error-access", resp.Serial())
}

func TestGetAttributeCommand(t *testing.T) {
	tbl := table.New()
	tbl.Export("obj", &testObject{Value: 20})
	id, err := tbl.Fetch("obj")
	require.NoError(t, err)

	resp := GetAttributeCommand{Target: id, Name: capsule.StringCapsule{Value: "Value"}}.Execute(tbl)
	handle, ok := resp.(response.HandleResponse)
	require.True(t, ok)
	stored, err := tbl.Access(handle.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored)
}

func TestGetAttributeCommandMissingReportsAttributeError(t *testing.T) {
	tbl := table.New()
	tbl.Export("obj", &testObject{Value: 20})
	id, err := tbl.Fetch("obj")
	require.NoError(t, err)

	resp := GetAttributeCommand{Target: id, Name: capsule.StringCapsule{Value: "Nope"}}.Execute(tbl)
	assert.Equal(t, "error-attribute", resp.Serial())
}

func TestSetAttributeCommand(t *testing.T) {
	tbl := table.New()
	obj := &testObject{Value: 20}
	tbl.Export("obj", obj)
	id, err := tbl.Fetch("obj")
	require.NoError(t, err)

	resp := SetAttributeCommand{Target: id, Name: capsule.StringCapsule{Value: "Value"}, Value: capsule.IntegerCapsule{Value: 30}}.Execute(tbl)
	assert.Equal(t, "empty", resp.Serial())
	assert.Equal(t, 30, obj.Value)
}

func TestGetItemCommand(t *testing.T) {
	tbl := table.New()
	tbl.Export("m", map[string]int{"a": 1})
	id, err := tbl.Fetch("m")
	require.NoError(t, err)

	resp := GetItemCommand{Target: id, Key: capsule.StringCapsule{Value: "a"}}.Execute(tbl)
	handle, ok := resp.(response.HandleResponse)
	require.True(t, ok)
	stored, err := tbl.Access(handle.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
}

func TestGetItemCommandMissingReportsGenericError(t *testing.T) {
	tbl := table.New()
	tbl.Export("m", map[string]int{"a": 1})
	id, err := tbl.Fetch("m")
	require.NoError(t, err)

	resp := GetItemCommand{Target: id, Key: capsule.StringCapsule{Value: "missing"}}.Execute(tbl)
	assert.Equal(t, "error", resp.Serial())
}

func TestSetItemCommand(t *testing.T) {
	tbl := table.New()
	m := map[string]int{"a": 1}
	tbl.Export("m", m)
	id, err := tbl.Fetch("m")
	require.NoError(t, err)

	resp := SetItemCommand{Target: id, Key: capsule.StringCapsule{Value: "a"}, Value: capsule.IntegerCapsule{Value: 5}}.Execute(tbl)
	assert.Equal(t, "empty", resp.Serial())
	assert.Equal(t, 5, m["a"])
}

func TestOperatorEquals(t *testing.T) {
	tbl := table.New()
	tbl.Export("n", int64(20))
	id, err := tbl.Fetch("n")
	require.NoError(t, err)

	resp := OperatorCommand{Target: id, Variant: OperatorEquals, Operand: capsule.IntegerCapsule{Value: 20}}.Execute(tbl)
	handle, ok := resp.(response.HandleResponse)
	require.True(t, ok)
	stored, err := tbl.Access(handle.ID)
	require.NoError(t, err)
	assert.Equal(t, true, stored)
}

func TestOperatorAddition(t *testing.T) {
	tbl := table.New()
	tbl.Export("n", int64(20))
	id, err := tbl.Fetch("n")
	require.NoError(t, err)

	resp := OperatorCommand{Target: id, Variant: OperatorAddition, Operand: capsule.IntegerCapsule{Value: 5}}.Execute(tbl)
	handle, ok := resp.(response.HandleResponse)
	require.True(t, ok)
	stored, err := tbl.Access(handle.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), stored)
}

func TestOperatorAdditionUnsupportedIsOperationError(t *testing.T) {
	tbl := table.New()
	tbl.Export("n", &testObject{Value: 20})
	id, err := tbl.Fetch("n")
	require.NoError(t, err)

	resp := OperatorCommand{Target: id, Variant: OperatorAddition, Operand: capsule.IntegerCapsule{Value: 5}}.Execute(tbl)
	assert.Equal(t, "error-operation", resp.Serial())
}

func TestExecuteCommand(t *testing.T) {
	tbl := table.New()
	obj := &testObject{Value: 20}
	fn := func(arg int64) int64 {
		obj.Value += int(arg)
		return int64(obj.Value)
	}
	tbl.Export("fn", fn)
	id, err := tbl.Fetch("fn")
	require.NoError(t, err)

	resp := ExecuteCommand{
		Target: id,
		Args:   capsule.TupleCapsule{Items: []capsule.Capsule{capsule.IntegerCapsule{Value: 30}}},
		Kwargs: capsule.DictionaryCapsule{Items: map[string]capsule.Capsule{}},
	}.Execute(tbl)

	handle, ok := resp.(response.HandleResponse)
	require.True(t, ok)
	stored, err := tbl.Access(handle.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), stored)
}

func TestGetAttributeCommandWithHandleValuedName(t *testing.T) {
	tbl := table.New()
	tbl.Export("obj", &testObject{Value: 20})
	objID, err := tbl.Fetch("obj")
	require.NoError(t, err)

	nameID := tbl.Store("Value")

	resp := GetAttributeCommand{Target: objID, Name: capsule.HandleCapsule{ID: nameID}}.Execute(tbl)
	handle, ok := resp.(response.HandleResponse)
	require.True(t, ok)
	stored, err := tbl.Access(handle.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored)
}

func TestGetAttributeCommandNameNotStringIsAttributeError(t *testing.T) {
	tbl := table.New()
	tbl.Export("obj", &testObject{Value: 20})
	objID, err := tbl.Fetch("obj")
	require.NoError(t, err)

	resp := GetAttributeCommand{Target: objID, Name: capsule.IntegerCapsule{Value: 1}}.Execute(tbl)
	assert.Equal(t, "error-attribute", resp.Serial())
}

func TestExecuteCommandRecoversPanicAsExecutionError(t *testing.T) {
	tbl := table.New()
	fn := func(a string) string { return a }
	tbl.Export("fn", fn)
	id, err := tbl.Fetch("fn")
	require.NoError(t, err)

	resp := ExecuteCommand{
		Target: id,
		Args:   capsule.TupleCapsule{Items: []capsule.Capsule{capsule.IntegerCapsule{Value: 1}}},
		Kwargs: capsule.DictionaryCapsule{Items: map[string]capsule.Capsule{}},
	}.Execute(tbl)

	assert.Equal(t, "error-execution", resp.Serial())
}

func TestEvaluateCommandEchoesVariant(t *testing.T) {
	tbl := table.New()
	tbl.Export("n", int64(20))
	id, err := tbl.Fetch("n")
	require.NoError(t, err)

	resp := EvaluateCommand{Target: id, Variant: VariantInt}.Execute(tbl)
	eval, ok := resp.(response.EvaluationResponse)
	require.True(t, ok)
	assert.Equal(t, capsule.IntegerCapsule{Value: 20}, eval.Value)
	assert.Equal(t, VariantInt, eval.Variant)
}
