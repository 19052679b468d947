package command

import (
	"github.com/jeeves-cluster-organization/remoteable/capsule"
	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// StoreCommand materializes a capsule value server-side and stores it as a
// fresh table entry, minting a handle to it.
type StoreCommand struct {
	Value capsule.Capsule
}

func (c StoreCommand) Serial() string { return "store" }

func (c StoreCommand) Data() map[string]any {
	return map[string]any{"data": capsule.Encode(c.Value)}
}

func (c StoreCommand) Execute(t *table.Table) response.Response {
	actual, err := c.Value.ActualValue(t)
	if err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}
	id := t.Store(actual)
	return response.HandleResponse{ID: id}
}

func init() {
	register("store", buildStoreCommand)
}

func buildStoreCommand(raw map[string]any) (Command, error) {
	field, err := capsuleField(raw, "data", "store")
	if err != nil {
		return nil, err
	}
	value, err := capsule.Decode(field)
	if err != nil {
		return nil, &DecodeError{Reason: "store command has a malformed data: " + err.Error()}
	}
	return StoreCommand{Value: value}, nil
}
