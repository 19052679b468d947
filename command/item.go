package command

import (
	"github.com/google/uuid"

	"github.com/jeeves-cluster-organization/remoteable/capsule"
	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// GetItemCommand reads obj[key] off a referenced object. Unlike attribute
// commands, item resolution failures report as the generic error kind:
// spec.md §4.3 lists no dedicated error variant for indexed access.
type GetItemCommand struct {
	Target uuid.UUID
	Key    capsule.Capsule
}

func (c GetItemCommand) Serial() string { return "item-get" }

func (c GetItemCommand) Data() map[string]any {
	return map[string]any{"id": encodeID(c.Target), "name": capsule.Encode(c.Key)}
}

func (c GetItemCommand) Execute(t *table.Table) response.Response {
	obj, err := t.Access(c.Target)
	if err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}
	key, err := c.Key.ActualValue(t)
	if err != nil {
		return response.ErrorResponse{Text: err.Error()}
	}
	value, err := table.GetItem(obj, key)
	if err != nil {
		return response.ErrorResponse{Text: err.Error()}
	}
	return storeResult(value, t)
}

// SetItemCommand writes obj[key] = value on a referenced object.
type SetItemCommand struct {
	Target uuid.UUID
	Key    capsule.Capsule
	Value  capsule.Capsule
}

func (c SetItemCommand) Serial() string { return "item-set" }

func (c SetItemCommand) Data() map[string]any {
	return map[string]any{
		"id":    encodeID(c.Target),
		"name":  capsule.Encode(c.Key),
		"value": capsule.Encode(c.Value),
	}
}

func (c SetItemCommand) Execute(t *table.Table) response.Response {
	obj, err := t.Access(c.Target)
	if err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}
	key, err := c.Key.ActualValue(t)
	if err != nil {
		return response.ErrorResponse{Text: err.Error()}
	}
	value, err := c.Value.ActualValue(t)
	if err != nil {
		return response.ErrorResponse{Text: err.Error()}
	}
	if err := table.SetItem(obj, key, value); err != nil {
		return response.ErrorResponse{Text: err.Error()}
	}
	return response.EmptyResponse{}
}

func init() {
	register("item-get", buildGetItemCommand)
	register("item-set", buildSetItemCommand)
}

func buildGetItemCommand(raw map[string]any) (Command, error) {
	id, err := targetID(raw, "item-get")
	if err != nil {
		return nil, err
	}
	field, err := capsuleField(raw, "name", "item-get")
	if err != nil {
		return nil, err
	}
	key, err := capsule.Decode(field)
	if err != nil {
		return nil, &DecodeError{Reason: "item-get command has a malformed name: " + err.Error()}
	}
	return GetItemCommand{Target: id, Key: key}, nil
}

func buildSetItemCommand(raw map[string]any) (Command, error) {
	id, err := targetID(raw, "item-set")
	if err != nil {
		return nil, err
	}
	keyField, err := capsuleField(raw, "name", "item-set")
	if err != nil {
		return nil, err
	}
	key, err := capsule.Decode(keyField)
	if err != nil {
		return nil, &DecodeError{Reason: "item-set command has a malformed name: " + err.Error()}
	}
	valueField, err := capsuleField(raw, "value", "item-set")
	if err != nil {
		return nil, err
	}
	value, err := capsule.Decode(valueField)
	if err != nil {
		return nil, &DecodeError{Reason: "item-set command has a malformed value: " + err.Error()}
	}
	return SetItemCommand{Target: id, Key: key, Value: value}, nil
}
