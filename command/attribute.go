package command

import (
	"github.com/google/uuid"

	"github.com/jeeves-cluster-organization/remoteable/capsule"
	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// GetAttributeCommand reads a named attribute off a referenced object and
// stores the result as a fresh handle. Resolution failures report as
// error-attribute, per the dedicated wire tag and the taxonomy in spec.md
// §7, not the generic error kind item commands use.
//
// Name travels as a capsule rather than a bare string, matching
// item.go's Key: spec.md §4.3 lists an access-error "unknown id inside
// name" failure mode, which only exists if name can itself be a handle to
// an unresolved id, and original_source/tests.py's
// test_attribute_remote_handle passes a remote handle (to a stored
// string) as the attribute name.
type GetAttributeCommand struct {
	Target uuid.UUID
	Name   capsule.Capsule
}

func (c GetAttributeCommand) Serial() string { return "attribute-get" }

func (c GetAttributeCommand) Data() map[string]any {
	return map[string]any{"id": encodeID(c.Target), "name": capsule.Encode(c.Name)}
}

func (c GetAttributeCommand) Execute(t *table.Table) response.Response {
	obj, err := t.Access(c.Target)
	if err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}
	name, resp := resolveAttributeName(c.Name, t)
	if resp != nil {
		return resp
	}
	value, err := table.GetAttr(obj, name)
	if err != nil {
		return response.AttributeErrorResponse{Text: err.Error()}
	}
	return storeResult(value, t)
}

// SetAttributeCommand writes a named attribute on a referenced object.
type SetAttributeCommand struct {
	Target uuid.UUID
	Name   capsule.Capsule
	Value  capsule.Capsule
}

func (c SetAttributeCommand) Serial() string { return "attribute-set" }

func (c SetAttributeCommand) Data() map[string]any {
	return map[string]any{
		"id":    encodeID(c.Target),
		"name":  capsule.Encode(c.Name),
		"value": capsule.Encode(c.Value),
	}
}

func (c SetAttributeCommand) Execute(t *table.Table) response.Response {
	obj, err := t.Access(c.Target)
	if err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}
	name, resp := resolveAttributeName(c.Name, t)
	if resp != nil {
		return resp
	}
	actual, err := c.Value.ActualValue(t)
	if err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}
	if err := table.SetAttr(obj, name, actual); err != nil {
		return response.AttributeErrorResponse{Text: err.Error()}
	}
	return response.EmptyResponse{}
}

// resolveAttributeName materializes a name capsule to the string
// table.GetAttr/SetAttr need. A capsule that fails to resolve (e.g. a
// handle referencing an id the table no longer holds) reports as
// access-error; one that resolves to something other than a string
// reports as attribute-error.
func resolveAttributeName(name capsule.Capsule, t *table.Table) (string, response.Response) {
	actual, err := name.ActualValue(t)
	if err != nil {
		return "", response.AccessErrorResponse{Text: err.Error()}
	}
	s, ok := actual.(string)
	if !ok {
		return "", response.AttributeErrorResponse{Text: "attribute name did not resolve to a string"}
	}
	return s, nil
}

func init() {
	register("attribute-get", buildGetAttributeCommand)
	register("attribute-set", buildSetAttributeCommand)
}

func targetID(raw map[string]any, serial string) (uuid.UUID, error) {
	hex, err := stringField(raw, "id", serial)
	if err != nil {
		return uuid.Nil, err
	}
	id, parseErr := uuid.Parse(hex)
	if parseErr != nil {
		return uuid.Nil, &DecodeError{Reason: serial + " command has a malformed id: " + parseErr.Error()}
	}
	return id, nil
}

func buildGetAttributeCommand(raw map[string]any) (Command, error) {
	id, err := targetID(raw, "attribute-get")
	if err != nil {
		return nil, err
	}
	nameField, err := capsuleField(raw, "name", "attribute-get")
	if err != nil {
		return nil, err
	}
	name, err := capsule.Decode(nameField)
	if err != nil {
		return nil, &DecodeError{Reason: "attribute-get command has a malformed name: " + err.Error()}
	}
	return GetAttributeCommand{Target: id, Name: name}, nil
}

func buildSetAttributeCommand(raw map[string]any) (Command, error) {
	id, err := targetID(raw, "attribute-set")
	if err != nil {
		return nil, err
	}
	nameField, err := capsuleField(raw, "name", "attribute-set")
	if err != nil {
		return nil, err
	}
	name, err := capsule.Decode(nameField)
	if err != nil {
		return nil, &DecodeError{Reason: "attribute-set command has a malformed name: " + err.Error()}
	}
	field, err := capsuleField(raw, "value", "attribute-set")
	if err != nil {
		return nil, err
	}
	value, err := capsule.Decode(field)
	if err != nil {
		return nil, &DecodeError{Reason: "attribute-set command has a malformed value: " + err.Error()}
	}
	return SetAttributeCommand{Target: id, Name: name, Value: value}, nil
}
