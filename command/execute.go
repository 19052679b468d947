package command

import (
	"github.com/google/uuid"

	"github.com/jeeves-cluster-organization/remoteable/capsule"
	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// ExecuteCommand calls a referenced object with positional and keyword
// arguments. Args travel as a tuple capsule (fixed arity, ordered) and
// kwargs as a dictionary capsule, matching the resolved reading of
// spec.md §9's ambiguity over whether keyword arguments are a sequence or
// a mapping: a mapping is what original_source/command.py actually sends.
type ExecuteCommand struct {
	Target uuid.UUID
	Args   capsule.TupleCapsule
	Kwargs capsule.DictionaryCapsule
}

func (c ExecuteCommand) Serial() string { return "execute" }

func (c ExecuteCommand) Data() map[string]any {
	return map[string]any{
		"id":     encodeID(c.Target),
		"args":   capsule.Encode(c.Args),
		"kwargs": capsule.Encode(c.Kwargs),
	}
}

func (c ExecuteCommand) Execute(t *table.Table) response.Response {
	obj, err := t.Access(c.Target)
	if err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}

	argsValue, err := c.Args.ActualValue(t)
	if err != nil {
		return response.ErrorResponse{Text: err.Error()}
	}
	args := []any(argsValue.(capsule.Tuple))

	kwargsValue, err := c.Kwargs.ActualValue(t)
	if err != nil {
		return response.ErrorResponse{Text: err.Error()}
	}
	kwargs := kwargsValue.(map[string]any)

	result, err := table.Call(obj, args, kwargs)
	if err != nil {
		return response.ExecutionErrorResponse{Text: err.Error()}
	}
	return storeResult(result, t)
}

func init() {
	register("execute", buildExecuteCommand)
}

func buildExecuteCommand(raw map[string]any) (Command, error) {
	id, err := targetID(raw, "execute")
	if err != nil {
		return nil, err
	}

	argsField, err := capsuleField(raw, "args", "execute")
	if err != nil {
		return nil, err
	}
	argsCapsule, err := capsule.Decode(argsField)
	if err != nil {
		return nil, &DecodeError{Reason: "execute command has a malformed args: " + err.Error()}
	}
	args, ok := argsCapsule.(capsule.TupleCapsule)
	if !ok {
		return nil, &DecodeError{Reason: "execute command args must be a tuple capsule"}
	}

	kwargsField, err := capsuleField(raw, "kwargs", "execute")
	if err != nil {
		return nil, err
	}
	kwargsCapsule, err := capsule.Decode(kwargsField)
	if err != nil {
		return nil, &DecodeError{Reason: "execute command has a malformed kwargs: " + err.Error()}
	}
	kwargs, ok := kwargsCapsule.(capsule.DictionaryCapsule)
	if !ok {
		return nil, &DecodeError{Reason: "execute command kwargs must be a dictionary capsule"}
	}

	return ExecuteCommand{Target: id, Args: args, Kwargs: kwargs}, nil
}
