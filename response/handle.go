package response

import (
	"strings"

	"github.com/google/uuid"
)

// HandleResponse carries a fresh handle id minted by fetch, store, or any
// attribute/item read, operator, or call that stores its result, with no
// wrapping: the client always turns a HandleResponse into a handle, never
// into a materialized scalar.
type HandleResponse struct {
	ID uuid.UUID
}

func (r HandleResponse) Serial() string { return "handle" }

func (r HandleResponse) Data() map[string]any {
	return map[string]any{"id": strings.ReplaceAll(r.ID.String(), "-", "")}
}

func (r HandleResponse) Interpret(a Accessor) (any, error) {
	return a.Handle(r.ID), nil
}

func init() {
	register("handle", buildHandleResponse)
}

func buildHandleResponse(raw map[string]any) (Response, error) {
	hex, ok := raw["id"].(string)
	if !ok {
		return nil, &DecodeError{Reason: "handle response requires a string \"id\""}
	}
	id, err := uuid.Parse(hex)
	if err != nil {
		return nil, &DecodeError{Reason: "handle response has a malformed id: " + err.Error()}
	}
	return HandleResponse{ID: id}, nil
}
