package command

import (
	"github.com/google/uuid"

	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// ReleaseCommand drops a handle id from the table, ending its lifetime.
type ReleaseCommand struct {
	ID uuid.UUID
}

func (c ReleaseCommand) Serial() string { return "release" }

func (c ReleaseCommand) Data() map[string]any {
	return map[string]any{"id": encodeID(c.ID)}
}

func (c ReleaseCommand) Execute(t *table.Table) response.Response {
	if err := t.Release(c.ID); err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}
	return response.EmptyResponse{}
}

func init() {
	register("release", buildReleaseCommand)
}

func buildReleaseCommand(raw map[string]any) (Command, error) {
	hex, err := stringField(raw, "id", "release")
	if err != nil {
		return nil, err
	}
	id, parseErr := uuid.Parse(hex)
	if parseErr != nil {
		return nil, &DecodeError{Reason: "release command has a malformed id: " + parseErr.Error()}
	}
	return ReleaseCommand{ID: id}, nil
}
