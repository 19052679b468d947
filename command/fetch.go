package command

import (
	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// FetchCommand looks up an exported name and mints a handle bound to it.
type FetchCommand struct {
	Name string
}

func (c FetchCommand) Serial() string { return "fetch" }

func (c FetchCommand) Data() map[string]any {
	return map[string]any{"name": c.Name}
}

func (c FetchCommand) Execute(t *table.Table) response.Response {
	id, err := t.Fetch(c.Name)
	if err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}
	return response.HandleResponse{ID: id}
}

func init() {
	register("fetch", buildFetchCommand)
}

func buildFetchCommand(raw map[string]any) (Command, error) {
	name, err := stringField(raw, "name", "fetch")
	if err != nil {
		return nil, err
	}
	return FetchCommand{Name: name}, nil
}
