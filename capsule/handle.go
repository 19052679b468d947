package capsule

import (
	"strings"

	"github.com/google/uuid"
)

// HandleCapsule carries a reference to a server-owned object, identified
// by its 128-bit handle id (spec.md §3).
type HandleCapsule struct {
	ID uuid.UUID
}

func (c HandleCapsule) Serial() string { return "handle" }

func (c HandleCapsule) Data() map[string]any {
	return map[string]any{"id": strings.ReplaceAll(c.ID.String(), "-", "")}
}

// ActualValue resolves the handle through the server's object table.
func (c HandleCapsule) ActualValue(a ServerAccessor) (any, error) {
	return a.Access(c.ID)
}

// ProxyValue mints a fresh client handle bound to this id.
func (c HandleCapsule) ProxyValue(p ClientAccessor) (any, error) {
	return p.Handle(c.ID), nil
}

func init() {
	register("handle", buildHandleCapsule)
}

func buildHandleCapsule(raw map[string]any) (Capsule, error) {
	hex, ok := raw["id"].(string)
	if !ok {
		return nil, &ConstructionError{Reason: "handle capsule requires a string \"id\""}
	}
	id, err := uuid.Parse(hex)
	if err != nil {
		return nil, &ConstructionError{Reason: "handle capsule has a malformed id: " + err.Error()}
	}
	return HandleCapsule{ID: id}, nil
}
