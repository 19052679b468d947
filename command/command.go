// Package command implements the tagged command envelope a client sends
// to act on the server's object table (spec.md §4.3, §6). Each command
// variant knows how to Execute itself against a table.Table and produce a
// response.Response; variants register themselves with a package-level
// registry keyed by their `serial` tag, mirroring the capsule and response
// packages.
package command

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// Command is a tagged request to act on the object table. Execute has no
// Go error return: every failure (unknown id, missing attribute, ...) is
// reported through the returned Response so the connection can keep
// serving further commands.
type Command interface {
	Serial() string
	Data() map[string]any
	Execute(t *table.Table) response.Response
}

// Builder decodes a command's wire payload into a concrete Command.
type Builder func(map[string]any) (Command, error)

var registry = map[string]Builder{}

func register(serial string, build Builder) {
	if _, exists := registry[serial]; exists {
		panic("command: duplicate serial registration: " + serial)
	}
	registry[serial] = build
}

// Encode renders a command to its wire form: its Data() merged with the
// reserved "serial" key.
func Encode(c Command) map[string]any {
	raw := make(map[string]any, len(c.Data())+1)
	for k, v := range c.Data() {
		raw[k] = v
	}
	raw["serial"] = c.Serial()
	return raw
}

// Decode constructs a Command from its wire form, dispatching on "serial"
// through the package registry.
func Decode(raw map[string]any) (Command, error) {
	value, present := raw["serial"]
	if !present {
		return nil, &DecodeError{Reason: "missing serial"}
	}
	serial, ok := value.(string)
	if !ok {
		return nil, &DecodeError{Reason: "serial must be a string"}
	}
	build, ok := registry[serial]
	if !ok {
		return nil, &DecodeError{Reason: "unknown serial: " + serial}
	}
	return build(raw)
}

// DecodeError is raised when a command envelope is malformed. A handler
// that encounters one terminates the connection (spec.md §7).
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "command decode error: " + e.Reason
}

func capsuleField(raw map[string]any, key, serial string) (map[string]any, error) {
	field, ok := raw[key].(map[string]any)
	if !ok {
		return nil, &DecodeError{Reason: serial + " command requires an object \"" + key + "\""}
	}
	return field, nil
}

// encodeID renders a handle id as the 32 hex characters spec.md §6
// documents, matching capsule.HandleCapsule's own encoding rather than
// uuid.UUID's 36-char dashed String().
func encodeID(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}

func stringField(raw map[string]any, key, serial string) (string, error) {
	field, ok := raw[key].(string)
	if !ok {
		return "", &DecodeError{Reason: serial + " command requires a string \"" + key + "\""}
	}
	return field, nil
}

// storeResult stores a server-side result as a fresh table entry and
// returns a handle to it. Attribute reads, item reads, operators, and
// calls all answer this way rather than trying to serialize their result
// (original_source/command.py's GetCommand/OperatorCommand/ExecuteCommand
// all end with actual.store(result) unconditionally): a Go method result
// is every bit as likely to be a struct as an int, so the result always
// becomes a further handle. A client that wants a primitive materializes
// it explicitly with an evaluate command (spec.md §4.3).
func storeResult(value any, t *table.Table) response.Response {
	return response.HandleResponse{ID: t.Store(value)}
}
