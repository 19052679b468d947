package command

import (
	"github.com/google/uuid"

	"github.com/jeeves-cluster-organization/remoteable/capsule"
	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// Evaluate variant hints, echoed back unchanged in the EvaluationResponse.
const (
	VariantInt     = "int"
	VariantBool    = "bool"
	VariantText    = "text"
	VariantUnicode = "unicode"
	VariantList    = "list"
	VariantDict    = "dict"
)

// EvaluateCommand materializes a referenced object's actual value and
// wraps it. The requested variant never changes what gets wrapped — it is
// a hint the client uses to pick which AsXxx accessor it expects to
// satisfy, not an instruction to the server (original_source/command.py's
// EvaluateCommand.execute wraps unconditionally and only echoes the
// variant back).
type EvaluateCommand struct {
	Target  uuid.UUID
	Variant string
}

func (c EvaluateCommand) Serial() string { return "evaluate" }

func (c EvaluateCommand) Data() map[string]any {
	return map[string]any{"id": encodeID(c.Target), "variant": c.Variant}
}

func (c EvaluateCommand) Execute(t *table.Table) response.Response {
	obj, err := t.Access(c.Target)
	if err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}
	wrapped, err := capsule.Wrap(obj)
	if err != nil {
		return response.ErrorResponse{Text: err.Error()}
	}
	return response.EvaluationResponse{Value: wrapped, Variant: c.Variant}
}

func init() {
	register("evaluate", buildEvaluateCommand)
}

func buildEvaluateCommand(raw map[string]any) (Command, error) {
	id, err := targetID(raw, "evaluate")
	if err != nil {
		return nil, err
	}
	variant, err := stringField(raw, "variant", "evaluate")
	if err != nil {
		return nil, err
	}
	return EvaluateCommand{Target: id, Variant: variant}, nil
}
