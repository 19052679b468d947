package command

import (
	"github.com/google/uuid"

	"github.com/jeeves-cluster-organization/remoteable/capsule"
	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// OperatorCommand applies a binary operator between a referenced object
// and an operand. "equals" can never fail at the operator-resolution
// level (every object supports comparison, falling back to
// reflect.DeepEqual); "addition" can, when the left operand implements no
// table.Adder and the pair matches none of table.Add's built-in cases,
// which reports as operation-error rather than execution-error (spec.md
// §7 distinguishes "operator not supported" from "operator raised").
type OperatorCommand struct {
	Target  uuid.UUID
	Variant string
	Operand capsule.Capsule
}

const (
	OperatorEquals   = "equals"
	OperatorAddition = "addition"
)

func (c OperatorCommand) Serial() string { return "operator" }

func (c OperatorCommand) Data() map[string]any {
	return map[string]any{
		"id":      encodeID(c.Target),
		"variant": c.Variant,
		"other":   capsule.Encode(c.Operand),
	}
}

func (c OperatorCommand) Execute(t *table.Table) response.Response {
	obj, err := t.Access(c.Target)
	if err != nil {
		return response.AccessErrorResponse{Text: err.Error()}
	}
	operand, err := c.Operand.ActualValue(t)
	if err != nil {
		return response.ErrorResponse{Text: err.Error()}
	}

	switch c.Variant {
	case OperatorEquals:
		return storeResult(table.Equals(obj, operand), t)
	case OperatorAddition:
		result, err := table.Add(obj, operand)
		if err != nil {
			if _, ok := err.(*table.OperationError); ok {
				return response.OperationErrorResponse{Text: err.Error()}
			}
			return response.ExecutionErrorResponse{Text: err.Error()}
		}
		return storeResult(result, t)
	default:
		return response.OperationErrorResponse{Text: (&table.OperationError{Variant: c.Variant}).Error()}
	}
}

func init() {
	register("operator", buildOperatorCommand)
}

func buildOperatorCommand(raw map[string]any) (Command, error) {
	id, err := targetID(raw, "operator")
	if err != nil {
		return nil, err
	}
	variant, err := stringField(raw, "variant", "operator")
	if err != nil {
		return nil, err
	}
	field, err := capsuleField(raw, "other", "operator")
	if err != nil {
		return nil, err
	}
	operand, err := capsule.Decode(field)
	if err != nil {
		return nil, &DecodeError{Reason: "operator command has a malformed other: " + err.Error()}
	}
	return OperatorCommand{Target: id, Variant: variant, Operand: operand}, nil
}
