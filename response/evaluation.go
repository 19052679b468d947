package response

import "github.com/jeeves-cluster-organization/remoteable/capsule"

// EvaluationResponse carries a materialized capsule value along with the
// variant hint the evaluate command requested. The variant never changes
// what was wrapped server-side (original_source/command.py's
// EvaluateCommand wraps the object once and echoes the variant back
// unconditionally); it exists only so a client that asked for, say,
// "unicode" can tell which AsXxx accessor it is meant to satisfy.
type EvaluationResponse struct {
	Value   capsule.Capsule
	Variant string
}

func (r EvaluationResponse) Serial() string { return "evaluation" }

func (r EvaluationResponse) Data() map[string]any {
	return map[string]any{
		"value":   capsule.Encode(r.Value),
		"variant": r.Variant,
	}
}

func (r EvaluationResponse) Interpret(a Accessor) (any, error) {
	return r.Value.ProxyValue(a)
}

func init() {
	register("evaluation", buildEvaluationResponse)
}

func buildEvaluationResponse(raw map[string]any) (Response, error) {
	field, ok := raw["value"].(map[string]any)
	if !ok {
		return nil, &DecodeError{Reason: "evaluation response requires an object \"value\""}
	}
	value, err := capsule.Decode(field)
	if err != nil {
		return nil, &DecodeError{Reason: "evaluation response has a malformed value: " + err.Error()}
	}
	variant, _ := raw["variant"].(string)
	return EvaluationResponse{Value: value, Variant: variant}, nil
}
