package server

import "github.com/jeeves-cluster-organization/remoteable/response"

func responseEncode(r response.Response) map[string]any {
	return response.Encode(r)
}

// outcomeOf labels a response for the command metric's outcome dimension.
func outcomeOf(r response.Response) string {
	switch r.Serial() {
	case "error":
		return "error"
	case "error-access":
		return "access-error"
	case "error-attribute":
		return "attribute-error"
	case "error-operation":
		return "operation-error"
	case "error-execution":
		return "execution-error"
	default:
		return "ok"
	}
}
