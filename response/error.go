package response

import "fmt"

// ErrorKind discriminates the closed error taxonomy a failed command can
// report (spec.md §7). Each kind has its own wire tag rather than a single
// generic envelope carrying a class name, so a client never has to import
// or reconstruct a server-side exception class to understand a failure
// (spec.md §9).
type ErrorKind int

const (
	ErrorKindGeneric ErrorKind = iota
	ErrorKindAccess
	ErrorKindAttribute
	ErrorKindOperation
	ErrorKindExecution
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindAccess:
		return "access"
	case ErrorKindAttribute:
		return "attribute"
	case ErrorKindOperation:
		return "operation"
	case ErrorKindExecution:
		return "execution"
	default:
		return "generic"
	}
}

// RemoteError is the client-side materialization of any failed response.
// It implements error and carries the kind of failure plus the text the
// server reported, never a reconstructed exception instance. Class is
// carried through purely as informational context (spec.md §9 is explicit
// that a client must not use it to reconstruct a server-side exception
// type) — it is not consulted by Error() or by anything else in this
// module.
type RemoteError struct {
	Kind  ErrorKind
	Text  string
	Class string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Text)
}

// ErrorResponse is the generic failure variant, used for item-access
// failures and anything else not covered by a more specific kind.
type ErrorResponse struct {
	Text string
}

func (r ErrorResponse) Serial() string { return "error" }
func (r ErrorResponse) Data() map[string]any {
	return map[string]any{"text": r.Text, "class": "Error"}
}
func (r ErrorResponse) Interpret(Accessor) (any, error) {
	return nil, &RemoteError{Kind: ErrorKindGeneric, Text: r.Text, Class: "Error"}
}

// AccessErrorResponse reports that a handle id or exported name was not
// found in the server's object table.
type AccessErrorResponse struct {
	Text string
}

func (r AccessErrorResponse) Serial() string { return "error-access" }
func (r AccessErrorResponse) Data() map[string]any {
	return map[string]any{"text": r.Text, "class": "AccessError"}
}
func (r AccessErrorResponse) Interpret(Accessor) (any, error) {
	return nil, &RemoteError{Kind: ErrorKindAccess, Text: r.Text, Class: "AccessError"}
}

// AttributeErrorResponse reports that an attribute get/set failed to
// resolve a name on the target object.
type AttributeErrorResponse struct {
	Text string
}

func (r AttributeErrorResponse) Serial() string { return "error-attribute" }
func (r AttributeErrorResponse) Data() map[string]any {
	return map[string]any{"text": r.Text, "class": "AttributeError"}
}
func (r AttributeErrorResponse) Interpret(Accessor) (any, error) {
	return nil, &RemoteError{Kind: ErrorKindAttribute, Text: r.Text, Class: "AttributeError"}
}

// OperationErrorResponse reports that an operator command named a variant
// the target object does not support (e.g. addition on a non-addable
// value).
type OperationErrorResponse struct {
	Text string
}

func (r OperationErrorResponse) Serial() string { return "error-operation" }
func (r OperationErrorResponse) Data() map[string]any {
	return map[string]any{"text": r.Text, "class": "OperationError"}
}
func (r OperationErrorResponse) Interpret(Accessor) (any, error) {
	return nil, &RemoteError{Kind: ErrorKindOperation, Text: r.Text, Class: "OperationError"}
}

// ExecutionErrorResponse reports that a call or supported operator ran and
// raised a failure of its own, as opposed to failing to resolve at all.
type ExecutionErrorResponse struct {
	Text string
}

func (r ExecutionErrorResponse) Serial() string { return "error-execution" }
func (r ExecutionErrorResponse) Data() map[string]any {
	return map[string]any{"text": r.Text, "class": "ExecutionError"}
}
func (r ExecutionErrorResponse) Interpret(Accessor) (any, error) {
	return nil, &RemoteError{Kind: ErrorKindExecution, Text: r.Text, Class: "ExecutionError"}
}

func init() {
	register("error", buildErrorResponse)
	register("error-access", buildAccessErrorResponse)
	register("error-attribute", buildAttributeErrorResponse)
	register("error-operation", buildOperationErrorResponse)
	register("error-execution", buildExecutionErrorResponse)
}

func textField(raw map[string]any, serial string) (string, error) {
	text, ok := raw["text"].(string)
	if !ok {
		return "", &DecodeError{Reason: serial + " response requires a string \"text\""}
	}
	return text, nil
}

func buildErrorResponse(raw map[string]any) (Response, error) {
	text, err := textField(raw, "error")
	if err != nil {
		return nil, err
	}
	return ErrorResponse{Text: text}, nil
}

func buildAccessErrorResponse(raw map[string]any) (Response, error) {
	text, err := textField(raw, "error-access")
	if err != nil {
		return nil, err
	}
	return AccessErrorResponse{Text: text}, nil
}

func buildAttributeErrorResponse(raw map[string]any) (Response, error) {
	text, err := textField(raw, "error-attribute")
	if err != nil {
		return nil, err
	}
	return AttributeErrorResponse{Text: text}, nil
}

func buildOperationErrorResponse(raw map[string]any) (Response, error) {
	text, err := textField(raw, "error-operation")
	if err != nil {
		return nil, err
	}
	return OperationErrorResponse{Text: text}, nil
}

func buildExecutionErrorResponse(raw map[string]any) (Response, error) {
	text, err := textField(raw, "error-execution")
	if err != nil {
		return nil, err
	}
	return ExecutionErrorResponse{Text: text}, nil
}
