package response

// EmptyResponse acknowledges a command that has no meaningful result:
// release and item/attribute set all answer with one.
type EmptyResponse struct{}

func (r EmptyResponse) Serial() string       { return "empty" }
func (r EmptyResponse) Data() map[string]any { return map[string]any{} }
func (r EmptyResponse) Interpret(Accessor) (any, error) {
	return nil, nil
}

func init() {
	register("empty", buildEmptyResponse)
}

func buildEmptyResponse(map[string]any) (Response, error) {
	return EmptyResponse{}, nil
}
