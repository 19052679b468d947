package capsule

import "fmt"

// IntegerCapsule carries a scalar integer value.
type IntegerCapsule struct {
	Value int64
}

func (c IntegerCapsule) Serial() string                               { return "integer" }
func (c IntegerCapsule) Data() map[string]any                         { return map[string]any{"data": c.Value} }
func (c IntegerCapsule) ActualValue(ServerAccessor) (any, error)      { return c.Value, nil }
func (c IntegerCapsule) ProxyValue(ClientAccessor) (any, error)       { return c.Value, nil }

// BooleanCapsule carries a scalar boolean value. It is checked ahead of
// IntegerCapsule in Wrap's variant ordering (spec.md §4.2) even though Go's
// type system makes the two impossible to conflate.
type BooleanCapsule struct {
	Value bool
}

func (c BooleanCapsule) Serial() string                          { return "boolean" }
func (c BooleanCapsule) Data() map[string]any                    { return map[string]any{"data": c.Value} }
func (c BooleanCapsule) ActualValue(ServerAccessor) (any, error) { return c.Value, nil }
func (c BooleanCapsule) ProxyValue(ClientAccessor) (any, error)  { return c.Value, nil }

// StringCapsule carries a scalar string value. All host Go strings wrap to
// this variant; see UnicodeCapsule for the distinct wire tag this
// protocol inherited from a host language with separate byte/text string
// types.
type StringCapsule struct {
	Value string
}

func (c StringCapsule) Serial() string                          { return "string" }
func (c StringCapsule) Data() map[string]any                    { return map[string]any{"data": c.Value} }
func (c StringCapsule) ActualValue(ServerAccessor) (any, error) { return c.Value, nil }
func (c StringCapsule) ProxyValue(ClientAccessor) (any, error)  { return c.Value, nil }

// UnicodeCapsule is the wire-compatible counterpart to StringCapsule kept
// for interoperability with peers that distinguish byte strings from text
// strings (spec.md §6 lists "unicode" as its own capsule tag). Go has a
// single string type, so nothing in this module's Wrap ever produces a
// UnicodeCapsule on its own — it exists so a received "unicode" envelope
// decodes cleanly, and so WrapUnicode can be used to address an evaluate
// command's "unicode" variant explicitly.
type UnicodeCapsule struct {
	Value string
}

func (c UnicodeCapsule) Serial() string                          { return "unicode" }
func (c UnicodeCapsule) Data() map[string]any                    { return map[string]any{"data": c.Value} }
func (c UnicodeCapsule) ActualValue(ServerAccessor) (any, error) { return c.Value, nil }
func (c UnicodeCapsule) ProxyValue(ClientAccessor) (any, error)  { return c.Value, nil }

// WrapUnicode wraps s as a UnicodeCapsule rather than the StringCapsule
// Wrap(s) would produce.
func WrapUnicode(s string) Capsule { return UnicodeCapsule{Value: s} }

// NoneCapsule carries no payload; the wire counterpart of a null/unit
// value.
type NoneCapsule struct{}

func (c NoneCapsule) Serial() string                          { return "none" }
func (c NoneCapsule) Data() map[string]any                    { return map[string]any{} }
func (c NoneCapsule) ActualValue(ServerAccessor) (any, error) { return nil, nil }
func (c NoneCapsule) ProxyValue(ClientAccessor) (any, error)  { return nil, nil }

func init() {
	register("integer", buildIntegerCapsule)
	register("boolean", buildBooleanCapsule)
	register("string", buildStringCapsule)
	register("unicode", buildUnicodeCapsule)
	register("none", buildNoneCapsule)
}

func buildIntegerCapsule(raw map[string]any) (Capsule, error) {
	n, err := numericField(raw, "integer")
	if err != nil {
		return nil, err
	}
	return IntegerCapsule{Value: int64(n)}, nil
}

func buildBooleanCapsule(raw map[string]any) (Capsule, error) {
	b, ok := raw["data"].(bool)
	if !ok {
		return nil, &ConstructionError{Reason: "boolean capsule requires a bool \"data\""}
	}
	return BooleanCapsule{Value: b}, nil
}

func buildStringCapsule(raw map[string]any) (Capsule, error) {
	s, ok := raw["data"].(string)
	if !ok {
		return nil, &ConstructionError{Reason: "string capsule requires a string \"data\""}
	}
	return StringCapsule{Value: s}, nil
}

func buildUnicodeCapsule(raw map[string]any) (Capsule, error) {
	s, ok := raw["data"].(string)
	if !ok {
		return nil, &ConstructionError{Reason: "unicode capsule requires a string \"data\""}
	}
	return UnicodeCapsule{Value: s}, nil
}

func buildNoneCapsule(map[string]any) (Capsule, error) {
	return NoneCapsule{}, nil
}

// numericField reads a numeric "data" field, accepting both Go's native
// int64/int and the float64 that encoding/json produces when decoding a
// JSON number into an any.
func numericField(raw map[string]any, variant string) (float64, error) {
	switch n := raw["data"].(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, &ConstructionError{Reason: fmt.Sprintf("%s capsule requires a numeric \"data\"", variant)}
	}
}
