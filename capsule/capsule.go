// Package capsule implements the tagged value envelope ("capsule") that
// carries either a primitive or a server-object reference across the wire
// (spec.md §3, §4.2). Every capsule variant registers itself with a
// package-level registry keyed by its `serial` tag, mirroring the
// tag-dispatched registration style used throughout the codebase this was
// grown from (one map of string to builder, populated at init time).
package capsule

import "github.com/google/uuid"

// Capsule is a tagged value envelope. Every concrete variant is immutable
// and recursively encodable for the container variants.
type Capsule interface {
	// Serial is the wire tag selecting this variant.
	Serial() string
	// Data returns the variant-specific payload, without the "serial" key.
	Data() map[string]any
	// ActualValue materializes this capsule into a server-side value: a
	// primitive capsule yields its scalar, a handle capsule resolves
	// through access, a container recurses.
	ActualValue(ServerAccessor) (any, error)
	// ProxyValue materializes this capsule into a client-side value: a
	// primitive capsule yields its scalar, a handle capsule yields a
	// fresh client handle, a container recurses.
	ProxyValue(ClientAccessor) (any, error)
}

// ServerAccessor is the table-side capability a handle capsule needs to
// resolve itself: access an object already in the table. table.Table
// satisfies this without importing this package.
type ServerAccessor interface {
	Access(id uuid.UUID) (any, error)
}

// ClientAccessor is the proxy-side capability a handle capsule needs to
// resolve itself: mint a client handle bound to an id.
type ClientAccessor interface {
	Handle(id uuid.UUID) any
}

// HandleRef is implemented by client-side handle values so that Wrap can
// recognize them and produce a HandleCapsule instead of failing with a
// wrap-type error.
type HandleRef interface {
	HandleID() uuid.UUID
}

// Tuple marks a host slice as an ordered, fixed-arity container that must
// wrap to a TupleCapsule rather than a ListCapsule. Used for command
// argument lists, which the wire format requires to be tuples (spec.md §6).
type Tuple []any

// Set marks a host slice as an unordered container that must wrap to a
// SetCapsule. Go has no native set type, so membership (not order) is the
// only property Set preserves.
type Set []any

// Encode renders a capsule to its wire form: its Data() merged with the
// reserved "serial" key.
func Encode(c Capsule) map[string]any {
	raw := make(map[string]any, len(c.Data())+1)
	for k, v := range c.Data() {
		raw[k] = v
	}
	raw["serial"] = c.Serial()
	return raw
}

// Decode constructs a Capsule from its wire form, dispatching on "serial"
// through the package registry.
func Decode(raw map[string]any) (Capsule, error) {
	serial, err := requireSerial(raw)
	if err != nil {
		return nil, err
	}
	build, ok := registry[serial]
	if !ok {
		return nil, &ConstructionError{Reason: "unknown serial: " + serial}
	}
	return build(raw)
}

func requireSerial(raw map[string]any) (string, error) {
	value, present := raw["serial"]
	if !present {
		return "", &ConstructionError{Reason: "missing serial"}
	}
	serial, ok := value.(string)
	if !ok {
		return "", &ConstructionError{Reason: "serial must be a string"}
	}
	return serial, nil
}

// Wrap selects the most specific capsule variant for a host value.
//
// The wrap-predicate order required by spec.md §4.2 is: handle first (for
// proxy references), then specific primitives (boolean checked ahead of
// integer so the two are never conflated), then containers, then none.
// A Go type switch matches on the operand's exact dynamic type rather than
// a chain of predicates, so no case here can actually shadow another the
// way an "is instance of" chain could in a dynamically typed host
// language — the ordering below is kept anyway so the variant list reads
// in the same order spec.md documents it.
func Wrap(v any) (Capsule, error) {
	if ref, ok := v.(HandleRef); ok {
		return HandleCapsule{ID: ref.HandleID()}, nil
	}

	switch x := v.(type) {
	case bool:
		return BooleanCapsule{Value: x}, nil
	case int:
		return IntegerCapsule{Value: int64(x)}, nil
	case int32:
		return IntegerCapsule{Value: int64(x)}, nil
	case int64:
		return IntegerCapsule{Value: x}, nil
	case string:
		return StringCapsule{Value: x}, nil
	case Tuple:
		return wrapSlice(x, func(items []Capsule) Capsule { return TupleCapsule{Items: items} })
	case Set:
		return wrapSlice(x, func(items []Capsule) Capsule { return SetCapsule{Items: items} })
	case []any:
		return wrapSlice(x, func(items []Capsule) Capsule { return ListCapsule{Items: items} })
	case map[string]any:
		items := make(map[string]Capsule, len(x))
		for k, e := range x {
			c, err := Wrap(e)
			if err != nil {
				return nil, err
			}
			items[k] = c
		}
		return DictionaryCapsule{Items: items}, nil
	case nil:
		return NoneCapsule{}, nil
	default:
		return nil, &WrapTypeError{Type: x}
	}
}

func wrapSlice(values []any, build func([]Capsule) Capsule) (Capsule, error) {
	items := make([]Capsule, len(values))
	for i, e := range values {
		c, err := Wrap(e)
		if err != nil {
			return nil, err
		}
		items[i] = c
	}
	return build(items), nil
}

// ActualValues materializes a slice of capsules server-side, stopping at
// the first failure.
func ActualValues(items []Capsule, a ServerAccessor) ([]any, error) {
	result := make([]any, len(items))
	for i, c := range items {
		v, err := c.ActualValue(a)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

// ProxyValues materializes a slice of capsules client-side, stopping at the
// first failure.
func ProxyValues(items []Capsule, p ClientAccessor) ([]any, error) {
	result := make([]any, len(items))
	for i, c := range items {
		v, err := c.ProxyValue(p)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}
