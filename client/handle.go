package client

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jeeves-cluster-organization/remoteable/capsule"
	"github.com/jeeves-cluster-organization/remoteable/command"
)

// Handle is a client-side stand-in for a server-owned object. Python's
// original rendition (original_source/client.py's RemoteHandle) leans on
// __getattr__, __setattr__, __call__, and operator overloads to make a
// handle look exactly like the object it proxies; Go has none of that
// magic, so each operation gets its own explicit method instead
// (spec.md §9).
type Handle struct {
	client *Client
	id     uuid.UUID
}

// HandleID implements capsule.HandleRef so Wrap can embed this handle as
// a HandleCapsule when it appears as a command argument or store value.
func (h *Handle) HandleID() uuid.UUID {
	return h.id
}

// GetAttr reads a named attribute off the proxied object. The server
// always answers with a further handle (original_source/command.py's
// GetCommand never serializes its result), so the caller gets a *Handle
// back, not a scalar — materialize it explicitly with AsInt/AsBool/AsText
// and friends, or GetAttr/GetItem/Call it further.
func (h *Handle) GetAttr(name string) (*Handle, error) {
	resp, err := h.client.do(command.GetAttributeCommand{Target: h.id, Name: capsule.StringCapsule{Value: name}})
	if err != nil {
		return nil, err
	}
	return h.client.asHandle(resp)
}

// SetAttr writes a named attribute on the proxied object.
func (h *Handle) SetAttr(name string, value any) error {
	wrapped, err := capsule.Wrap(value)
	if err != nil {
		return err
	}
	resp, err := h.client.do(command.SetAttributeCommand{Target: h.id, Name: capsule.StringCapsule{Value: name}, Value: wrapped})
	if err != nil {
		return err
	}
	_, err = resp.Interpret(h.client)
	return err
}

// GetItem reads proxied[key]. Like GetAttr, this always yields a further
// handle rather than a materialized scalar.
func (h *Handle) GetItem(key any) (*Handle, error) {
	wrapped, err := capsule.Wrap(key)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.do(command.GetItemCommand{Target: h.id, Key: wrapped})
	if err != nil {
		return nil, err
	}
	return h.client.asHandle(resp)
}

// SetItem writes proxied[key] = value.
func (h *Handle) SetItem(key any, value any) error {
	wrappedKey, err := capsule.Wrap(key)
	if err != nil {
		return err
	}
	wrappedValue, err := capsule.Wrap(value)
	if err != nil {
		return err
	}
	resp, err := h.client.do(command.SetItemCommand{Target: h.id, Key: wrappedKey, Value: wrappedValue})
	if err != nil {
		return err
	}
	_, err = resp.Interpret(h.client)
	return err
}

// Call invokes the proxied object with positional args and keyword
// kwargs. The result comes back as a further handle, same as GetAttr and
// GetItem.
func (h *Handle) Call(args []any, kwargs map[string]any) (*Handle, error) {
	argItems := make([]capsule.Capsule, len(args))
	for i, a := range args {
		wrapped, err := capsule.Wrap(a)
		if err != nil {
			return nil, err
		}
		argItems[i] = wrapped
	}
	kwargItems := make(map[string]capsule.Capsule, len(kwargs))
	for k, v := range kwargs {
		wrapped, err := capsule.Wrap(v)
		if err != nil {
			return nil, err
		}
		kwargItems[k] = wrapped
	}

	resp, err := h.client.do(command.ExecuteCommand{
		Target: h.id,
		Args:   capsule.TupleCapsule{Items: argItems},
		Kwargs: capsule.DictionaryCapsule{Items: kwargItems},
	})
	if err != nil {
		return nil, err
	}
	return h.client.asHandle(resp)
}

// Equals applies the proxied object's equality operator against other.
// Unlike GetAttr/GetItem/Call, Equals materializes its result through an
// evaluate round trip rather than handing back a further handle: a
// predicate is only useful as a bool, and making the caller evaluate it
// themselves would just move this same call to every call site.
func (h *Handle) Equals(other any) (bool, error) {
	result, err := h.operate(command.OperatorEquals, other)
	if err != nil {
		return false, err
	}
	return result.AsBool()
}

// Add applies the proxied object's addition operator against other,
// returning a further handle to the sum (it may not be a primitive).
func (h *Handle) Add(other any) (*Handle, error) {
	return h.operate(command.OperatorAddition, other)
}

func (h *Handle) operate(variant string, other any) (*Handle, error) {
	wrapped, err := capsule.Wrap(other)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.do(command.OperatorCommand{Target: h.id, Variant: variant, Operand: wrapped})
	if err != nil {
		return nil, err
	}
	return h.client.asHandle(resp)
}

// AsInt materializes the proxied object as an integer.
func (h *Handle) AsInt() (int64, error) {
	value, err := h.evaluate(command.VariantInt)
	if err != nil {
		return 0, err
	}
	n, ok := value.(int64)
	if !ok {
		return 0, fmt.Errorf("expected an integer, got %T", value)
	}
	return n, nil
}

// AsBool materializes the proxied object as a boolean.
func (h *Handle) AsBool() (bool, error) {
	value, err := h.evaluate(command.VariantBool)
	if err != nil {
		return false, err
	}
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("expected a boolean, got %T", value)
	}
	return b, nil
}

// AsText materializes the proxied object as a string.
func (h *Handle) AsText() (string, error) {
	value, err := h.evaluate(command.VariantText)
	if err != nil {
		return "", err
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", value)
	}
	return s, nil
}

// AsUnicode materializes the proxied object as a unicode string. On this
// transport it behaves identically to AsText: Go has one string type, so
// the "unicode" variant hint only changes which wire tag the request
// carries, not what comes back.
func (h *Handle) AsUnicode() (string, error) {
	value, err := h.evaluate(command.VariantUnicode)
	if err != nil {
		return "", err
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", value)
	}
	return s, nil
}

// AsList materializes the proxied object as a slice.
func (h *Handle) AsList() ([]any, error) {
	value, err := h.evaluate(command.VariantList)
	if err != nil {
		return nil, err
	}
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", value)
	}
	return list, nil
}

// AsDict materializes the proxied object as a string-keyed mapping.
func (h *Handle) AsDict() (map[string]any, error) {
	value, err := h.evaluate(command.VariantDict)
	if err != nil {
		return nil, err
	}
	dict, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a dict, got %T", value)
	}
	return dict, nil
}

func (h *Handle) evaluate(variant string) (any, error) {
	resp, err := h.client.do(command.EvaluateCommand{Target: h.id, Variant: variant})
	if err != nil {
		return nil, err
	}
	return resp.Interpret(h.client)
}

// Release tells the server to drop this handle's table entry, ending its
// lifetime. A handle must not be used after Release.
func (h *Handle) Release() error {
	resp, err := h.client.do(command.ReleaseCommand{ID: h.id})
	if err != nil {
		return err
	}
	_, err = resp.Interpret(h.client)
	return err
}

// Close is an alias for Release so a Handle can be used with defer in the
// same style as an io.Closer.
func (h *Handle) Close() error {
	return h.Release()
}

func (h *Handle) String() string {
	return fmt.Sprintf("<Handle (%s)>", h.id)
}
