package servicefabric

import (
	"encoding/json"
	"fmt"
)

// UnknownKindError is returned when a polymorphic payload carries a discriminator value that has no
// matching variant.
type UnknownKindError struct {
	Family        string
	Discriminator string
	Value         string
}

func (e *UnknownKindError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: missing discriminator property %q", e.Family, e.Discriminator)
	}

	return fmt.Sprintf("%s: unknown %s %q", e.Family, e.Discriminator, e.Value)
}

// marshalKinded serializes value (normally a local alias of the variant, so MarshalJSON does not
// recurse) and adds the discriminator property.
func marshalKinded(discriminator string, kind string, value any) ([]byte, error) {
	body, err := json.Marshal(value)

	if err != nil {
		return nil, err
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}

	encodedKind, err := json.Marshal(kind)

	if err != nil {
		return nil, err
	}

	fields[discriminator] = encodedKind

	return json.Marshal(fields)
}

// readDiscriminator returns the string value of the discriminator property, or "" when it is absent.
func readDiscriminator(data []byte, discriminator string) (string, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", err
	}

	raw, ok := fields[discriminator]
	if !ok {
		return "", nil
	}

	kind := ""
	if err := json.Unmarshal(raw, &kind); err != nil {
		return "", fmt.Errorf("discriminator %s: %w", discriminator, err)
	}

	return kind, nil
}

// family describes how to decode one discriminated union.
type family[T any] struct {
	name          string
	discriminator string
	variants      map[string]func() T
}

// validator is implemented by the variants that guard their required and bounded fields.
type validator interface {
	Validate() error
}

// decode picks the variant named by the discriminator, unmarshals data into it and validates the
// result. A JSON null decodes to the zero value of T.
func (f family[T]) decode(data []byte) (T, error) {
	var zero T

	if isJSONNull(data) {
		return zero, nil
	}

	kind, err := readDiscriminator(data, f.discriminator)

	if err != nil {
		return zero, fmt.Errorf("%s: %w", f.name, err)
	}

	factory, ok := f.variants[kind]
	if !ok {
		return zero, &UnknownKindError{Family: f.name, Discriminator: f.discriminator, Value: kind}
	}

	value := factory()
	if err := json.Unmarshal(data, value); err != nil {
		return zero, fmt.Errorf("%s %s: %w", f.name, kind, err)
	}

	if validatable, ok := any(value).(validator); ok {
		if err := validatable.Validate(); err != nil {
			return zero, fmt.Errorf("%s %s: %w", f.name, kind, err)
		}
	}

	return value, nil
}

// decodeList decodes a JSON array of family members.
func (f family[T]) decodeList(data []byte) ([]T, error) {
	if isJSONNull(data) {
		return nil, nil
	}

	raws := []json.RawMessage{}
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%s list: %w", f.name, err)
	}

	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		item, err := f.decode(raw)

		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func isJSONNull(data []byte) bool {
	return len(data) == 0 || string(data) == "null"
}
