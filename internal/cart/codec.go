package cart

import (
	"bytes"         // Decoder input
	"encoding/json" // Cart wire format
	"errors"        // Sentinel errors
	"fmt"           // Error wrapping
	"storefront/internal/domain"

	"github.com/go-playground/validator/v10" // Struct validation
)

// ErrCorruptCart is returned when the persisted cart does not decode into a valid item list
var ErrCorruptCart = errors.New("corrupt cart")

var validate = validator.New()

// persisted wraps the item list so the validator can check it as a whole
type persisted struct {
	Items []domain.CartItem `validate:"unique=Name,dive"` // One item per name, each item valid
}

// Decode parses the JSON array stored under the cart key. Unknown fields,
// negative prices, quantities below 1, empty or duplicate names are rejected.
// An empty string or "null" decodes to an empty cart.
func Decode(raw string) ([]domain.CartItem, error) {
	if raw == "" {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	var p persisted
	if err := dec.Decode(&p.Items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrCorruptCart)
	}
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}
	return p.Items, nil
}

// Encode serialises items as the JSON array written under the cart key
func Encode(items []domain.CartItem) (string, error) {
	if items == nil {
		items = []domain.CartItem{} // Persist "[]" rather than "null"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
