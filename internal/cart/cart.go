// Package cart keeps the ordered line items of a browser scope and renders
// their totals.
package cart

import (
	"context" // Context for store calls
	"fmt"     // Error wrapping
	"slices"  // Positional delete
	"strconv" // Quantity parsing
	"strings" // Whitespace trimming

	"storefront/internal/domain" // CartItem model
	"storefront/internal/store"  // Persisted store
)

// Notification is shown after an item is added
const Notification = "Your product added to cart"

// Manager owns the cart of one store. Every mutation persists the whole list.
type Manager struct {
	st    store.Store
	items []domain.CartItem
}

// Load reads the persisted cart. A missing key is an empty cart; a value
// that fails Decode returns ErrCorruptCart.
func Load(ctx context.Context, st store.Store) (*Manager, error) {
	raw, _, err := st.Get(ctx, store.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	items, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return &Manager{st: st, items: items}, nil
}

// Reset replaces whatever is stored with an empty cart
func Reset(ctx context.Context, st store.Store) (*Manager, error) {
	m := &Manager{st: st}
	if err := m.save(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// AddItem increments the quantity of the item called name, or appends a new
// item with quantity 1
func (m *Manager) AddItem(ctx context.Context, name string, price float64, imageSrc string) error {
	if i := m.indexOf(name); i >= 0 {
		m.items[i].Quantity++
	} else {
		m.items = append(m.items, domain.CartItem{Name: name, Price: price, ImageSrc: imageSrc, Quantity: 1})
	}
	return m.save(ctx)
}

// RemoveItem deletes the item at index; later items shift down by one.
// An out-of-range index changes nothing.
func (m *Manager) RemoveItem(ctx context.Context, index int) error {
	if m.inRange(index) {
		m.items = slices.Delete(m.items, index, index+1)
	}
	return m.save(ctx)
}

// UpdateQuantity sets the quantity at index from raw user input, see ParseQuantity.
// An out-of-range index changes nothing.
func (m *Manager) UpdateQuantity(ctx context.Context, index int, raw string) error {
	if m.inRange(index) {
		m.items[index].Quantity = ParseQuantity(raw)
	}
	return m.save(ctx)
}

// Items returns a copy of the items in insertion order
func (m *Manager) Items() []domain.CartItem {
	return slices.Clone(m.items)
}

// Render recomputes every line total and the grand total
func (m *Manager) Render() View {
	v := View{Rows: make([]Row, 0, len(m.items)), ItemCount: len(m.items)}
	for i, item := range m.items {
		line := item.LineTotal()
		v.GrandTotal += line
		v.Rows = append(v.Rows, Row{
			Index:     i,
			Name:      item.Name,
			Price:     item.Price,
			ImageSrc:  item.ImageSrc,
			Quantity:  item.Quantity,
			LineTotal: line,
		})
	}
	return v
}

// ParseQuantity reads a leading integer the way a browser's parseInt does:
// optional whitespace and sign, then decimal digits, ignoring the rest.
// A failed parse or a result below 1 yields 1.
func ParseQuantity(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\f\v")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || neg || n < 1 {
		return 1
	}
	return n
}

func (m *Manager) indexOf(name string) int {
	return slices.IndexFunc(m.items, func(it domain.CartItem) bool { return it.Name == name })
}

func (m *Manager) inRange(index int) bool {
	return index >= 0 && index < len(m.items)
}

func (m *Manager) save(ctx context.Context) error {
	raw, err := Encode(m.items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := m.st.Set(ctx, store.KeyCart, raw); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
