package cart

import "fmt"

// Row is one rendered line of the cart
type Row struct {
	Index     int     `json:"index"`     // Position used by remove/update
	Name      string  `json:"name"`      // Item name
	Price     float64 `json:"price"`     // Unit price
	ImageSrc  string  `json:"imageSrc"`  // Image reference
	Quantity  int     `json:"quantity"`  // Quantity
	LineTotal float64 `json:"lineTotal"` // Price * quantity
}

// View is the rendered cart summary
type View struct {
	Rows       []Row   `json:"items"`      // Rows in insertion order
	ItemCount  int     `json:"item_count"` // Number of distinct items
	GrandTotal float64 `json:"total"`      // Sum of line totals
}

// CountLabel renders the header count, e.g. "3 Items"
func (v View) CountLabel() string {
	return fmt.Sprintf("%d Items", v.ItemCount)
}

// FormatPrice renders an amount with two decimals and a dollar sign
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
