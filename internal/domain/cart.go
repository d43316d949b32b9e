package domain

// CartItem Model
type CartItem struct {
	Name     string  `json:"name" validate:"required"`           // Identity key, one item per name
	Price    float64 `json:"price" validate:"gte=0"`             // Unit price
	ImageSrc string  `json:"imageSrc"`                           // Image reference shown in the cart row
	Quantity int     `json:"quantity" validate:"required,gte=1"` // Always at least 1
}

// LineTotal returns price * quantity for the item
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
