// Package catalog lists the products shown on the home view.
package catalog

// Product is one purchasable entry. Its add-to-cart control carries exactly
// Name, Price and ImageSrc.
type Product struct {
	Name        string
	Price       float64
	ImageSrc    string
	Description string
}

var products = []Product{
	{Name: "Classic Shirt", Price: 19.99, ImageSrc: "/static/img/shirt.svg", Description: "Cotton shirt, regular fit."},
	{Name: "Denim Jeans", Price: 49.50, ImageSrc: "/static/img/jeans.svg", Description: "Straight leg, mid wash."},
	{Name: "Canvas Sneakers", Price: 64.00, ImageSrc: "/static/img/sneakers.svg", Description: "Low top, rubber sole."},
	{Name: "Wool Beanie", Price: 14.25, ImageSrc: "/static/img/beanie.svg", Description: "Ribbed knit, one size."},
	{Name: "Leather Belt", Price: 29.00, ImageSrc: "/static/img/belt.svg", Description: "Brass buckle."},
	{Name: "Travel Backpack", Price: 89.99, ImageSrc: "/static/img/backpack.svg", Description: "28 L, laptop sleeve."},
}

// All returns a copy of the seeded products
func All() []Product {
	cp := make([]Product, len(products))
	copy(cp, products)
	return cp
}
