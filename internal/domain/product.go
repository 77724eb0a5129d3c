package domain

// Product represents a product in the catalog
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Qty         int
}
