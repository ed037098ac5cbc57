package model

// Product identifies one product line by (name, supplier).
// It is a value type: two Products with the same name and supplier are
// interchangeable, including as map keys. Products carry no state beyond
// identity; batches reference them.
type Product struct {
	ProductName string `json:"product_name"`
	Supplier    string `json:"supplier"`
}

// NewProduct creates a product identity.
func NewProduct(productName, supplier string) Product {
	return Product{
		ProductName: productName,
		Supplier:    supplier,
	}
}
