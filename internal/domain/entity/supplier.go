package entity

// Supplier proveedor de órdenes de compra.
type Supplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
