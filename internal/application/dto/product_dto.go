package dto

// CreateProductRequest entrada para programar la creación de un producto.
// SafetyStock y MaxStock son opcionales; ausentes equivalen a 0.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SafetyStock *int   `json:"safety_stock"`
	MaxStock    *int   `json:"max_stock"`
}

// CreateSupplierRequest entrada para programar la creación de un proveedor.
type CreateSupplierRequest struct {
	Name string `json:"name"`
}

// CreateCustomerRequest entrada para programar la creación de un cliente.
type CreateCustomerRequest struct {
	Name string `json:"name"`
}
