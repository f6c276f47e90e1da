package entity

// Customer cliente de órdenes de venta.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
