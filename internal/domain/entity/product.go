package entity

// Product producto del catálogo. SafetyStock y MaxStock son niveles de
// inventario objetivo, nunca negativos.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SafetyStock int    `json:"safety_stock"`
	MaxStock    int    `json:"max_stock"`
}
