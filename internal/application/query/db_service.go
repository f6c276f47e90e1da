package query

import (
	"context"
	"fmt"
)

// Param parámetro de filtro en el orden en que llegó en la query string.
// El orden se conserva tal cual; no se ordena.
type Param struct {
	Key   string
	Value string
}

// SelectExecutor puerto de solo lectura. La implementación debe rechazar
// cualquier sentencia que no sea SELECT antes de ejecutarla.
type SelectExecutor interface {
	ExecuteSelect(ctx context.Context, query string, args []any) ([]map[string]any, error)
}

// DbService arma y ejecuta los SELECT parametrizados del lado de lectura.
type DbService struct {
	exec SelectExecutor

	productsTable       string
	salesOrdersTable    string
	purchaseOrdersTable string
}

// NewDbService construye el servicio de consultas.
func NewDbService(exec SelectExecutor) *DbService {
	return &DbService{
		exec:                exec,
		productsTable:       "products",
		salesOrdersTable:    "sales_orders",
		purchaseOrdersTable: "purchase_orders",
	}
}

// FetchProducts consulta productos con filtros de igualdad.
func (s *DbService) FetchProducts(ctx context.Context, params []Param) ([]map[string]any, error) {
	return s.fetch(ctx, s.productsTable, params)
}

// FetchSalesOrders consulta órdenes de venta con filtros de igualdad.
func (s *DbService) FetchSalesOrders(ctx context.Context, params []Param) ([]map[string]any, error) {
	return s.fetch(ctx, s.salesOrdersTable, params)
}

// FetchPurchaseOrders consulta órdenes de compra con filtros de igualdad.
func (s *DbService) FetchPurchaseOrders(ctx context.Context, params []Param) ([]map[string]any, error) {
	return s.fetch(ctx, s.purchaseOrdersTable, params)
}

func (s *DbService) fetch(ctx context.Context, table string, params []Param) ([]map[string]any, error) {
	query, args := BuildQuery(table, params)
	return s.exec.ExecuteSelect(ctx, query, args)
}

// BuildQuery parte de "SELECT * FROM {tabla} WHERE 1=1" y agrega un
// "AND {columna} = $n" por parámetro, en el orden recibido.
func BuildQuery(table string, params []Param) (string, []any) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE 1=1", table)
	args := make([]any, 0, len(params))
	for i, p := range params {
		query += fmt.Sprintf(" AND %s = $%d", p.Key, i+1)
		args = append(args, p.Value)
	}
	return query, args
}
