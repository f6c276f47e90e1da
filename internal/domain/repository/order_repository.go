package repository

import (
	"context"

	"github.com/adam-drag/stock-mate/internal/domain/entity"
)

// PurchaseOrderRepository puerto de persistencia para órdenes de compra.
// Cabecera y posiciones se insertan por separado; la atomicidad la aporta la
// transacción en la que viven los repos (ver TxRunner).
type PurchaseOrderRepository interface {
	InsertHeader(ctx context.Context, order *entity.PurchaseOrder) error
	InsertPosition(ctx context.Context, purchaseOrderID string, position *entity.OrderPosition) error
}

// SalesOrderRepository puerto de persistencia para órdenes de venta.
type SalesOrderRepository interface {
	InsertHeader(ctx context.Context, order *entity.SalesOrder) error
	InsertPosition(ctx context.Context, salesOrderID string, position *entity.OrderPosition) error
}
