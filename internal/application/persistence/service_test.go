package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adam-drag/stock-mate/internal/application/dto"
	"github.com/adam-drag/stock-mate/internal/application/persistence"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	"github.com/adam-drag/stock-mate/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	inserted []*entity.Product
	err      error
}

func (f *fakeProductRepo) Insert(_ context.Context, p *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, p)
	return nil
}

type fakeSupplierRepo struct {
	inserted []*entity.Supplier
}

func (f *fakeSupplierRepo) Insert(_ context.Context, s *entity.Supplier) error {
	f.inserted = append(f.inserted, s)
	return nil
}

type fakeCustomerRepo struct {
	inserted []*entity.Customer
}

func (f *fakeCustomerRepo) Insert(_ context.Context, c *entity.Customer) error {
	f.inserted = append(f.inserted, c)
	return nil
}

type insertedPosition struct {
	orderID  string
	position entity.OrderPosition
}

type fakePurchaseOrderRepo struct {
	headers     []*entity.PurchaseOrder
	positions   []insertedPosition
	positionErr error
	failAfter   int // falla el insert de posición N (base 1); 0 = nunca
}

func (f *fakePurchaseOrderRepo) InsertHeader(_ context.Context, o *entity.PurchaseOrder) error {
	f.headers = append(f.headers, o)
	return nil
}

func (f *fakePurchaseOrderRepo) InsertPosition(_ context.Context, orderID string, p *entity.OrderPosition) error {
	if f.failAfter > 0 && len(f.positions)+1 == f.failAfter {
		return f.positionErr
	}
	f.positions = append(f.positions, insertedPosition{orderID: orderID, position: *p})
	return nil
}

type fakeSalesOrderRepo struct {
	headers   []*entity.SalesOrder
	positions []insertedPosition
}

func (f *fakeSalesOrderRepo) InsertHeader(_ context.Context, o *entity.SalesOrder) error {
	f.headers = append(f.headers, o)
	return nil
}

func (f *fakeSalesOrderRepo) InsertPosition(_ context.Context, orderID string, p *entity.OrderPosition) error {
	f.positions = append(f.positions, insertedPosition{orderID: orderID, position: *p})
	return nil
}

type fakeInventoryRepo struct {
	inserted   []*entity.Inventory
	addedQty   int
	addedPosID string
	returnQty  int
}

func (f *fakeInventoryRepo) Insert(_ context.Context, inv *entity.Inventory) error {
	f.inserted = append(f.inserted, inv)
	return nil
}

func (f *fakeInventoryRepo) AddQuantityReceived(_ context.Context, positionID string, qty int) (int, error) {
	f.addedPosID = positionID
	f.addedQty = qty
	return f.returnQty, nil
}

// fakeTxRunner entrega los repos fake al closure y registra el resultado:
// "commit" si el closure terminó bien, "rollback" si devolvió error.
type fakeTxRunner struct {
	po      *fakePurchaseOrderRepo
	so      *fakeSalesOrderRepo
	inv     *fakeInventoryRepo
	outcome string
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.PurchaseOrderRepository,
	repository.SalesOrderRepository,
	repository.InventoryRepository,
) error) error {
	if err := fn(f.po, f.so, f.inv); err != nil {
		f.outcome = "rollback"
		return err
	}
	f.outcome = "commit"
	return nil
}

func newServiceForTest() (*persistence.Service, *fakeProductRepo, *fakeSupplierRepo, *fakeCustomerRepo, *fakeTxRunner) {
	products := &fakeProductRepo{}
	suppliers := &fakeSupplierRepo{}
	customers := &fakeCustomerRepo{}
	tx := &fakeTxRunner{
		po:  &fakePurchaseOrderRepo{},
		so:  &fakeSalesOrderRepo{},
		inv: &fakeInventoryRepo{returnQty: 42},
	}
	return persistence.NewService(products, suppliers, customers, tx), products, suppliers, customers, tx
}

func positionRequest(productID string) dto.OrderPositionRequest {
	return dto.OrderPositionRequest{
		ProductID:       productID,
		Price:           decimal.NewFromFloat(9.99),
		QuantityOrdered: 5,
		DeliveryDate:    time.Now().Add(72 * time.Hour).Format(time.RFC3339),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests entidades simples
// ──────────────────────────────────────────────────────────────────────────────

func TestPersistProduct_AsignaIDConPrefijo(t *testing.T) {
	svc, products, _, _, _ := newServiceForTest()

	safety, max := 10, 500
	out, err := svc.PersistProduct(context.Background(), dto.CreateProductRequest{
		Name:        "Tornillo M8",
		Description: "caja x100",
		SafetyStock: &safety,
		MaxStock:    &max,
	})
	require.NoError(t, err)

	assert.Contains(t, out.ID, "prod_")
	assert.Equal(t, "Tornillo M8", out.Name)
	assert.Equal(t, 10, out.SafetyStock)
	assert.Equal(t, 500, out.MaxStock)
	require.Len(t, products.inserted, 1)
	assert.Same(t, out, products.inserted[0])
}

func TestPersistProduct_StocksOpcionalesEnCero(t *testing.T) {
	svc, _, _, _, _ := newServiceForTest()

	out, err := svc.PersistProduct(context.Background(), dto.CreateProductRequest{Name: "Tuerca"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.SafetyStock)
	assert.Equal(t, 0, out.MaxStock)
}

func TestPersistProduct_PropagaErrorDelStore(t *testing.T) {
	svc, products, _, _, _ := newServiceForTest()
	products.err = errors.New("db caída")

	_, err := svc.PersistProduct(context.Background(), dto.CreateProductRequest{Name: "Tuerca"})
	assert.Error(t, err)
}

func TestPersistSupplier_AsignaIDConPrefijo(t *testing.T) {
	svc, _, suppliers, _, _ := newServiceForTest()

	out, err := svc.PersistSupplier(context.Background(), dto.CreateSupplierRequest{Name: "ACME"})
	require.NoError(t, err)
	assert.Contains(t, out.ID, "sup_")
	assert.Len(t, suppliers.inserted, 1)
}

func TestPersistCustomer_AsignaIDConPrefijo(t *testing.T) {
	svc, _, _, customers, _ := newServiceForTest()

	out, err := svc.PersistCustomer(context.Background(), dto.CreateCustomerRequest{Name: "Cliente SA"})
	require.NoError(t, err)
	assert.Contains(t, out.ID, "cus_")
	assert.Len(t, customers.inserted, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests órdenes
// ──────────────────────────────────────────────────────────────────────────────

// Tres posiciones → una cabecera y TRES detalles, todos con el mismo ID de orden.
func TestPersistPurchaseOrder_TodasLasPosiciones(t *testing.T) {
	svc, _, _, _, tx := newServiceForTest()

	out, err := svc.PersistPurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: "sup_1",
		OrderPositions: []dto.OrderPositionRequest{
			positionRequest("prod_1"),
			positionRequest("prod_2"),
			positionRequest("prod_3"),
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out.ID, "po_")
	assert.Equal(t, "commit", tx.outcome)
	require.Len(t, tx.po.headers, 1)
	require.Len(t, tx.po.positions, 3, "deben insertarse TODAS las posiciones, no solo la primera")
	for _, inserted := range tx.po.positions {
		assert.Equal(t, out.ID, inserted.orderID, "cada detalle referencia la misma cabecera")
		assert.Contains(t, inserted.position.ID, "op_")
	}
	assert.NotEqual(t, tx.po.positions[0].position.ID, tx.po.positions[1].position.ID)
}

// Si el segundo insert de posición falla, el closure devuelve error y el
// runner hace rollback: no queda orden parcial.
func TestPersistPurchaseOrder_FalloEnSegundaPosicionRollback(t *testing.T) {
	svc, _, _, _, tx := newServiceForTest()
	tx.po.positionErr = errors.New("violación de FK")
	tx.po.failAfter = 2

	_, err := svc.PersistPurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: "sup_1",
		OrderPositions: []dto.OrderPositionRequest{
			positionRequest("prod_1"),
			positionRequest("prod_2"),
		},
	})
	require.Error(t, err)
	assert.Equal(t, "rollback", tx.outcome)
}

func TestPersistPurchaseOrder_FechaInvalidaNoTocaElStore(t *testing.T) {
	svc, _, _, _, tx := newServiceForTest()

	bad := positionRequest("prod_1")
	bad.DeliveryDate = "no es una fecha"

	_, err := svc.PersistPurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID:     "sup_1",
		OrderPositions: []dto.OrderPositionRequest{bad},
	})
	require.Error(t, err)
	assert.Empty(t, tx.po.headers)
	assert.Empty(t, tx.outcome, "la transacción ni siquiera debe abrirse")
}

func TestPersistSalesOrder_TodasLasPosiciones(t *testing.T) {
	svc, _, _, _, tx := newServiceForTest()

	out, err := svc.PersistSalesOrder(context.Background(), dto.CreateSalesOrderRequest{
		CustomerID: "cus_1",
		OrderPositions: []dto.OrderPositionRequest{
			positionRequest("prod_1"),
			positionRequest("prod_2"),
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out.ID, "so_")
	assert.Equal(t, "commit", tx.outcome)
	require.Len(t, tx.so.headers, 1)
	require.Len(t, tx.so.positions, 2)
	assert.Equal(t, out.ID, tx.so.positions[1].orderID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestPersistInventory_InsertaYAcumula(t *testing.T) {
	svc, _, _, _, tx := newServiceForTest()

	out, updatedQty, err := svc.PersistInventory(context.Background(), dto.CreateDeliveryRequest{
		ProductID:               "prod_1",
		PurchaseOrderPositionID: "op_1",
		QuantityReceived:        7,
		ReceivedAt:              "2025-06-15T10:30:00",
		CreatedBy:               "worker",
		UpdatedBy:               "worker",
	})
	require.NoError(t, err)

	assert.Contains(t, out.ID, "inv_")
	assert.Equal(t, 42, updatedQty, "devuelve la cantidad acumulada que reporta el store")
	assert.Equal(t, "commit", tx.outcome)
	require.Len(t, tx.inv.inserted, 1)
	assert.Equal(t, "op_1", tx.inv.addedPosID)
	assert.Equal(t, 7, tx.inv.addedQty)
}

func TestPersistInventory_FechaInvalida(t *testing.T) {
	svc, _, _, _, tx := newServiceForTest()

	_, _, err := svc.PersistInventory(context.Background(), dto.CreateDeliveryRequest{
		ProductID:               "prod_1",
		PurchaseOrderPositionID: "op_1",
		QuantityReceived:        7,
		ReceivedAt:              "ayer",
	})
	require.Error(t, err)
	assert.Empty(t, tx.inv.inserted)
}
