package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adam-drag/stock-mate/internal/application/dto"
	"github.com/adam-drag/stock-mate/internal/application/validation"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
)

// emitterPaths rutas de emisión conocidas. Solo aceptan POST; otro método
// sobre ellas es 405 y cualquier otra ruta es 404.
var emitterPaths = map[string]bool{
	"/product":        true,
	"/supplier":       true,
	"/customer":       true,
	"/purchase-order": true,
	"/sales-order":    true,
	"/delivery":       true,
	"/dispatch":       true,
}

// EventRouter registra las rutas del emisor de eventos.
func EventRouter(app *fiber.App, handler *EventHandler) {
	app.Post("/product", handler.Emit(EventConfig{
		EventType: entity.NewProductScheduled,
		Validate:  validation.ValidateCreateProduct,
	}))
	app.Post("/supplier", handler.Emit(EventConfig{
		EventType: entity.NewSupplierScheduled,
		Validate:  validation.ValidateCreateSupplier,
	}))
	app.Post("/customer", handler.Emit(EventConfig{
		EventType: entity.NewCustomerScheduled,
		Validate:  validation.ValidateCreateCustomer,
	}))
	app.Post("/purchase-order", handler.Emit(EventConfig{
		EventType: entity.NewPurchaseOrderScheduled,
		Validate:  validation.ValidateCreatePurchaseOrder,
	}))
	app.Post("/sales-order", handler.Emit(EventConfig{
		EventType: entity.NewSalesOrderScheduled,
		Validate:  validation.ValidateCreateSalesOrder,
	}))
	app.Post("/delivery", handler.Emit(EventConfig{
		EventType: entity.NewDeliveryScheduled,
		Validate:  validation.NotSupported,
	}))
	app.Post("/dispatch", handler.Emit(EventConfig{
		EventType: entity.NewDispatchRequested,
		Validate:  validation.NotSupported,
	}))

	// Fallback: ruta conocida con método equivocado -> 405; resto -> 404.
	app.Use(func(c *fiber.Ctx) error {
		if emitterPaths[c.Path()] {
			return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.MessageResponse{Message: validation.InvalidMethodMessage})
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: validation.InvalidEndpointMessage})
	})
}
