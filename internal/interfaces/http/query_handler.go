package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/adam-drag/stock-mate/internal/application/dto"
	"github.com/adam-drag/stock-mate/internal/application/query"
	"github.com/adam-drag/stock-mate/pkg/logger"
)

// Fetcher lado de lectura consultado por la API de consultas.
type Fetcher interface {
	FetchProducts(ctx context.Context, params []query.Param) ([]map[string]any, error)
	FetchSalesOrders(ctx context.Context, params []query.Param) ([]map[string]any, error)
	FetchPurchaseOrders(ctx context.Context, params []query.Param) ([]map[string]any, error)
}

// QueryHandler maneja las rutas de consulta de solo lectura.
type QueryHandler struct {
	svc Fetcher
	log *logger.Logger
}

// NewQueryHandler construye el handler de consultas.
func NewQueryHandler(svc Fetcher, log *logger.Logger) *QueryHandler {
	return &QueryHandler{svc: svc, log: log}
}

// QueryRouter registra las rutas de la API de consultas.
func QueryRouter(app *fiber.App, handler *QueryHandler) {
	app.Get("/products", handler.fetch(func(ctx context.Context, svc Fetcher, params []query.Param) ([]map[string]any, error) {
		return svc.FetchProducts(ctx, params)
	}))
	app.Get("/sales_orders", handler.fetch(func(ctx context.Context, svc Fetcher, params []query.Param) ([]map[string]any, error) {
		return svc.FetchSalesOrders(ctx, params)
	}))
	app.Get("/purchase_orders", handler.fetch(func(ctx context.Context, svc Fetcher, params []query.Param) ([]map[string]any, error) {
		return svc.FetchPurchaseOrders(ctx, params)
	}))

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.QueryErrorResponse{Error: "Not Found"})
	})
}

func (h *QueryHandler) fetch(do func(ctx context.Context, svc Fetcher, params []query.Param) ([]map[string]any, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := parseQueryParams(string(c.Request().URI().QueryString()))

		results, err := do(c.UserContext(), h.svc, params)
		if err != nil {
			h.log.Error().Err(err).Str("path", c.Path()).Msg("consulta falló")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.QueryErrorResponse{Error: "Internal Server Error"})
		}
		return c.Status(fiber.StatusOK).JSON(results)
	}
}

// parseQueryParams parsea la query string a mano para conservar el orden de
// llegada de los parámetros; url.Values lo perdería.
func parseQueryParams(raw string) []query.Param {
	if raw == "" {
		return nil
	}
	var params []query.Param
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			continue
		}
		params = append(params, query.Param{Key: k, Value: v})
	}
	return params
}
