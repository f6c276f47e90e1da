package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/adam-drag/stock-mate/internal/application/events"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	infrakafka "github.com/adam-drag/stock-mate/internal/infrastructure/kafka"
	"github.com/adam-drag/stock-mate/internal/infrastructure/postgres"
	httpRouter "github.com/adam-drag/stock-mate/internal/interfaces/http"
	"github.com/adam-drag/stock-mate/pkg/config"
	"github.com/adam-drag/stock-mate/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando emisor de eventos")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	publisher := infrakafka.NewPublisher(cfg.Kafka.Brokers)
	defer publisher.Close()

	eventRepo := postgres.NewEventRepository(pool)
	manager := events.NewManager(eventRepo, publisher, log)

	topicFor := func(et entity.EventType) string {
		return cfg.Kafka.TopicFor(string(et))
	}
	handler := httpRouter.NewEventHandler(manager, topicFor, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.EventRouter(app, handler)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("emisor detenido")
}
