package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/adam-drag/stock-mate/internal/application/events"
	"github.com/adam-drag/stock-mate/internal/application/persistence"
	"github.com/adam-drag/stock-mate/internal/application/routing"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	infrakafka "github.com/adam-drag/stock-mate/internal/infrastructure/kafka"
	"github.com/adam-drag/stock-mate/internal/infrastructure/postgres"
	"github.com/adam-drag/stock-mate/pkg/config"
	"github.com/adam-drag/stock-mate/pkg/logger"
)

// consumeRetryDelay espera antes de recrear un consumidor que terminó con error.
const consumeRetryDelay = 5 * time.Second

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
		Msg("iniciando worker de persistencia")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	publisher := infrakafka.NewPublisher(cfg.Kafka.Brokers)
	defer publisher.Close()

	eventRepo := postgres.NewEventRepository(pool)
	manager := events.NewManager(eventRepo, publisher, log)

	svc := persistence.NewService(
		postgres.NewProductRepository(pool),
		postgres.NewSupplierRepository(pool),
		postgres.NewCustomerRepository(pool),
		postgres.NewTxRunner(pool),
	)

	topicFor := func(et entity.EventType) string {
		return cfg.Kafka.TopicFor(string(et))
	}
	router := routing.NewTopicRouter(svc, manager, topicFor, log)

	topics := cfg.Kafka.ScheduledTopics()
	if len(topics) == 0 {
		log.Fatal().Msg("ningún topic configurado para consumir")
	}

	var wg sync.WaitGroup
	for _, topic := range topics {
		wg.Add(1)
		go func(topic string) {
			defer wg.Done()
			consumeLoop(ctx, cfg, router, topic, log)
		}(topic)
	}

	log.Info().Strs("topics", topics).Msg("worker consumiendo")
	wg.Wait()
	log.Info().Msg("worker detenido")
}

// consumeLoop consume un topic hasta que el contexto se cancele. Si el
// consumidor termina con error (fallo del handler o del broker), se recrea
// tras una espera: el offset sin confirmar hace que el mensaje se reentregue.
func consumeLoop(ctx context.Context, cfg *config.Config, router *routing.TopicRouter, topic string, log *logger.Logger) {
	for {
		consumer := infrakafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, topic, log)

		err := consumer.Consume(ctx, func(ctx context.Context, value []byte) error {
			return router.Route(ctx, [][]byte{value})
		})
		if closeErr := consumer.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("topic", topic).Msg("cierre del consumidor")
		}

		if ctx.Err() != nil {
			return
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Str("topic", topic).Msg("consumidor terminó con error, se recrea")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(consumeRetryDelay):
		}
	}
}
