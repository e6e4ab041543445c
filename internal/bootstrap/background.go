package bootstrap

import (
	"log/slog"

	"github.com/osse101/JackpotEngine_Go/internal/betqueue"
	"github.com/osse101/JackpotEngine_Go/internal/config"
	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/internal/scheduler"
	"github.com/osse101/JackpotEngine_Go/internal/worker"
)

// Background holds the asynchronous bet pipeline and scheduled jobs
type Background struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler

	// Publisher is what the HTTP layer hands accepted bets to
	Publisher betqueue.Publisher

	// Set only when Kafka brokers are configured
	Consumer *betqueue.KafkaConsumer
	Writer   *betqueue.KafkaPublisher
}

// StartBackground starts the worker pool, the bet queue and the scheduler.
// Without Kafka brokers bets go straight onto the pool. The event log cleanup
// job is only scheduled when eventLog is non-nil.
func StartBackground(cfg *config.Config, processor worker.BetProcessor, eventLog eventlog.Service) *Background {
	bg := &Background{Pool: worker.NewPool(cfg.BetWorkers, cfg.BetQueueSize)}
	bg.Pool.Start()

	transport := TransportLocal
	if cfg.UsesKafka() {
		transport = TransportKafka
		bg.Writer = betqueue.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaBetTopic)
		bg.Publisher = bg.Writer
		bg.Consumer = betqueue.NewKafkaConsumer(betqueue.ConsumerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaBetTopic,
			GroupID: cfg.KafkaGroupID,
		}, bg.Pool, processor)
		bg.Consumer.Start()
	} else {
		bg.Publisher = betqueue.NewLocalPublisher(bg.Pool, processor)
	}
	slog.Info(LogMsgBetQueueStarted, "transport", transport, "workers", cfg.BetWorkers)

	bg.Scheduler = scheduler.New(bg.Pool)
	if eventLog != nil {
		bg.Scheduler.Schedule(EventLogCleanupInterval, eventlog.NewCleanupJob(eventLog, cfg.EventLogRetentionDays))
	}
	bg.Scheduler.Start()
	slog.Info(LogMsgSchedulerStarted)

	return bg
}
