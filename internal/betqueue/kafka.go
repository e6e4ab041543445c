package betqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
	"github.com/osse101/JackpotEngine_Go/internal/metrics"
	"github.com/osse101/JackpotEngine_Go/internal/worker"
)

// messageWriter is the subset of *kafka.Writer the publisher uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// messageReader is the subset of *kafka.Reader the consumer uses
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes bets to the bet topic and waits for all in-sync replicas
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher creates a synchronous publisher for topic
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  WriterMaxAttempts,
			WriteTimeout: WriterWriteTimeout,
			ReadTimeout:  WriterReadTimeout,
		},
	}
}

// PublishBet returns once the broker acknowledged the message
func (p *KafkaPublisher) PublishBet(ctx context.Context, bet domain.BetRequest) error {
	log := logger.FromContext(ctx)

	key, value, err := EncodeBet(bet)
	if err != nil {
		return err
	}

	msg := kafka.Message{Key: key, Value: value, Time: time.Now()}
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		msg.Headers = []kafka.Header{{Key: HeaderRequestID, Value: []byte(requestID)}}
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Error(LogMsgBetPublishFailed, "betID", bet.BetID, "transport", metrics.TransportKafka, "error", err)
		return fmt.Errorf("%s: %w", ErrContextWriteBet, err)
	}

	metrics.BetsEnqueued.WithLabelValues(metrics.TransportKafka).Inc()
	log.Debug(LogMsgBetPublished, "betID", bet.BetID, "key", string(key), "transport", metrics.TransportKafka)
	return nil
}

// Close flushes and closes the writer
func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		logger.Error(LogMsgWriterCloseFailed, "error", err)
		return err
	}
	return nil
}

// ConsumerConfig holds Kafka consumer configuration
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// KafkaConsumer turns bet messages into contribution jobs on the worker pool.
// Offsets are committed once a message has been handed off, including
// messages that could not be decoded.
type KafkaConsumer struct {
	reader    messageReader
	pool      Enqueuer
	processor worker.BetProcessor

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewKafkaConsumer creates a consumer group reader for the bet topic
func NewKafkaConsumer(cfg ConsumerConfig, pool Enqueuer, processor worker.BetProcessor) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       ReaderMinBytes,
		MaxBytes:       ReaderMaxBytes,
		CommitInterval: ReaderCommitInterval,
		StartOffset:    kafka.FirstOffset,
	})
	return newKafkaConsumer(reader, pool, processor)
}

func newKafkaConsumer(reader messageReader, pool Enqueuer, processor worker.BetProcessor) *KafkaConsumer {
	ctx, cancel := context.WithCancel(context.Background())
	return &KafkaConsumer{
		reader:    reader,
		pool:      pool,
		processor: processor,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start begins consuming messages
func (c *KafkaConsumer) Start() {
	c.wg.Add(1)
	go c.consume()
	logger.Info(LogMsgConsumerStarted)
}

// Stop cancels the fetch loop and closes the reader
func (c *KafkaConsumer) Stop() error {
	logger.Info(LogMsgConsumerStopping)
	c.cancel()
	c.wg.Wait()

	if err := c.reader.Close(); err != nil {
		logger.Error(LogMsgReaderCloseFailed, "error", err)
		return err
	}
	logger.Info(LogMsgConsumerStopped)
	return nil
}

func (c *KafkaConsumer) consume() {
	defer c.wg.Done()

	for {
		msg, err := c.reader.FetchMessage(c.ctx)
		if err != nil {
			if c.ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			logger.Error(LogMsgFetchFailed, "error", err)
			select {
			case <-time.After(FetchRetryDelay):
				continue
			case <-c.ctx.Done():
				return
			}
		}

		if err := c.handleMessage(msg); err != nil && c.ctx.Err() != nil {
			// Not handed off; leave uncommitted for redelivery
			return
		}

		if err := c.reader.CommitMessages(c.ctx, msg); err != nil {
			logger.Error(LogMsgCommitFailed, "partition", msg.Partition, "offset", msg.Offset, "error", err)
		}
	}
}

// handleMessage returns an error only when the job could not be queued
func (c *KafkaConsumer) handleMessage(msg kafka.Message) error {
	ctx := c.ctx
	requestID := headerValue(msg.Headers, HeaderRequestID)
	if requestID != "" {
		ctx = logger.WithRequestID(ctx, requestID)
	}
	log := logger.FromContext(ctx)

	bet, err := DecodeBet(msg.Key, msg.Value)
	if err != nil {
		metrics.BetsFailed.WithLabelValues(ReasonDecode).Inc()
		log.Warn(LogMsgMessageUndecodable, "partition", msg.Partition, "offset", msg.Offset, "error", err)
		return nil
	}

	if err := c.pool.Enqueue(ctx, worker.NewContributionJob(c.processor, bet, requestID)); err != nil {
		metrics.BetsFailed.WithLabelValues(ReasonEnqueue).Inc()
		log.Error(LogMsgEnqueueFailed, "betID", bet.BetID, "error", err)
		return err
	}

	log.Debug(LogMsgMessageHandedOff, "betID", bet.BetID, "partition", msg.Partition, "offset", msg.Offset)
	return nil
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
