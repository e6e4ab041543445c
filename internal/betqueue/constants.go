package betqueue

import "time"

// Kafka defaults
const (
	DefaultTopic   = "jackpot-bets"
	DefaultGroupID = "jackpot-service-group"

	WriterMaxAttempts  = 3
	WriterWriteTimeout = 10 * time.Second
	WriterReadTimeout  = 10 * time.Second

	ReaderMinBytes       = 1
	ReaderMaxBytes       = 10e6 // 10MB
	ReaderCommitInterval = 0    // synchronous commits
	FetchRetryDelay      = time.Second

	// HeaderRequestID carries the submitting request's correlation ID
	HeaderRequestID = "X-Request-ID"

	// keySeparator joins user ID and bet ID in message keys
	keySeparator = "-"
)

// Log messages
const (
	LogMsgBetPublished       = "Bet published to queue"
	LogMsgBetPublishFailed   = "Failed to publish bet to queue"
	LogMsgConsumerStarted    = "Kafka bet consumer started"
	LogMsgConsumerStopping   = "Stopping Kafka bet consumer..."
	LogMsgConsumerStopped    = "Kafka bet consumer stopped"
	LogMsgFetchFailed        = "Error fetching bet message from Kafka"
	LogMsgMessageUndecodable = "Skipping undecodable bet message"
	LogMsgMessageHandedOff   = "Bet message handed to worker pool"
	LogMsgCommitFailed       = "Error committing bet message"
	LogMsgEnqueueFailed      = "Failed to hand bet message to worker pool"
	LogMsgReaderCloseFailed  = "Error closing Kafka reader"
	LogMsgWriterCloseFailed  = "Error closing Kafka writer"
	ErrContextMarshalBet     = "failed to marshal bet"
	ErrContextWriteBet       = "failed to write bet to kafka"
	ErrContextEnqueueBet     = "failed to enqueue bet"
	ErrMsgInvalidKey         = "invalid bet message key, expected <userId>-<betId>"
	ErrMsgUndecodableValue   = "invalid bet message value"
	ReasonDecode             = "decode"
	ReasonEnqueue            = "enqueue"
)
