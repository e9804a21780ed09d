package kafka

import (
	"context"
	"time"
)

type (
	Middleware     func(next MessageHandler) MessageHandler
	MessageHandler func(ctx context.Context, msg Message) error
)

// Message is a record in either direction. On send only Key, Value and
// Headers are used; the topic comes from the producer.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string

	Topic     string
	Partition int32
	Offset    int64
	Timestamp time.Time
}

type Consumer interface {
	Consume(ctx context.Context, handler MessageHandler) error
}

type Producer interface {
	Send(ctx context.Context, msg Message) error
}
