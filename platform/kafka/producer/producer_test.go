package producer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/you-humble/techrepair/platform/kafka"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...zap.Field) {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}

func TestProducerSend(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true

	sp := mocks.NewSyncProducer(t, cfg)
	defer func() { _ = sp.Close() }()

	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "repair.events" {
			return fmt.Errorf("unexpected topic %q", msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "repair-1" {
			return fmt.Errorf("unexpected key %q", key)
		}
		if len(msg.Headers) != 2 || string(msg.Headers[0].Key) != "a" || string(msg.Headers[1].Key) != "event_type" {
			return fmt.Errorf("headers are not sorted: %v", msg.Headers)
		}
		return nil
	})

	p := NewProducer(sp, "repair.events", nopLogger{})

	err := p.Send(context.Background(), kafka.Message{
		Key:     []byte("repair-1"),
		Value:   []byte(`{"type":"repair.created"}`),
		Headers: map[string]string{"event_type": "repair.created", "a": "b"},
	})
	require.NoError(t, err)
}

func TestProducerSendFailure(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true

	sp := mocks.NewSyncProducer(t, cfg)
	defer func() { _ = sp.Close() }()

	errBroker := errors.New("broker unavailable")
	sp.ExpectSendMessageAndFail(errBroker)

	p := NewProducer(sp, "repair.events", nopLogger{})

	err := p.Send(context.Background(), kafka.Message{Key: []byte("k"), Value: []byte("v")})
	assert.ErrorIs(t, err, errBroker)
}

func TestRecordHeaders(t *testing.T) {
	t.Parallel()

	assert.Nil(t, recordHeaders(nil))

	got := recordHeaders(map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, []sarama.RecordHeader{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
	}, got)
}

func TestNopProducer(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewNopProducer().Send(context.Background(), kafka.Message{}))
}
