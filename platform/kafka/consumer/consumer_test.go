package consumer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/you-humble/techrepair/platform/kafka"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}

type fakeSession struct {
	ctx context.Context

	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "member" }
func (s *fakeSession) GenerationID() int32                      { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context                 { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return "repair.events" }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func newClaim(msgs ...*sarama.ConsumerMessage) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	close(ch)
	return &fakeClaim{messages: ch}
}

func TestConsumeClaim(t *testing.T) {
	t.Parallel()

	t.Run("marks only handled messages", func(t *testing.T) {
		t.Parallel()

		var got []kafka.Message
		h := NewGroupHandler(func(_ context.Context, msg kafka.Message) error {
			got = append(got, msg)
			if msg.Offset == 2 {
				return errors.New("bad message")
			}
			return nil
		}, nopLogger{})

		session := &fakeSession{ctx: context.Background()}
		claim := newClaim(
			&sarama.ConsumerMessage{Topic: "repair.events", Offset: 1, Key: []byte("r-1"), Value: []byte("a"),
				Headers: []*sarama.RecordHeader{{Key: []byte("event_type"), Value: []byte("repair.created")}, nil}},
			&sarama.ConsumerMessage{Topic: "repair.events", Offset: 2, Value: []byte("b")},
			&sarama.ConsumerMessage{Topic: "repair.events", Offset: 3, Value: []byte("c")},
		)

		require.NoError(t, h.ConsumeClaim(session, claim))

		require.Len(t, got, 3)
		assert.Equal(t, "r-1", string(got[0].Key))
		assert.Equal(t, map[string]string{"event_type": "repair.created"}, got[0].Headers)
		assert.Equal(t, "repair.events", got[0].Topic)
		assert.Equal(t, []int64{1, 3}, session.marked)
	})

	t.Run("returns when the session ends", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		h := NewGroupHandler(func(context.Context, kafka.Message) error { return nil }, nopLogger{})
		claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}

		assert.NoError(t, h.ConsumeClaim(&fakeSession{ctx: ctx}, claim))
	})
}

type logLine struct {
	msg    string
	fields map[string]any
}

type recordingLogger struct {
	mu     sync.Mutex
	errors []logLine
}

func (l *recordingLogger) Info(context.Context, string, ...zap.Field) {}

func (l *recordingLogger) Error(_ context.Context, msg string, fields ...zap.Field) {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, logLine{msg: msg, fields: enc.Fields})
}

func TestConsumeClaimLogsDroppedRepairEvent(t *testing.T) {
	t.Parallel()

	log := &recordingLogger{}
	h := NewGroupHandler(func(context.Context, kafka.Message) error {
		return errors.New("unknown event type")
	}, log)

	session := &fakeSession{ctx: context.Background()}
	claim := newClaim(&sarama.ConsumerMessage{Topic: "repair.events", Partition: 2, Offset: 7, Key: []byte("repair_001")})

	require.NoError(t, h.ConsumeClaim(session, claim))
	assert.Empty(t, session.marked)

	require.Len(t, log.errors, 1)
	line := log.errors[0]
	assert.Equal(t, "kafka message dropped", line.msg)
	assert.Equal(t, "repair_001", line.fields["key"])
	assert.EqualValues(t, 2, line.fields["partition"])
	assert.EqualValues(t, 7, line.fields["offset"])
	assert.Equal(t, "unknown event type", line.fields["error"])
}

func TestMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	mw := func(name string) kafka.Middleware {
		return func(next kafka.MessageHandler) kafka.MessageHandler {
			return func(ctx context.Context, msg kafka.Message) error {
				calls = append(calls, name)
				return next(ctx, msg)
			}
		}
	}

	h := NewGroupHandler(func(context.Context, kafka.Message) error {
		calls = append(calls, "handler")
		return nil
	}, nopLogger{}, mw("outer"), mw("inner"))

	require.NoError(t, h.handler(context.Background(), kafka.Message{}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

type fakeGroup struct {
	sarama.ConsumerGroup

	results []error
	calls   int
	topics  []string
}

func (g *fakeGroup) Consume(_ context.Context, topics []string, _ sarama.ConsumerGroupHandler) error {
	g.topics = topics
	res := g.results[g.calls]
	g.calls++
	return res
}

func TestConsume(t *testing.T) {
	t.Parallel()

	handler := func(context.Context, kafka.Message) error { return nil }

	tests := []struct {
		name   string
		group  *fakeGroup
		ctx    func() context.Context
		assert func(t *testing.T, g *fakeGroup, err error)
	}{
		{
			name:  "closed group stops cleanly",
			group: &fakeGroup{results: []error{nil, sarama.ErrClosedConsumerGroup}},
			ctx:   context.Background,
			assert: func(t *testing.T, g *fakeGroup, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, g.calls)
				assert.Equal(t, []string{"repair.events"}, g.topics)
			},
		},
		{
			name:  "broker error is returned",
			group: &fakeGroup{results: []error{sarama.ErrOutOfBrokers}},
			ctx:   context.Background,
			assert: func(t *testing.T, g *fakeGroup, err error) {
				require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
				assert.Contains(t, err.Error(), `consume group "techrepair-notifier"`)
				assert.Equal(t, 1, g.calls)
			},
		},
		{
			name:  "cancelled context ends the loop",
			group: &fakeGroup{results: []error{nil}},
			ctx: func() context.Context {
				ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
				defer cancel()
				<-ctx.Done()
				return ctx
			},
			assert: func(t *testing.T, g *fakeGroup, err error) {
				require.ErrorIs(t, err, context.DeadlineExceeded)
				assert.Equal(t, 1, g.calls)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewConsumer(tt.group, "techrepair-notifier", []string{"repair.events"}, nopLogger{})
			tt.assert(t, tt.group, c.Consume(tt.ctx(), handler))
		})
	}
}
