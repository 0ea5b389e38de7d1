package broker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	json "github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	out    []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.out = append(f.out, published{exchange: exchange, key: key, msg: msg})
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_Disabled(t *testing.T) {
	p, err := NewPublisher("", "bookings", newTestLogger(t))
	require.NoError(t, err)

	p.NotifyActivityFull(context.Background(), &domain.Activity{ID: "a1"})
	require.NoError(t, p.Close())
}

func TestPublisher_BookingCreated(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "bookings", logger: newTestLogger(t)}

	date := time.Date(2030, 11, 5, 18, 0, 0, 0, time.UTC)
	p.NotifyBookingCreated(context.Background(),
		&domain.User{ID: "u1", Email: "alice@example.com"},
		&domain.Activity{ID: "a1", Title: "Cooking Workshop", Date: date},
		&domain.Booking{ID: "b1", CreatedAt: date.Add(-time.Hour)},
	)

	require.Len(t, ch.out, 1)
	got := ch.out[0]
	assert.Equal(t, "bookings", got.exchange)
	assert.Equal(t, RoutingKeyBookingCreated, got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var event BookingCreatedEvent
	require.NoError(t, json.Unmarshal(got.msg.Body, &event))
	assert.Equal(t, "b1", event.BookingID)
	assert.Equal(t, "a1", event.ActivityID)
	assert.Equal(t, "alice@example.com", event.UserEmail)
	assert.True(t, event.ActivityDate.Equal(date))
}

func TestPublisher_ActivityFull(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "bookings", logger: newTestLogger(t)}

	p.NotifyActivityFull(context.Background(), &domain.Activity{ID: "a1", Capacity: 12})

	require.Len(t, ch.out, 1)
	assert.Equal(t, RoutingKeyActivityFull, ch.out[0].key)
	assert.JSONEq(t, `{"activityId":"a1","activityTitle":"","activityDate":"0001-01-01T00:00:00Z","capacity":12}`, string(ch.out[0].msg.Body))
}

func TestPublisher_PublishErrorIsSwallowed(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &Publisher{ch: ch, exchange: "bookings", logger: newTestLogger(t)}

	p.NotifyActivityFull(context.Background(), &domain.Activity{ID: "a1"})

	assert.Len(t, ch.out, 1)
	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
