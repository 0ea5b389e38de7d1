// Package broker publishes booking events to a RabbitMQ topic exchange.
package broker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	json "github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const (
	RoutingKeyBookingCreated = "booking.created"
	RoutingKeyActivityFull   = "activity.full"

	publishTimeout = 5 * time.Second
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type BookingCreatedEvent struct {
	BookingID     string    `json:"bookingId"`
	UserID        string    `json:"userId"`
	UserEmail     string    `json:"userEmail"`
	ActivityID    string    `json:"activityId"`
	ActivityTitle string    `json:"activityTitle"`
	ActivityDate  time.Time `json:"activityDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ActivityFullEvent struct {
	ActivityID    string    `json:"activityId"`
	ActivityTitle string    `json:"activityTitle"`
	ActivityDate  time.Time `json:"activityDate"`
	Capacity      int       `json:"capacity"`
}

// Publisher is a BookingNotifier that emits JSON events. A zero URL yields a
// disabled publisher that only logs.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   logger.Logger
	mu       sync.Mutex
}

func NewPublisher(url, exchange string, log logger.Logger) (*Publisher, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, booking events disabled")
		return &Publisher{exchange: exchange, logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info("rabbitmq publisher initialized", logger.String("exchange", exchange))

	return &Publisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (p *Publisher) NotifyBookingCreated(ctx context.Context, user *domain.User, activity *domain.Activity, booking *domain.Booking) {
	p.publish(ctx, RoutingKeyBookingCreated, BookingCreatedEvent{
		BookingID:     booking.ID,
		UserID:        user.ID,
		UserEmail:     user.Email,
		ActivityID:    activity.ID,
		ActivityTitle: activity.Title,
		ActivityDate:  activity.Date,
		CreatedAt:     booking.CreatedAt,
	})
}

func (p *Publisher) NotifyActivityFull(ctx context.Context, activity *domain.Activity) {
	p.publish(ctx, RoutingKeyActivityFull, ActivityFullEvent{
		ActivityID:    activity.ID,
		ActivityTitle: activity.Title,
		ActivityDate:  activity.Date,
		Capacity:      activity.Capacity,
	})
}

func (p *Publisher) publish(ctx context.Context, key string, event any) {
	if p.ch == nil {
		p.logger.Debug("event skipped (publisher disabled)", logger.String("routing_key", key))
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode event",
			logger.String("routing_key", key),
			logger.String("error", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logger.Error("failed to publish event",
			logger.String("routing_key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
