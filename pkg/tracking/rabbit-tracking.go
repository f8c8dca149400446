package tracking

import (
	"context"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/DFE-Digital/fips-v4/pkg/messaging"
)

// RabbitTracking publishes tracking events to the search events topic.
type RabbitTracking struct {
	mu         sync.Mutex
	prefix     string
	connection *amqp.Connection
	channel    *amqp.Channel
	publisher  messaging.Publisher
}

// NewRabbitTracking dials url and declares the search events topic under
// prefix.
func NewRabbitTracking(url, prefix string) (*RabbitTracking, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err = messaging.DefineTopic(ch, prefix, messaging.SearchEvents); err != nil {
		conn.Close()
		return nil, err
	}
	return &RabbitTracking{
		prefix:     prefix,
		connection: conn,
		channel:    ch,
		publisher:  ch,
	}, nil
}

func (t *RabbitTracking) Connection() *amqp.Connection {
	return t.connection
}

func (t *RabbitTracking) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.channel != nil {
		t.channel.Close()
	}
	if t.connection == nil {
		return nil
	}
	return t.connection.Close()
}

// send publishes on the shared channel. amqp channels are not safe for
// concurrent publishing.
func (t *RabbitTracking) send(data any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := messaging.Publish(t.publisher, t.prefix, messaging.SearchEvents, data); err != nil {
		logrus.WithError(err).Warn("error sending tracking event")
	}
}

func (t *RabbitTracking) TrackSearch(ctx context.Context, event *SearchEvent) {
	t.send(event)
}

func (t *RabbitTracking) TrackProductView(ctx context.Context, event *ProductViewEvent) {
	t.send(event)
}
