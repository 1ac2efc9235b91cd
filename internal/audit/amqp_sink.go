package audit

import (
	"context"
	"encoding/json"

	"siparhanud-backend/internal/model"

	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPSink meneruskan entri audit ke exchange RabbitMQ.
type AMQPSink struct {
	channel    amqpPublisher
	conn       *amqp.Connection
	exchange   string
	routingKey string
}

func NewAMQPSink(ch amqpPublisher, exchange, routingKey string) *AMQPSink {
	return &AMQPSink{channel: ch, exchange: exchange, routingKey: routingKey}
}

// DialAMQP membuka koneksi dan mendeklarasikan exchange topic yang durable.
func DialAMQP(url, exchange, routingKey string) (*AMQPSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	sink := NewAMQPSink(ch, exchange, routingKey)
	sink.conn = conn
	return sink, nil
}

func (s *AMQPSink) Publish(ctx context.Context, entry model.AuditLog) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(ctx,
		s.exchange,
		s.routingKey,
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    entry.ID,
			Type:         entry.Action,
			Timestamp:    entry.Timestamp,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (s *AMQPSink) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
