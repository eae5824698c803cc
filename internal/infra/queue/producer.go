package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DripPayload is one due nurture email handed from the scheduler to the
// delivery consumer.
type DripPayload struct {
	ScheduledEmailID string `json:"scheduled_email_id"`
	LeadID           string `json:"lead_id"`
	TemplateType     string `json:"template_type"`
	Subject          string `json:"subject"`
}

type DripProducerInterface interface {
	PublishDrip(ctx context.Context, payload DripPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishDrip(ctx context.Context, payload DripPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal drip payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // survives a broker restart
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish drip email: %v", err)
	}

	return nil
}
