package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DripSender delivers one claimed drip step end to end (lead re-check,
// render, SMTP, bookkeeping).
type DripSender interface {
	SendDrip(ctx context.Context, scheduledEmailID, leadID, templateType, subject string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  DripSender
}

func NewWorker(ch *amqp.Channel, sender DripSender) *Worker {
	return &Worker{Channel: ch, Sender: sender}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ failed to register drip consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload DripPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [DRIP] invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it goes to
				// the DLQ instead of blocking the queue.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [DRIP] delivering template=%s lead=%s", payload.TemplateType, payload.LeadID)

			if err := w.Sender.SendDrip(context.Background(), payload.ScheduledEmailID, payload.LeadID, payload.TemplateType, payload.Subject); err != nil {
				log.Printf("❌ [DRIP] delivery failed: %s", err)
				// No requeue: the failed step dead-letters with its payload
				// intact for inspection or manual replay.
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] drip worker waiting on queue '%s'", queueName)
	<-forever
}
