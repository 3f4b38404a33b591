package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// FollowUpSender is the contract for whoever delivers the follow-up
// (SMTP today, could be SMS later).
type FollowUpSender interface {
	SendFollowUp(to, name, source, insuranceType string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  FollowUpSender
}

func NewWorker(ch *amqp.Channel, sender FollowUpSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] Invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it goes to
				// the DLQ instead of blocking the queue.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Sending follow-up to %s (source: %s)", payload.Email, payload.Source)

			if err := w.Sender.SendFollowUp(payload.Email, payload.Name, payload.Source, payload.InsuranceType); err != nil {
				log.Printf("❌ [WORKER] Follow-up failed: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Follow-up delivered to %s", payload.Email)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Follow-up worker waiting on queue '%s'", queueName)
	<-forever
}
