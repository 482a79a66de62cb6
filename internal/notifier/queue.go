package notifier

import (
	"context"
	"encoding/json"
	"log"

	"github.com/godownhub/marketplace/pkg/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
)

const RoutingKeyBookingMessage = "booking.message"

// QueueSender publishes messages to the notifications exchange so delivery
// happens off the request path.
type QueueSender struct {
	publisher *rabbitmq.Publisher
}

func NewQueueSender(publisher *rabbitmq.Publisher) *QueueSender {
	return &QueueSender{publisher: publisher}
}

func (s *QueueSender) Send(_ context.Context, msg Message) error {
	return s.publisher.Publish(RoutingKeyBookingMessage, msg)
}

// Worker drains queued notification messages and hands them to the mailer.
type Worker struct {
	mailer Mailer
}

func NewWorker(mailer Mailer) *Worker {
	return &Worker{mailer: mailer}
}

func (w *Worker) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			w.handleMessage(msg)
		}
		log.Println("[Notifier] channel closed, stopping worker")
	}()
}

func (w *Worker) handleMessage(msg amqp.Delivery) {
	var m Message
	if err := json.Unmarshal(msg.Body, &m); err != nil {
		log.Printf("[Notifier] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	if err := w.mailer.Deliver(m); err != nil {
		log.Printf("[Notifier] delivery to %s failed: %v", m.To, err)
		msg.Nack(false, true) // requeue
		return
	}

	msg.Ack(false)
}
