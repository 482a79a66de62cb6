package notifier

import (
	"context"
	"log"
)

// Message is the delivery payload: recipient address, subject line, body.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sender enqueues a message for asynchronous delivery. Implementations must
// not block on the actual send.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Mailer performs the final delivery once a message is consumed off the queue.
type Mailer interface {
	Deliver(msg Message) error
}

// LogMailer writes deliveries to the process log. Stand-in for an SMTP or
// provider-backed mailer.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Deliver(msg Message) error {
	log.Printf("[Mailer] to=%s subject=%q body=%q", msg.To, msg.Subject, msg.Body)
	return nil
}
