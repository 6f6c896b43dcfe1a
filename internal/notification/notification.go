package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
)

// Notifier delivers a payment confirmation token to a customer out of band.
// Delivery is fire-and-forget from the caller's point of view: a failed send
// never rolls back the payment request it belongs to.
type Notifier interface {
	Send(ctx context.Context, email, requestID, token string) error
}

// LoggerNotifier writes notifications to the structured logger. It stands in
// for a real delivery channel in development and tests.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the notification to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, email, requestID, token string) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("payment confirmation issued",
		slog.String("email", email),
		slog.String("request_id", requestID),
		slog.String("token", token),
	)
	return nil
}

// SMTPNotifier emails the confirmation token to the customer.
type SMTPNotifier struct {
	addr string
	from string
}

// NewSMTPNotifier constructs a notifier that delivers via the given SMTP
// server address.
func NewSMTPNotifier(addr, from string) *SMTPNotifier {
	return &SMTPNotifier{addr: addr, from: from}
}

// Send emails the request id and token to the customer.
func (n *SMTPNotifier) Send(_ context.Context, email, requestID, token string) error {
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Payment confirmation\r\n\r\n"+
		"Confirm your payment with request id %s and token %s.\r\n",
		n.from, email, requestID, token)
	if err := smtp.SendMail(n.addr, nil, n.from, []string{email}, []byte(body)); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}
	return nil
}
