// Package mailer sends plain-text e-mail through Mailgun.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"

	"tapconnect/internal/config"
)

const sendTimeout = 30 * time.Second

type Message struct {
	To      string
	Subject string
	Text    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type mailgunClient interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

type MailgunSender struct {
	client mailgunClient
	from   string
	logger *zap.Logger
}

// New returns a Mailgun sender, or a NopSender when Mailgun is not configured.
func New(cfg config.MailConfig, logger *zap.Logger) Sender {
	if !cfg.Enabled() {
		logger.Info("mailgun not configured, order e-mails disabled")
		return NopSender{}
	}
	return newMailgunSender(mailgun.NewMailgun(cfg.Domain, cfg.APIKey), cfg, logger)
}

func newMailgunSender(client mailgunClient, cfg config.MailConfig, logger *zap.Logger) *MailgunSender {
	from := cfg.FromAddress
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}
	return &MailgunSender{
		client: client,
		from:   from,
		logger: logger.With(zap.String("component", "mailer")),
	}
}

func (s *MailgunSender) Send(ctx context.Context, msg Message) (string, error) {
	message := s.client.NewMessage(s.from, msg.Subject, msg.Text, msg.To)

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, messageID, err := s.client.Send(sendCtx, message)
	if err != nil {
		s.logger.Error("failed to send email", zap.String("to", msg.To), zap.Error(err))
		return "", fmt.Errorf("sending email: %w", err)
	}

	s.logger.Info("email sent", zap.String("to", msg.To), zap.String("messageId", messageID))
	return messageID, nil
}

type NopSender struct{}

func (NopSender) Send(ctx context.Context, msg Message) (string, error) {
	return "", nil
}
