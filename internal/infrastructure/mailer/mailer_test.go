package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tapconnect/internal/config"
)

type mockMailgunClient struct {
	SendFunc func(ctx context.Context, m *mailgun.Message) (string, string, error)

	from, subject, text string
	to                  []string
}

func (m *mockMailgunClient) NewMessage(from, subject, text string, to ...string) *mailgun.Message {
	m.from, m.subject, m.text, m.to = from, subject, text, to
	return mailgun.NewMailgun("example.com", "key").NewMessage(from, subject, text, to...)
}

func (m *mockMailgunClient) Send(ctx context.Context, msg *mailgun.Message) (string, string, error) {
	return m.SendFunc(ctx, msg)
}

var testMailConfig = config.MailConfig{
	Domain:      "mg.example.com",
	APIKey:      "key",
	FromAddress: "orders@example.com",
	FromName:    "TapConnect",
	NotifyTo:    "team@example.com",
}

func TestNew_UnconfiguredIsNop(t *testing.T) {
	sender := New(config.MailConfig{}, zap.NewNop())

	assert.IsType(t, NopSender{}, sender)
	id, err := sender.Send(context.Background(), Message{To: "a@example.com"})
	assert.NoError(t, err)
	assert.Empty(t, id)
}

func TestNew_MissingSenderIsNop(t *testing.T) {
	cfg := testMailConfig
	cfg.FromAddress = ""

	assert.IsType(t, NopSender{}, New(cfg, zap.NewNop()))
}

func TestNew_Configured(t *testing.T) {
	sender := New(testMailConfig, zap.NewNop())
	assert.IsType(t, &MailgunSender{}, sender)
}

func TestMailgunSender_Send(t *testing.T) {
	client := &mockMailgunClient{
		SendFunc: func(ctx context.Context, m *mailgun.Message) (string, string, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return "Queued", "<msg-1@mg.example.com>", nil
		},
	}
	sender := newMailgunSender(client, testMailConfig, zap.NewNop())

	id, err := sender.Send(context.Background(), Message{To: "team@example.com", Subject: "New order", Text: "body"})

	require.NoError(t, err)
	assert.Equal(t, "<msg-1@mg.example.com>", id)
	assert.Equal(t, "TapConnect <orders@example.com>", client.from)
	assert.Equal(t, "New order", client.subject)
	assert.Equal(t, []string{"team@example.com"}, client.to)
}

func TestMailgunSender_SendError(t *testing.T) {
	client := &mockMailgunClient{
		SendFunc: func(ctx context.Context, m *mailgun.Message) (string, string, error) {
			return "", "", errors.New("401 unauthorized")
		},
	}
	sender := newMailgunSender(client, testMailConfig, zap.NewNop())

	_, err := sender.Send(context.Background(), Message{To: "team@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401 unauthorized")
}
