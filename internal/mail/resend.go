package mail

import (
	"context"
	"errors"
	"fmt"

	"edu_crm/internal/logger"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey), from: from}
}

// NewResendSenderWithClient is used when the client needs a custom BaseURL.
func NewResendSenderWithClient(client *resend.Client, from string) *ResendSender {
	return &ResendSender{client: client, from: from}
}

func (r *ResendSender) Name() string { return ProviderResend }

func (r *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    r.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}

	sent, err := r.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		var rateLimitErr *resend.RateLimitError
		if errors.As(err, &rateLimitErr) {
			logger.WithModule("mail").WithFields(map[string]interface{}{
				"limit":     rateLimitErr.Limit,
				"remaining": rateLimitErr.Remaining,
				"reset":     rateLimitErr.Reset,
			}).Warn("resend rate limit exceeded")
			return fmt.Errorf("email rate limit exceeded (resets in %s seconds): %w", rateLimitErr.Reset, err)
		}
		return fmt.Errorf("resend API error: %w", err)
	}

	logger.WithModule("mail").WithField("email_id", sent.Id).Debug("email accepted by resend")
	return nil
}
