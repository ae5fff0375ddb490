package mailsvc

import (
	"context"
	"errors"
	"testing"

	"edu_crm/internal/api/mail/dto"
	"edu_crm/internal/common"
	"edu_crm/internal/mail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactFailsWhenInboxDeliveryFails(t *testing.T) {
	sender := mail.NewMemorySender(mail.ProviderSMTP)
	sender.Err = errors.New("connection refused")
	svc := NewMailService(mail.NewServiceWith("", "office@crm.test", sender))
	svc.Async = false

	err := svc.Contact(context.Background(), &dto.ContactInput{Name: "Ravi", Email: "ravi@x.test", Message: "hi"})
	assert.ErrorIs(t, err, common.ErrMailFailure)
}

func TestContactNeedsInbox(t *testing.T) {
	sender := mail.NewMemorySender(mail.ProviderSMTP)
	svc := NewMailService(mail.NewServiceWith("", "", sender))
	svc.Async = false

	err := svc.Contact(context.Background(), &dto.ContactInput{Name: "Ravi", Email: "ravi@x.test", Message: "hi"})
	assert.ErrorIs(t, err, common.ErrMailUnavailable)
	require.Empty(t, sender.Messages())
}
