package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errGone = errors.New("registration-token-not-registered")

type fakeFCM struct {
	batches [][]string
	fail    map[string]error
	err     error
}

func (f *fakeFCM) SendEachForMulticast(_ context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.batches = append(f.batches, m.Tokens)
	if f.err != nil {
		return nil, f.err
	}
	resp := &messaging.BatchResponse{}
	for _, tok := range m.Tokens {
		if err := f.fail[tok]; err != nil {
			resp.FailureCount++
			resp.Responses = append(resp.Responses, &messaging.SendResponse{Error: err})
			continue
		}
		resp.SuccessCount++
		resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true, MessageID: "id-" + tok})
	}
	return resp, nil
}

func newPusher(client *fakeFCM) *FCMPusher {
	return &FCMPusher{client: client, isUnregistered: func(err error) bool { return errors.Is(err, errGone) }}
}

func TestFCMPusherBatchesAndReportsUnregistered(t *testing.T) {
	tokens := make([]string, 0, 620)
	for i := 0; i < 620; i++ {
		tokens = append(tokens, fmt.Sprintf("tok-%d", i))
	}
	client := &fakeFCM{fail: map[string]error{
		"tok-3":   errGone,
		"tok-510": errors.New("quota exceeded"),
	}}

	res, err := newPusher(client).Push(context.Background(), tokens, Message{Title: "t", Body: "b"})
	require.NoError(t, err)
	require.Len(t, client.batches, 2)
	assert.Len(t, client.batches[0], 500)
	assert.Len(t, client.batches[1], 120)
	assert.Equal(t, 618, res.Success)
	assert.Equal(t, 2, res.Failure)
	assert.Equal(t, []string{"tok-3"}, res.Unregistered)
}

func TestFCMPusherBatchError(t *testing.T) {
	client := &fakeFCM{err: errors.New("unavailable")}
	res, err := newPusher(client).Push(context.Background(), []string{"a", "b"}, Message{})
	assert.Error(t, err)
	assert.Equal(t, 2, res.Failure)
}

func TestMemoryPusher(t *testing.T) {
	p := &MemoryPusher{Unregistered: map[string]bool{"old": true}}
	res, err := p.Push(context.Background(), []string{"new", "old"}, Message{Title: "hi"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Success)
	assert.Equal(t, []string{"old"}, res.Unregistered)
	assert.Equal(t, 1, p.Count())
}

func TestAssignedType(t *testing.T) {
	assert.Equal(t, TypeLeadAssigned, AssignedType(EntityForm))
	assert.Equal(t, TypeEnrollmentAssigned, AssignedType(EntityEnrollment))
	assert.Equal(t, TypeApplicationAssigned, AssignedType(EntityIntern))
}
