// Package notification delivers push messages to team members' devices.
package notification

import (
	"context"
	"sync"

	"edu_crm/internal/metrics"

	"firebase.google.com/go/v4/messaging"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

// Message is one push payload.
type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// Result summarises a push. Unregistered lists tokens the provider no longer accepts.
type Result struct {
	Success      int
	Failure      int
	Unregistered []string
}

// Pusher sends a message to device tokens.
type Pusher interface {
	Push(ctx context.Context, tokens []string, msg Message) (Result, error)
}

type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// FCMPusher sends through Firebase Cloud Messaging.
type FCMPusher struct {
	client         multicastClient
	isUnregistered func(error) bool
}

func NewFCMPusher(client *messaging.Client) *FCMPusher {
	return &FCMPusher{client: client, isUnregistered: messaging.IsUnregistered}
}

// Push sends msg in batches of 500 tokens. A failed batch is counted as failures and the error of
// the last failed batch is returned after every batch was attempted.
func (p *FCMPusher) Push(ctx context.Context, tokens []string, msg Message) (Result, error) {
	var res Result
	var lastErr error
	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := start + maxMulticastTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		resp, err := p.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       batch,
			Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
			Data:         msg.Data,
		})
		if err != nil {
			res.Failure += len(batch)
			lastErr = err
			metrics.PushDeliveries.WithLabelValues("error").Add(float64(len(batch)))
			continue
		}
		res.Success += resp.SuccessCount
		res.Failure += resp.FailureCount
		for i, r := range resp.Responses {
			if r != nil && !r.Success && r.Error != nil && p.isUnregistered(r.Error) && i < len(batch) {
				res.Unregistered = append(res.Unregistered, batch[i])
			}
		}
		metrics.PushDeliveries.WithLabelValues("ok").Add(float64(resp.SuccessCount))
		metrics.PushDeliveries.WithLabelValues("error").Add(float64(resp.FailureCount))
	}
	return res, lastErr
}

// NopPusher drops every message. Used when Firebase is not configured.
type NopPusher struct{}

func (NopPusher) Push(_ context.Context, tokens []string, _ Message) (Result, error) {
	return Result{}, nil
}

// MemoryPusher records pushes. Tokens listed in Unregistered are reported back as such.
type MemoryPusher struct {
	mu           sync.Mutex
	Sent         []Sent
	Err          error
	Unregistered map[string]bool
}

// Sent is one recorded push.
type Sent struct {
	Tokens  []string
	Message Message
}

func (m *MemoryPusher) Push(_ context.Context, tokens []string, msg Message) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, Sent{Tokens: append([]string(nil), tokens...), Message: msg})
	if m.Err != nil {
		return Result{Failure: len(tokens)}, m.Err
	}
	var res Result
	for _, t := range tokens {
		if m.Unregistered[t] {
			res.Failure++
			res.Unregistered = append(res.Unregistered, t)
			continue
		}
		res.Success++
	}
	return res, nil
}

// Count returns the number of recorded pushes.
func (m *MemoryPusher) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
