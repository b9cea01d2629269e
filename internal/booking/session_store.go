package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "booking:flow:"

	// Abandoned drafts expire; closing the flow discards them immediately.
	sessionTTL = 30 * time.Minute
)

// FlowStore is the persistence contract for in-progress booking flows.
type FlowStore interface {
	Save(ctx context.Context, flow *Flow) error
	Find(ctx context.Context, id string) (*Flow, error)
	Discard(ctx context.Context, id string) error
}

// SessionStore keeps in-progress booking flows in Redis. Drafts are
// throwaway client state with no partial persistence into the appointment
// store.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, flow *Flow) error {
	payload, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("failed to marshal booking flow: %w", err)
	}
	return s.client.Set(ctx, sessionKeyPrefix+flow.ID, payload, sessionTTL).Err()
}

// Find returns nil when the flow does not exist or has expired.
func (s *SessionStore) Find(ctx context.Context, id string) (*Flow, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flow Flow
	if err := json.Unmarshal(payload, &flow); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking flow: %w", err)
	}
	return &flow, nil
}

// Discard drops the flow and all in-progress input.
func (s *SessionStore) Discard(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
