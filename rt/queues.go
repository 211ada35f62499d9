package rt

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// QueuesService handles queue operations.
type QueuesService struct {
	client *Client
}

// All lists every queue the authenticated account can see.
func (s *QueuesService) All(ctx context.Context) (*SearchResult, error) {
	var result SearchResult
	if err := s.client.do(ctx, "queue", "all", http.MethodGet, "/queues/all", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single queue.
func (s *QueuesService) Get(ctx context.Context, id string) (*Queue, error) {
	var queue Queue
	if err := s.client.do(ctx, "queue", "get", http.MethodGet, "/queue/"+url.PathEscape(id), nil, nil, &queue); err != nil {
		return nil, err
	}
	return &queue, nil
}

// History fetches the transaction history of a queue.
func (s *QueuesService) History(ctx context.Context, id string) (*SearchResult, error) {
	var result SearchResult
	if err := s.client.do(ctx, "queue", "history", http.MethodGet, "/queue/"+url.PathEscape(id)+"/history", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create creates a queue. Name is required; fields accepts Description,
// Lifecycle, SubjectTag, CorrespondAddress, and CommentAddress.
func (s *QueuesService) Create(ctx context.Context, name string, fields Fields) (*Ref, error) {
	if name == "" {
		return nil, errors.New("rt: queue name is required")
	}
	if err := validateFields("queue", queueFields, fields); err != nil {
		return nil, err
	}

	payload := make(Fields, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["Name"] = name

	var ref Ref
	if err := s.client.do(ctx, "queue", "create", http.MethodPost, "/queue", nil, payload, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

// Update edits a queue's fields.
func (s *QueuesService) Update(ctx context.Context, id string, fields Fields) error {
	if err := validateFields("queue", queueFields, fields); err != nil {
		return err
	}

	return s.client.do(ctx, "queue", "update", http.MethodPut, "/queue/"+url.PathEscape(id), nil, fields, nil)
}

// Disable disables a queue. RT disables rather than destroys on DELETE.
func (s *QueuesService) Disable(ctx context.Context, id string) error {
	return s.client.do(ctx, "queue", "disable", http.MethodDelete, "/queue/"+url.PathEscape(id), nil, nil, nil)
}
