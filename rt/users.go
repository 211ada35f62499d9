package rt

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// UsersService handles user operations.
type UsersService struct {
	client *Client
}

// Get fetches a single user by id or username.
func (s *UsersService) Get(ctx context.Context, id string) (*User, error) {
	var user User
	if err := s.client.do(ctx, "user", "get", http.MethodGet, "/user/"+url.PathEscape(id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// History fetches the transaction history of a user.
func (s *UsersService) History(ctx context.Context, id string) (*SearchResult, error) {
	var result SearchResult
	if err := s.client.do(ctx, "user", "history", http.MethodGet, "/user/"+url.PathEscape(id)+"/history", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create creates a user. The username becomes the login name; fields
// accepts the standard RT user attributes (EmailAddress, RealName, ...).
func (s *UsersService) Create(ctx context.Context, username string, fields Fields) (*Ref, error) {
	if username == "" {
		return nil, errors.New("rt: username is required")
	}
	if err := validateFields("user", userFields, fields); err != nil {
		return nil, err
	}

	payload := make(Fields, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["Name"] = username

	var ref Ref
	if err := s.client.do(ctx, "user", "create", http.MethodPost, "/user", nil, payload, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

// Update edits a user's fields.
func (s *UsersService) Update(ctx context.Context, id string, fields Fields) error {
	if err := validateFields("user", userFields, fields); err != nil {
		return err
	}

	return s.client.do(ctx, "user", "update", http.MethodPut, "/user/"+url.PathEscape(id), nil, fields, nil)
}

// Disable disables a user. RT disables rather than destroys on DELETE.
func (s *UsersService) Disable(ctx context.Context, id string) error {
	return s.client.do(ctx, "user", "disable", http.MethodDelete, "/user/"+url.PathEscape(id), nil, nil, nil)
}
