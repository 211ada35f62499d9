package rt

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// AssetsService handles asset operations.
type AssetsService struct {
	client *Client
}

// Get fetches a single asset.
func (s *AssetsService) Get(ctx context.Context, id string) (*Asset, error) {
	var asset Asset
	if err := s.client.do(ctx, "asset", "get", http.MethodGet, "/asset/"+url.PathEscape(id), nil, nil, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// History fetches the transaction history of an asset.
func (s *AssetsService) History(ctx context.Context, id string) (*SearchResult, error) {
	var result SearchResult
	if err := s.client.do(ctx, "asset", "history", http.MethodGet, "/asset/"+url.PathEscape(id)+"/history", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create creates an asset. Name is required; fields accepts Description,
// Status, Owner, HeldBy, and Contact.
func (s *AssetsService) Create(ctx context.Context, name string, fields Fields) (*Ref, error) {
	if name == "" {
		return nil, errors.New("rt: asset name is required")
	}
	if err := validateFields("asset", assetFields, fields); err != nil {
		return nil, err
	}

	payload := make(Fields, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["Name"] = name

	var ref Ref
	if err := s.client.do(ctx, "asset", "create", http.MethodPost, "/asset", nil, payload, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

// Update edits an asset's fields.
func (s *AssetsService) Update(ctx context.Context, id string, fields Fields) error {
	if err := validateFields("asset", assetFields, fields); err != nil {
		return err
	}

	return s.client.do(ctx, "asset", "update", http.MethodPut, "/asset/"+url.PathEscape(id), nil, fields, nil)
}

// Delete deletes an asset.
func (s *AssetsService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, "asset", "delete", http.MethodDelete, "/asset/"+url.PathEscape(id), nil, nil, nil)
}
