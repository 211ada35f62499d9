package rt

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// TicketsService handles ticket operations.
type TicketsService struct {
	client *Client
}

// TicketSpec describes a ticket to create. Subject and Queue are required;
// any other standard field (Status, Owner, Requestors, Content,
// ContentType, ...) goes in Extra, custom fields ("CF.{Name}" keys) in
// CustomFields.
type TicketSpec struct {
	Subject      string
	Queue        string
	CustomFields Fields
	Extra        Fields
}

// Comment describes a comment to post on a ticket. ContentType defaults to
// text/plain; text/html is the other supported type.
type Comment struct {
	Content      string
	ContentType  string
	CustomFields Fields
	Extra        Fields
	Attachments  []Attachment
}

// Attachment is a file carried on a comment, base64-encoded as the RT
// JSON API expects.
type Attachment struct {
	FileName    string `json:"FileName"`
	FileType    string `json:"FileType"`
	FileContent string `json:"FileContent"`
}

// Get fetches a single ticket.
func (s *TicketsService) Get(ctx context.Context, id string) (*Ticket, error) {
	var ticket Ticket
	if err := s.client.do(ctx, "ticket", "get", http.MethodGet, "/ticket/"+url.PathEscape(id), nil, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// History fetches the transaction history of a ticket.
func (s *TicketsService) History(ctx context.Context, id string) (*SearchResult, error) {
	var result SearchResult
	if err := s.client.do(ctx, "ticket", "history", http.MethodGet, "/ticket/"+url.PathEscape(id)+"/history", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create creates a ticket and returns its reference (id and URL).
func (s *TicketsService) Create(ctx context.Context, spec TicketSpec) (*Ref, error) {
	if spec.Subject == "" {
		return nil, errors.New("rt: ticket subject is required")
	}
	if spec.Queue == "" {
		return nil, errors.New("rt: ticket queue is required")
	}

	payload := Fields{
		"Queue":   spec.Queue,
		"Subject": spec.Subject,
	}
	if len(spec.CustomFields) > 0 {
		payload["CustomFields"] = spec.CustomFields
	}
	for k, v := range spec.Extra {
		payload[k] = v
	}

	var ref Ref
	if err := s.client.do(ctx, "ticket", "create", http.MethodPost, "/ticket", nil, payload, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

// Update edits a ticket's standard and custom fields.
func (s *TicketsService) Update(ctx context.Context, id string, fields, custom Fields) error {
	payload := make(Fields, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	if len(custom) > 0 {
		payload["CustomFields"] = custom
	}

	return s.client.do(ctx, "ticket", "update", http.MethodPut, "/ticket/"+url.PathEscape(id), nil, payload, nil)
}

// Comment posts a comment on a ticket.
func (s *TicketsService) Comment(ctx context.Context, id string, comment Comment) error {
	if comment.Content == "" && len(comment.Attachments) == 0 {
		return errors.New("rt: comment needs content or attachments")
	}

	contentType := comment.ContentType
	if contentType == "" {
		contentType = "text/plain"
	}

	payload := Fields{
		"Content":     comment.Content,
		"ContentType": contentType,
	}
	if len(comment.CustomFields) > 0 {
		payload["CustomFields"] = comment.CustomFields
	}
	for k, v := range comment.Extra {
		payload[k] = v
	}
	if len(comment.Attachments) > 0 {
		payload["Attachments"] = comment.Attachments
	}

	return s.client.do(ctx, "ticket", "comment", http.MethodPost, "/ticket/"+url.PathEscape(id)+"/comment", nil, payload, nil)
}

// Attach uploads local files onto a ticket as an attachment-only comment.
func (s *TicketsService) Attach(ctx context.Context, id string, paths ...string) error {
	if len(paths) == 0 {
		return errors.New("rt: no files to attach")
	}

	attachments := make([]Attachment, 0, len(paths))
	for _, path := range paths {
		attachment, err := FileAttachment(path)
		if err != nil {
			return err
		}
		attachments = append(attachments, attachment)
	}

	return s.Comment(ctx, id, Comment{Attachments: attachments})
}

// Delete deletes a ticket.
func (s *TicketsService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, "ticket", "delete", http.MethodDelete, "/ticket/"+url.PathEscape(id), nil, nil, nil)
}

// FileAttachment reads a local file into an Attachment, sniffing the
// content type from the data.
func FileAttachment(path string) (Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("rt: read attachment: %w", err)
	}

	return Attachment{
		FileName:    filepath.Base(path),
		FileType:    mimetype.Detect(data).String(),
		FileContent: base64.StdEncoding.EncodeToString(data),
	}, nil
}
