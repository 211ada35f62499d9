package rt

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SearchOptions tune a TicketSQL search. The zero value means RT's
// defaults (first page, 20 per page).
type SearchOptions struct {
	Page    int
	PerPage int

	// OrderBy names a field to sort on; Order is "ASC" or "DESC".
	OrderBy string
	Order   string

	// Fields lists extra ticket fields to inline into each result item
	// beyond the bare reference.
	Fields []string
}

// Search runs a raw TicketSQL query, e.g. "Queue = 'General' AND Status =
// 'open'". Build queries in RT's Query Builder and copy them from the
// Advanced tab.
func (s *TicketsService) Search(ctx context.Context, ticketSQL string, opts *SearchOptions) (*SearchResult, error) {
	if strings.TrimSpace(ticketSQL) == "" {
		return nil, errors.New("rt: search query is required")
	}

	query := url.Values{"query": []string{ticketSQL}}
	if opts != nil {
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PerPage > 0 {
			query.Set("per_page", strconv.Itoa(opts.PerPage))
		}
		if opts.OrderBy != "" {
			query.Set("orderby", opts.OrderBy)
		}
		if opts.Order != "" {
			query.Set("order", opts.Order)
		}
		if len(opts.Fields) > 0 {
			query.Set("fields", strings.Join(opts.Fields, ","))
		}
	}

	var result SearchResult
	if err := s.client.do(ctx, "ticket", "search", http.MethodGet, "/tickets", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
