// Package rt is a client for the Request Tracker REST 2.0 API, covering
// ticket, queue, user, and asset CRUD plus TicketSQL search.
//
// Basic usage:
//
//	client, err := rt.New(rt.Config{
//		BaseURL: "https://rt.example.com",
//		Token:   "1-23-abcdef",
//	})
//	if err != nil {
//		// ...
//	}
//	ticket, err := client.Tickets.Get(ctx, "42")
//
// Authentication is either a token provisioned in the RT web UI (sent as
// "Authorization: token ...") or a username/password form login:
//
//	client, err := rt.New(rt.Config{
//		BaseURL:  "https://rt.example.com",
//		Username: "alice",
//		Password: "s3cret",
//	})
//	if err == nil {
//		err = client.Login(ctx) // establishes the session cookie
//	}
//
// Entities travel as JSON payloads owned by the remote RT instance; the
// typed structs here decode the documented fields and ignore the rest.
// Non-2xx responses surface as *APIError with the RT error message, and
// 404/401/403 match ErrNotFound/ErrUnauthorized/ErrForbidden via errors.Is.
package rt
