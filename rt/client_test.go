package rt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient spins an httptest server and a token-authenticated client
// pointed at it.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		BaseURL: srv.URL,
		Token:   "test-token",
	})
	require.NoError(t, err)

	return client
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "token auth",
			cfg:  Config{BaseURL: "https://rt.example.com", Token: "tok"},
		},
		{
			name: "credential auth",
			cfg:  Config{BaseURL: "https://rt.example.com", Username: "alice", Password: "pw"},
		},
		{
			name:    "missing base URL",
			cfg:     Config{Token: "tok"},
			wantErr: true,
		},
		{
			name:    "no auth at all",
			cfg:     Config{BaseURL: "https://rt.example.com"},
			wantErr: true,
		},
		{
			name:    "username without password",
			cfg:     Config{BaseURL: "https://rt.example.com", Username: "alice"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client.Tickets)
				assert.NotNil(t, client.Queues)
				assert.NotNil(t, client.Users)
				assert.NotNil(t, client.Assets)
			}
		})
	}
}

func TestBaseURLNormalization(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain",
			in:   "https://rt.example.com",
			want: "https://rt.example.com/REST/2.0",
		},
		{
			name: "trailing slash",
			in:   "https://rt.example.com/",
			want: "https://rt.example.com/REST/2.0",
		},
		{
			name: "several trailing slashes",
			in:   "https://rt.example.com///",
			want: "https://rt.example.com/REST/2.0",
		},
		{
			name: "with port",
			in:   "http://127.0.0.1:8000",
			want: "http://127.0.0.1:8000/REST/2.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(Config{BaseURL: tt.in, Token: "tok"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.BaseURL())
		})
	}
}

func TestTokenAuthorizationHeader(t *testing.T) {
	var auth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	_, err := client.Tickets.Get(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "token test-token", auth)
}

func TestLoginRequiresCredentials(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())

	err := client.Login(context.Background())
	assert.Error(t, err)
}

func TestLoginEstablishesSession(t *testing.T) {
	var loginPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loginPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice", r.PostForm.Get("user"))
		assert.Equal(t, "s3cret", r.PostForm.Get("pass"))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client, err := New(Config{
		BaseURL:  srv.URL,
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)

	require.NoError(t, client.Login(context.Background()))
	// Login goes to the server root, not under /REST/2.0.
	assert.Equal(t, "/", loginPath)
}

func TestErrorSentinelMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{name: "not found", status: http.StatusNotFound, sentinel: ErrNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, sentinel: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, sentinel: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"from RT"}`))
			}))

			_, err := client.Tickets.Get(context.Background(), "1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "from RT", apiErr.Message)
		})
	}
}

func TestErrorBodyPassThrough(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Could not create ticket. Queue not set"}`))
	}))

	_, err := client.Tickets.Create(context.Background(), TicketSpec{Subject: "s", Queue: "q"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Error(), "Could not create ticket")
	assert.NotEmpty(t, apiErr.Body)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestMetricsRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	client := newTestClientWithConfig(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}), func(cfg *Config) {
		cfg.MetricsRegisterer = reg
	})

	_, err := client.Tickets.Get(context.Background(), "1")
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "rt_client_api_calls_total")
	assert.Contains(t, names, "rt_client_api_call_duration_seconds")
}

// newTestClientWithConfig is newTestClient with a config hook.
func newTestClientWithConfig(t *testing.T, handler http.Handler, mutate func(*Config)) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := Config{BaseURL: srv.URL, Token: "test-token"}
	if mutate != nil {
		mutate(&cfg)
	}

	client, err := New(cfg)
	require.NoError(t, err)

	return client
}
