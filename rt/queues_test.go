package rt

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueAll(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/REST/2.0/queues/all", r.URL.Path)
		w.Write([]byte(`{
			"count": 2, "page": 1, "per_page": 20, "total": 2,
			"items": [
				{"type": "queue", "id": "1", "_url": "u1"},
				{"type": "queue", "id": "2", "_url": "u2"}
			]
		}`))
	}))

	result, err := client.Queues.All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Items, 2)
	assert.Equal(t, ID("1"), result.Items[0].ID)
}

func TestQueueGet(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/REST/2.0/queue/1", r.URL.Path)
		w.Write([]byte(`{
			"id": 1,
			"Name": "General",
			"Description": "The default queue",
			"Lifecycle": "default",
			"Disabled": "0"
		}`))
	}))

	queue, err := client.Queues.Get(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, ID("1"), queue.ID)
	assert.Equal(t, "General", queue.Name)
	assert.Equal(t, "The default queue", queue.Description)
	assert.Equal(t, Flex("0"), queue.Disabled)
}

func TestQueueHistory(t *testing.T) {
	var path string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"count": 0, "page": 1, "per_page": 20, "total": 0, "items": []}`))
	}))

	_, err := client.Queues.History(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "/REST/2.0/queue/1/history", path)
}

func TestQueueCreate(t *testing.T) {
	var payload map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/REST/2.0/queue", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"type": "queue", "id": "5", "_url": "u"}`))
	}))

	ref, err := client.Queues.Create(context.Background(), "Support", Fields{
		"Description": "Customer support",
		"SubjectTag":  "SUP",
	})
	require.NoError(t, err)

	assert.Equal(t, ID("5"), ref.ID)
	assert.Equal(t, "Support", payload["Name"])
	assert.Equal(t, "Customer support", payload["Description"])
	assert.Equal(t, "SUP", payload["SubjectTag"])
}

func TestQueueCreateValidation(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())

	_, err := client.Queues.Create(context.Background(), "", nil)
	assert.Error(t, err)

	_, err = client.Queues.Create(context.Background(), "Support", Fields{"Color": "red"})
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "queue", fieldErr.Kind)
	assert.Equal(t, "Color", fieldErr.Field)
}

func TestQueueUpdate(t *testing.T) {
	var payload map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/REST/2.0/queue/1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`["Queue 1 updated"]`))
	}))

	err := client.Queues.Update(context.Background(), "1", Fields{"Description": "renamed"})
	require.NoError(t, err)

	assert.Equal(t, "renamed", payload["Description"])
}

func TestQueueDisable(t *testing.T) {
	var method, path string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.Write([]byte(`["Queue 1 disabled"]`))
	}))

	require.NoError(t, client.Queues.Disable(context.Background(), "1"))

	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/REST/2.0/queue/1", path)
}
