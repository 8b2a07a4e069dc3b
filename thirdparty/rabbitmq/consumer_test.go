package rabbitmq

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadHandler_Handle(t *testing.T) {
	body, err := json.Marshal(LeadCreatedMessage{LeadID: "l-1", Name: "Ali", Phone: "998901234567", CreatedAt: time.Now()})
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       []byte
		status     int
		want       Outcome
		wantCalled bool
	}{
		{name: "delivered", body: body, status: http.StatusCreated, want: Ack, wantCalled: true},
		{name: "server error requeues", body: body, status: http.StatusBadGateway, want: Requeue, wantCalled: true},
		{name: "client error is dropped", body: body, status: http.StatusBadRequest, want: Ack, wantCalled: true},
		{name: "malformed body is dropped", body: []byte("{not json"), want: Ack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/internal/v1/notifications", r.URL.Path)
				assert.Equal(t, "Bearer internal-key", r.Header.Get("Authorization"))

				raw, _ := io.ReadAll(r.Body)
				var got map[string]string
				require.NoError(t, json.Unmarshal(raw, &got))
				assert.Equal(t, "New lead: Ali (998901234567)", got["message"])

				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			h := NewLeadHandler(srv.URL, "internal-key", srv.Client())
			assert.Equal(t, tt.want, h.Handle(context.Background(), tt.body))
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestLeadHandler_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	body, _ := json.Marshal(LeadCreatedMessage{LeadID: "l-1"})
	h := NewLeadHandler(url, "k", &http.Client{Timeout: time.Second})
	assert.Equal(t, Requeue, h.Handle(context.Background(), body))
}
