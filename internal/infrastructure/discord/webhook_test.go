package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-notify-relay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_PostsSingleEmbed(t *testing.T) {
	var got domain.EmbedPayload
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := NewNotifier(srv.Client())
	n.Notify(context.Background(), "進入通知", "指定のエリアに進入しました。", "body text", srv.URL, "15128606")

	require.EqualValues(t, 1, calls)
	require.Len(t, got.Embeds, 1)
	e := got.Embeds[0]
	assert.Equal(t, "進入通知", e.Title)
	assert.Equal(t, "指定のエリアに進入しました。", e.Description)
	assert.Equal(t, "15128606", e.Color)
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "", e.Fields[0].Name)
	assert.Equal(t, "body text", e.Fields[0].Value)
	assert.False(t, e.Fields[0].Inline)
	assert.Equal(t, "帰宅通知", e.Footer.Text)
	_, err := time.Parse(time.RFC3339, e.Timestamp)
	assert.NoError(t, err)
}

func TestNotify_DefaultColor(t *testing.T) {
	var got domain.EmbedPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := NewNotifier(srv.Client())
	n.Notify(context.Background(), "t", "d", "b", srv.URL, "")

	require.Len(t, got.Embeds, 1)
	assert.Equal(t, DefaultColor, got.Embeds[0].Color)
}

func TestNotify_NoTargetURL_NoOp(t *testing.T) {
	n := NewNotifier(http.DefaultClient)
	// Must not attempt any request; an attempted request to "" would at
	// least log, but more importantly must not panic or error.
	n.Notify(context.Background(), "t", "d", "body", "", "")
}

func TestNotify_EmptyBody_NoOp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	n := NewNotifier(srv.Client())
	n.Notify(context.Background(), "t", "d", "", srv.URL, "")

	assert.EqualValues(t, 0, calls)
}

func TestNotify_UpstreamFailure_Swallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewNotifier(srv.Client())
	// Must return normally despite the 502.
	n.Notify(context.Background(), "t", "d", "body", srv.URL, "")
}
