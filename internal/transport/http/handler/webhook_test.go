package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-notify-relay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockLinebotSvc struct{ mock.Mock }

func (m *mockLinebotSvc) HandleEvents(ctx context.Context, events []domain.LineEvent) ([]*domain.ReplyResult, error) {
	args := m.Called(ctx, events)
	if r, _ := args.Get(0).([]*domain.ReplyResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- tests ---

func TestWebhookReceive_MixedBatch(t *testing.T) {
	svc := &mockLinebotSvc{}
	svc.On("HandleEvents", mock.Anything, mock.Anything).Return(
		[]*domain.ReplyResult{nil, {SentMessages: []domain.SentMessage{{ID: "m1"}}}}, nil)

	body := `{"destination":"xyz","events":[
		{"type":"follow","source":{"type":"user","userId":"U1"}},
		{"type":"message","replyToken":"rt","source":{"type":"user","userId":"U2"},"message":{"id":"1","type":"text","text":"hi"}}
	]}`
	h := NewWebhookHandler(svc)
	r := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h.Receive(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var results []json.RawMessage
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&results))
	require.Len(t, results, 2)
	assert.Equal(t, "null", string(results[0]))
	assert.NotEqual(t, "null", string(results[1]))
	svc.AssertExpectations(t)
}

func TestWebhookReceive_BatchFailure_500(t *testing.T) {
	svc := &mockLinebotSvc{}
	svc.On("HandleEvents", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	h := NewWebhookHandler(svc)
	r := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(`{"events":[{"type":"message"}]}`))
	rr := httptest.NewRecorder()
	h.Receive(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestWebhookReceive_InvalidBody_400(t *testing.T) {
	svc := &mockLinebotSvc{}
	h := NewWebhookHandler(svc)
	r := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(`not-json`))
	rr := httptest.NewRecorder()
	h.Receive(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "HandleEvents", mock.Anything, mock.Anything)
}

func TestWebhookReceive_EmptyBatch(t *testing.T) {
	svc := &mockLinebotSvc{}
	svc.On("HandleEvents", mock.Anything, mock.Anything).Return([]*domain.ReplyResult{}, nil)

	h := NewWebhookHandler(svc)
	r := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(`{"destination":"xyz","events":[]}`))
	rr := httptest.NewRecorder()
	h.Receive(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
