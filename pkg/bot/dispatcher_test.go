package bot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hugohenrick/chatbot-varejo/pkg/chat"
	"github.com/hugohenrick/chatbot-varejo/pkg/logger/loggertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	rows      []Row
	err       error
	panicWith interface{}
	calls     int
}

func (s *fakeStore) RunQuery(ctx context.Context, tpl QueryTemplate) ([]Row, error) {
	s.calls++
	if s.panicWith != nil {
		panic(s.panicWith)
	}
	return s.rows, s.err
}

type fakeFallback struct {
	response string
	calls    int
}

func (f *fakeFallback) FetchFallback(ctx context.Context, message string) string {
	f.calls++
	return f.response
}

type savedRecord struct {
	userInput   string
	botResponse string
}

type fakeHistory struct {
	mu      sync.Mutex
	records []savedRecord
	err     error
	saved   chan struct{}
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{saved: make(chan struct{}, 10)}
}

func (h *fakeHistory) SaveMessage(ctx context.Context, userInput, botResponse string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err == nil {
		h.records = append(h.records, savedRecord{userInput, botResponse})
	}
	h.saved <- struct{}{}
	return h.err
}

func (h *fakeHistory) ListHistory(ctx context.Context, limit, offset int) ([]chat.Message, error) {
	return nil, nil
}

func (h *fakeHistory) CountMessages(ctx context.Context) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records), nil
}

func (h *fakeHistory) DeleteHistory(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = nil
	return nil
}

func (h *fakeHistory) waitForRecord(t *testing.T) {
	t.Helper()
	select {
	case <-h.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("gravação do histórico não aconteceu")
	}
}

func (h *fakeHistory) snapshot() []savedRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]savedRecord(nil), h.records...)
}

func newTestDispatcher(t *testing.T, store *fakeStore, fallback *fakeFallback, history *fakeHistory) *Dispatcher {
	return NewDispatcher(store, fallback, history, loggertest.New(t))
}

func TestHandleKnownIntentFormatsRows(t *testing.T) {
	store := &fakeStore{rows: []Row{{"product_name": "Widget", "total_sales": 19.995}}}
	fallback := &fakeFallback{response: "unused"}
	history := newFakeHistory()
	d := newTestDispatcher(t, store, fallback, history)

	response, err := d.Handle(context.Background(), "Show me top-selling products")

	require.NoError(t, err)
	assert.Equal(t, "Widget: $19.99", response)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, 0, fallback.calls, "fallback não deve rodar quando há intenção conhecida")
	history.waitForRecord(t)
}

func TestHandleEmptyResult(t *testing.T) {
	store := &fakeStore{rows: []Row{}}
	history := newFakeHistory()
	d := newTestDispatcher(t, store, &fakeFallback{}, history)

	response, err := d.Handle(context.Background(), "product details please")

	require.NoError(t, err)
	assert.Equal(t, MsgNoData, response)
	history.waitForRecord(t)
}

func TestHandleQueryError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	history := newFakeHistory()
	d := newTestDispatcher(t, store, &fakeFallback{}, history)

	response, err := d.Handle(context.Background(), "sales details")

	require.NoError(t, err, "erro de consulta é recuperado localmente, não sobe")
	assert.Equal(t, MsgQueryError, response)
	history.waitForRecord(t)

	records := history.snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, MsgQueryError, records[0].botResponse)
}

func TestHandleUnknownIntentUsesFallback(t *testing.T) {
	store := &fakeStore{}
	fallback := &fakeFallback{response: "I don't know."}
	history := newFakeHistory()
	d := newTestDispatcher(t, store, fallback, history)

	response, err := d.Handle(context.Background(), "what is the weather")

	require.NoError(t, err)
	assert.Equal(t, "I don't know.", response)
	assert.Equal(t, 1, fallback.calls)
	assert.Equal(t, 0, store.calls, "consulta não deve rodar quando a intenção é desconhecida")
	history.waitForRecord(t)
}

func TestHandlePanicRecovery(t *testing.T) {
	store := &fakeStore{panicWith: "boom"}
	history := newFakeHistory()
	d := newTestDispatcher(t, store, &fakeFallback{}, history)

	response, err := d.Handle(context.Background(), "customer details")

	require.Error(t, err, "fault inesperado deve subir para o transporte responder 500")
	assert.Equal(t, MsgServerError, response)

	history.waitForRecord(t)
	records := history.snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, MsgServerError, records[0].botResponse)
}

func TestHandleRecordsExactlyOneHistoryEntry(t *testing.T) {
	store := &fakeStore{rows: []Row{{"customer_id": int64(1), "name": "A", "email": "a@x.com", "join_date": "2024-01-15"}}}
	history := newFakeHistory()
	d := newTestDispatcher(t, store, &fakeFallback{}, history)

	input := "customer details"
	response, err := d.Handle(context.Background(), input)
	require.NoError(t, err)

	history.waitForRecord(t)
	records := history.snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, input, records[0].userInput)
	assert.Equal(t, response, records[0].botResponse)
}

func TestHandleHistoryFailureDoesNotAffectResponse(t *testing.T) {
	store := &fakeStore{rows: []Row{{"product_name": "A", "total_sales": 1.0}}}
	history := newFakeHistory()
	history.err = errors.New("disk full")
	d := newTestDispatcher(t, store, &fakeFallback{}, history)

	response, err := d.Handle(context.Background(), "top-selling products")

	require.NoError(t, err)
	assert.Equal(t, "A: $1.00", response)
	history.waitForRecord(t)
}
