package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/execution-hub/presentation-hub/internal/apperr"
	appPresentation "github.com/execution-hub/presentation-hub/internal/application/presentation"
	"github.com/execution-hub/presentation-hub/internal/domain/document"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/sse"
	"github.com/execution-hub/presentation-hub/internal/ledger"
)

type fakePresentations struct {
	PresentationService
	err      error
	lastID   string
	comments string
}

func (f *fakePresentations) Create(_ context.Context, lcReference string) (*presentation.Presentation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &presentation.Presentation{StaticID: "pres-1", LCReference: lcReference, Status: presentation.StatusDraft}, nil
}

func (f *fakePresentations) Get(_ context.Context, staticID string) (*presentation.Presentation, error) {
	f.lastID = staticID
	if f.err != nil {
		return nil, f.err
	}
	return &presentation.Presentation{StaticID: staticID}, nil
}

func (f *fakePresentations) MarkDiscrepant(_ context.Context, staticID, comments string) error {
	f.lastID, f.comments = staticID, comments
	return f.err
}

func (f *fakePresentations) MarkCompliant(_ context.Context, staticID string) error {
	f.lastID = staticID
	return f.err
}

func (f *fakePresentations) DocumentsFeedback(_ context.Context, staticID string) (*appPresentation.DocumentsFeedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &appPresentation.DocumentsFeedback{CompanyID: "iss-co", Documents: []*document.Document{{ID: "d-1"}}}, nil
}

type fakeTasks struct {
	filter task.Filter
}

func (f *fakeTasks) ListTasks(_ context.Context, filter task.Filter) ([]*task.Task, error) {
	f.filter = filter
	return []*task.Task{}, nil
}

type fakeProcessor struct {
	got *ledger.Log
	err error
}

func (f *fakeProcessor) Process(_ context.Context, log *ledger.Log) error {
	f.got = log
	return f.err
}

func newTestServer(p *fakePresentations, tasks *fakeTasks, events *fakeProcessor) http.Handler {
	return NewServer(p, tasks, events, sse.NewHub(0, zerolog.Nop()), []string{"*"}, zerolog.Nop()).Router()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRouter_Health(t *testing.T) {
	h := newTestServer(&fakePresentations{}, &fakeTasks{}, &fakeProcessor{})
	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_CreatePresentation(t *testing.T) {
	h := newTestServer(&fakePresentations{}, &fakeTasks{}, &fakeProcessor{})
	rec := do(t, h, http.MethodPost, "/v1/lc/LC-1/presentations", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var p presentation.Presentation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "LC-1", p.LCReference)
	assert.Equal(t, presentation.StatusDraft, p.Status)
}

func TestRouter_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"invalid operation", apperr.InvalidOperation("Only the beneficiary can create a presentation"), http.StatusUnprocessableEntity, "INVALID_OPERATION", "Only the beneficiary can create a presentation"},
		{"invalid message", apperr.InvalidMessage("bad payload"), http.StatusBadRequest, "INVALID_MESSAGE", "bad payload"},
		{"not found", apperr.NotFound("presentation %s not found", "pres-9"), http.StatusNotFound, "NOT_FOUND", "presentation pres-9 not found"},
		{"connection", apperr.Connection("document service unavailable", errors.New("dial tcp")), http.StatusBadGateway, "CONNECTION_ERROR", "document service unavailable"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "INTERNAL", "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(&fakePresentations{err: tt.err}, &fakeTasks{}, &fakeProcessor{})
			rec := do(t, h, http.MethodGet, "/v1/presentations/pres-9", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body["error"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestRouter_Review(t *testing.T) {
	t.Run("discrepant with comments", func(t *testing.T) {
		p := &fakePresentations{}
		h := newTestServer(p, &fakeTasks{}, &fakeProcessor{})
		rec := do(t, h, http.MethodPost, "/v1/presentations/pres-1/discrepant", `{"comments":"late shipment"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "pres-1", p.lastID)
		assert.Equal(t, "late shipment", p.comments)
	})

	t.Run("compliant without body", func(t *testing.T) {
		p := &fakePresentations{}
		h := newTestServer(p, &fakeTasks{}, &fakeProcessor{})
		rec := do(t, h, http.MethodPost, "/v1/presentations/pres-1/compliant", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "pres-1", p.lastID)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := newTestServer(&fakePresentations{}, &fakeTasks{}, &fakeProcessor{})
		rec := do(t, h, http.MethodPost, "/v1/presentations/pres-1/discrepant", `{"comment":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_DocumentsFeedback(t *testing.T) {
	h := newTestServer(&fakePresentations{}, &fakeTasks{}, &fakeProcessor{})
	rec := do(t, h, http.MethodGet, "/v1/presentations/pres-1/documents-feedback", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"companyId":"iss-co"`)
}

func TestRouter_ListTasks(t *testing.T) {
	tasks := &fakeTasks{}
	h := newTestServer(&fakePresentations{}, tasks, &fakeProcessor{})
	rec := do(t, h, http.MethodGet, "/v1/tasks?type=LCPresentation.ReviewPresentation&status=TO_DO&presentationId=pres-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, tasks.filter.Type)
	assert.Equal(t, task.TypeReviewPresentation, *tasks.filter.Type)
	require.NotNil(t, tasks.filter.Status)
	assert.Equal(t, task.StatusToDo, *tasks.filter.Status)
	require.NotNil(t, tasks.filter.Context)
	assert.Equal(t, "pres-1", tasks.filter.Context.PresentationID)
}

func TestRouter_IngestLedgerEvent(t *testing.T) {
	body := `{"address":"0xabc","transactionHash":"0x01","blockNumber":7,"logIndex":2,"topics":["0x1234"],"data":"0x"}`

	t.Run("accepted", func(t *testing.T) {
		events := &fakeProcessor{}
		h := newTestServer(&fakePresentations{}, &fakeTasks{}, events)
		rec := do(t, h, http.MethodPost, "/v1/ledger/events", body)
		assert.Equal(t, http.StatusAccepted, rec.Code)
		require.NotNil(t, events.got)
		assert.Equal(t, "0xabc", events.got.Address)
		assert.Equal(t, uint64(2), events.got.LogIndex)
	})

	t.Run("undecodable log", func(t *testing.T) {
		events := &fakeProcessor{err: apperr.InvalidMessage("unknown event topic")}
		h := newTestServer(&fakePresentations{}, &fakeTasks{}, events)
		rec := do(t, h, http.MethodPost, "/v1/ledger/events", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing topics", func(t *testing.T) {
		h := newTestServer(&fakePresentations{}, &fakeTasks{}, &fakeProcessor{})
		rec := do(t, h, http.MethodPost, "/v1/ledger/events", `{"address":"0xabc"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
