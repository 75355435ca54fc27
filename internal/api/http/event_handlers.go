package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/execution-hub/presentation-hub/internal/domain/notification"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
	"github.com/execution-hub/presentation-hub/internal/ledger"
)

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := task.Filter{}
	if v := q.Get("type"); v != "" {
		t := task.Type(v)
		filter.Type = &t
	}
	if v := q.Get("status"); v != "" {
		st := task.Status(v)
		filter.Status = &st
	}
	if v := q.Get("presentationId"); v != "" {
		c := task.NewContext(q.Get("lcReference"), v)
		filter.Context = &c
	}
	tasks, err := s.taskSvc.ListTasks(r.Context(), filter)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

// ingestLedgerEvent runs one ledger log through the same path as the
// message consumer, dedupe included.
func (s *Server) ingestLedgerEvent(w http.ResponseWriter, r *http.Request) {
	var log ledger.Log
	if err := decodeBody(r, &log); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if log.Address == "" || len(log.Topics) == 0 {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "address and topics are required")
		return
	}
	if err := s.events.Process(r.Context(), &log); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) sseEndpoint(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "INTERNAL", "streaming not supported")
		return
	}
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		clientID = uuid.NewString()
	}
	client := notification.NewSSEClient(clientID)
	s.sseHub.Register(client)
	defer s.sseHub.Unregister(clientID)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(": connected\n\n"))
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case msg, open := <-client.MessageChan:
			if !open || msg == nil {
				return
			}
			payload, _ := json.Marshal(msg)
			_, _ = w.Write([]byte("event: " + msg.Event + "\ndata: "))
			_, _ = w.Write(payload)
			_, _ = w.Write([]byte("\n\n"))
			flusher.Flush()
		case <-ctx.Done():
			return
		}
	}
}
