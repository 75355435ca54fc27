package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type commentsRequest struct {
	Comments string `json:"comments"`
}

// decodeComments reads an optional {"comments": "..."} body.
func decodeComments(r *http.Request) (string, error) {
	var req commentsRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return req.Comments, nil
}

func (s *Server) createPresentation(w http.ResponseWriter, r *http.Request) {
	p, err := s.presentationSvc.Create(r.Context(), chi.URLParam(r, "lcReference"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (s *Server) listPresentations(w http.ResponseWriter, r *http.Request) {
	items, err := s.presentationSvc.ListByLC(r.Context(), chi.URLParam(r, "lcReference"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"presentations": items})
}

func (s *Server) getPresentation(w http.ResponseWriter, r *http.Request) {
	p, err := s.presentationSvc.Get(r.Context(), chi.URLParam(r, "presentationId"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) deletePresentation(w http.ResponseWriter, r *http.Request) {
	if err := s.presentationSvc.Delete(r.Context(), chi.URLParam(r, "presentationId")); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.presentationSvc.Documents(r.Context(), chi.URLParam(r, "presentationId"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
}

func (s *Server) deleteDocument(w http.ResponseWriter, r *http.Request) {
	err := s.presentationSvc.DeleteDocument(r.Context(), chi.URLParam(r, "presentationId"), chi.URLParam(r, "documentId"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) documentsFeedback(w http.ResponseWriter, r *http.Request) {
	fb, err := s.presentationSvc.DocumentsFeedback(r.Context(), chi.URLParam(r, "presentationId"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, fb)
}

func (s *Server) submitPresentation(w http.ResponseWriter, r *http.Request) {
	comments, err := decodeComments(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	p, err := s.presentationSvc.Submit(r.Context(), chi.URLParam(r, "presentationId"), comments)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) markCompliant(w http.ResponseWriter, r *http.Request) {
	if err := s.presentationSvc.MarkCompliant(r.Context(), chi.URLParam(r, "presentationId")); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) markDiscrepant(w http.ResponseWriter, r *http.Request) {
	s.reviewWithComments(w, r, s.presentationSvc.MarkDiscrepant)
}

func (s *Server) adviseDiscrepancies(w http.ResponseWriter, r *http.Request) {
	s.reviewWithComments(w, r, s.presentationSvc.AdviseDiscrepancies)
}

func (s *Server) acceptDiscrepancies(w http.ResponseWriter, r *http.Request) {
	s.reviewWithComments(w, r, s.presentationSvc.AcceptDiscrepancies)
}

func (s *Server) rejectDiscrepancies(w http.ResponseWriter, r *http.Request) {
	s.reviewWithComments(w, r, s.presentationSvc.RejectDiscrepancies)
}

type reviewFunc func(ctx context.Context, staticID, comments string) error

func (s *Server) reviewWithComments(w http.ResponseWriter, r *http.Request, review reviewFunc) {
	comments, err := decodeComments(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if err := review(r.Context(), chi.URLParam(r, "presentationId"), comments); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
