package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/writing-highlighter/internal/annotation"
	"github.com/jonathan/writing-highlighter/internal/detection"
	"github.com/jonathan/writing-highlighter/internal/logging"
	"github.com/jonathan/writing-highlighter/internal/server/middleware"
	"github.com/jonathan/writing-highlighter/internal/types"
)

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// handleAnnotate runs the annotation pipeline and archives the result when a writing ID is given.
func (s *Server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	var req types.AnnotateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failure(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, &ErrValidation{Field: "request", Message: err.Error()})
		return
	}

	annotator, err := s.requestAnnotator(&req)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	res, err := annotator.Annotate(r.Context(), req.Text, req.Criteria)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	resp := &types.AnnotateResponse{
		ID:        uuid.New(),
		WritingID: req.WritingID,
		HTML:      res.HTML,
		Spans:     res.Spans,
		Criteria:  res.Reports,
		CreatedAt: time.Now().UTC(),
	}
	if resp.Spans == nil {
		resp.Spans = []types.MergedSpan{}
	}
	if resp.Criteria == nil {
		resp.Criteria = []types.CriterionReport{}
	}

	if req.WritingID != "" && s.archive != nil {
		// archiving is best effort; the caller still gets the markup
		if err := s.archive.SaveAnnotation(r.Context(), resp); err != nil {
			s.logger.Error("failed to archive annotation",
				logging.String("writing_id", req.WritingID),
				logging.Err(err),
			)
		}
	}

	if subject, err := middleware.GetSubject(r); err == nil {
		s.logger.Debug("annotation served", logging.String("subject", subject), logging.Int("spans", len(resp.Spans)))
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// requestAnnotator widens the server policy with the categories a request opts into.
func (s *Server) requestAnnotator(req *types.AnnotateRequest) (*annotation.Annotator, error) {
	if len(req.Categories) == 0 && !req.AllowAll {
		return s.annotator, nil
	}

	policy := s.annotator.Policy()
	for _, name := range req.Categories {
		cat, ok := detection.ParseCategory(name)
		if !ok {
			return nil, &ErrValidation{Field: "categories", Message: "unknown category " + name}
		}
		policy = policy.Allow(cat)
	}
	if req.AllowAll {
		policy = policy.AllowAll()
	}
	return s.annotator.With(annotation.WithPolicy(policy)), nil
}

// handleGetHighlights returns the manual highlights for a writing sample.
func (s *Server) handleGetHighlights(w http.ResponseWriter, r *http.Request) {
	items, err := s.highlights.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if items == nil {
		items = []types.Highlight{}
	}
	s.jsonResponse(w, http.StatusOK, types.HighlightsPayload{Highlights: items})
}

// handlePutHighlights replaces the manual highlights for a writing sample.
func (s *Server) handlePutHighlights(w http.ResponseWriter, r *http.Request) {
	var payload types.HighlightsPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		s.failure(w, r, err)
		return
	}
	if err := payload.Validate(); err != nil {
		s.failure(w, r, &ErrValidation{Field: "highlights", Message: err.Error()})
		return
	}
	if payload.Highlights == nil {
		payload.Highlights = []types.Highlight{}
	}

	if err := s.highlights.Put(r.Context(), r.PathValue("id"), payload.Highlights); err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, payload)
}

// handleGetAnnotation returns the latest archived annotation for a writing sample.
func (s *Server) handleGetAnnotation(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.failure(w, r, &ErrUnavailable{Feature: "annotation archive"})
		return
	}

	id := r.PathValue("id")
	ann, err := s.archive.GetAnnotation(r.Context(), id)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if ann == nil {
		s.failure(w, r, &ErrNotFound{Resource: "annotation", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, ann)
}
