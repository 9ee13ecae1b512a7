package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/studyowl/canon/internal/cache"
	"github.com/studyowl/canon/internal/fingerprint"
	"github.com/studyowl/canon/internal/models"
	"github.com/studyowl/canon/internal/pipeline"
	"go.uber.org/zap"
)

type canonicalizeRequest struct {
	Text     string           `json:"text"`
	Metadata *models.Metadata `json:"metadata,omitempty"`
	PDF      bool             `json:"pdf,omitempty"`
}

type canonicalizeResponse struct {
	RequestID string          `json:"request_id"`
	Result    pipeline.Result `json:"result"`
	Cached    bool            `json:"cached"`
	Answer    *cache.Entry    `json:"answer,omitempty"`
}

func (s *Server) handleCanonicalize(w http.ResponseWriter, r *http.Request) {
	var req canonicalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	requestID := uuid.NewString()
	s.logger.Debug("canonicalize request",
		zap.String("request_id", requestID), zap.Int("text_len", len(req.Text)), zap.Bool("pdf", req.PDF))

	pipe := s.pipeline()
	var result pipeline.Result
	if req.PDF {
		result = pipe.CanonicalizePDF(req.Text, req.Metadata)
	} else {
		result = pipe.Canonicalize(req.Text, req.Metadata)
	}

	resp := canonicalizeResponse{RequestID: requestID, Result: result}
	if entry, err := s.lookupCached(r, result); err != nil {
		s.logger.Error("cache lookup failed", zap.String("request_id", requestID), zap.Error(err))
	} else if entry != nil {
		resp.Cached = true
		resp.Answer = entry
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// lookupCached checks the answer cache by key first, then by content
// fingerprint so reformatted duplicates still hit.
func (s *Server) lookupCached(r *http.Request, result pipeline.Result) (*cache.Entry, error) {
	if s.store == nil {
		return nil, nil
	}
	entry, err := s.store.Get(r.Context(), result.CacheKey)
	if entry != nil || err != nil {
		return entry, err
	}
	return s.store.GetByFingerprint(r.Context(), result.ContentHash)
}

type fingerprintRequest struct {
	Text     string           `json:"text"`
	Metadata *models.Metadata `json:"metadata,omitempty"`
}

func (s *Server) handleFingerprint(w http.ResponseWriter, r *http.Request) {
	var req fingerprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{
		"prompt_hash":  fingerprint.Prompt(req.Text, req.Metadata.Map()),
		"content_hash": fingerprint.Content(req.Text),
		"short_hash":   fingerprint.Short(req.Text),
	})
}

func (s *Server) handleGetAnswer(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	entry, err := s.store.Get(r.Context(), key)
	if err != nil {
		s.logger.Error("answer lookup failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entry == nil {
		s.respondError(w, http.StatusNotFound, "answer not found")
		return
	}
	s.respondJSON(w, http.StatusOK, entry)
}

type putAnswerRequest struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Fingerprint string `json:"fingerprint"`
	Model       string `json:"model,omitempty"`
	TTLSeconds  int    `json:"ttl_seconds,omitempty"`
}

func (s *Server) handlePutAnswer(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req putAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Answer == "" {
		s.respondError(w, http.StatusBadRequest, "answer is required")
		return
	}
	if req.Fingerprint != "" && !fingerprint.IsValid(req.Fingerprint) {
		s.respondError(w, http.StatusBadRequest, "invalid fingerprint")
		return
	}
	entry := &cache.Entry{
		Key:         key,
		Fingerprint: req.Fingerprint,
		Question:    req.Question,
		Answer:      req.Answer,
		Model:       req.Model,
	}
	if req.TTLSeconds > 0 {
		entry.CreatedAt = time.Now()
		entry.ExpiresAt = entry.CreatedAt.Add(time.Duration(req.TTLSeconds) * time.Second)
	}
	if err := s.store.Put(r.Context(), entry); err != nil {
		s.logger.Error("answer store failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]string{"key": key, "status": "stored"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	count := int64(-1)
	if s.store != nil {
		n, err := s.store.Count(r.Context())
		if err != nil {
			s.logger.Error("status: count answers failed", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		count = n
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"cached_answers": count,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
