package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/codia/codia/pkg/errors"
	"github.com/codia/codia/pkg/pipeline"
)

// maxSourceBytes caps the accepted source size.
const maxSourceBytes = 1 << 20 // 1 MiB

// diagramRequest is the JSON body of POST /api/diagrams.
type diagramRequest struct {
	Source string  `json:"source"`
	Format string  `json:"format,omitempty"` // "svg" (default) or "png"
	Scale  float64 `json:"scale,omitempty"`
}

// diagramResponse is the JSON reply of POST /api/diagrams.
type diagramResponse struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Format        string `json:"format"`
	Classes       int    `json:"classes"`
	Relationships int    `json:"relationships"`
	Cached        bool   `json:"cached"`
}

// errorResponse is the JSON body of all error replies.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleCreateDiagram analyzes submitted Go source and renders it.
// The source arrives either as a JSON body or as a multipart file
// upload under the "file" field.
func (s *Server) handleCreateDiagram(w http.ResponseWriter, r *http.Request) {
	req, err := decodeDiagramRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if req.Format == "" {
		req.Format = "svg"
	}
	if req.Format != "svg" && req.Format != "png" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'svg' or 'png')", req.Format))
		return
	}

	ctx := r.Context()
	res, err := s.runner.Execute(ctx, pipeline.Options{
		Source:  req.Source,
		Formats: []string{req.Format},
		Scale:   req.Scale,
		Logger:  s.logger,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	data := res.Artifacts[req.Format]

	// Artifacts are retrievable by ID so the front end can link to them.
	id := uuid.NewString()
	if err := s.cache.Set(ctx, artifactKey(id, req.Format), data, artifactTTL); err != nil {
		s.logger.Warn("artifact store failed", "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(diagramResponse{
		ID:            id,
		URL:           "/api/diagrams/" + id + "?format=" + req.Format,
		Format:        req.Format,
		Classes:       res.Stats.ClassCount,
		Relationships: res.Stats.RelationshipCount,
		Cached:        res.CacheHit,
	})
}

// handleGetDiagram serves a previously rendered artifact.
func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}

	data, hit, err := s.cache.Get(r.Context(), artifactKey(id, format))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "artifact lookup failed"))
		return
	}
	if !hit {
		s.writeError(w, errors.New(errors.ErrCodeDiagramNotFound, "diagram %s not found", id))
		return
	}

	switch format {
	case "png":
		w.Header().Set("Content-Type", "image/png")
	default:
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	_, _ = w.Write(data)
}

// decodeDiagramRequest reads the request body as JSON or as a
// multipart file upload.
func decodeDiagramRequest(r *http.Request) (*diagramRequest, error) {
	ct := r.Header.Get("Content-Type")

	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxSourceBytes); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "invalid upload")
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "missing 'file' field")
		}
		defer f.Close()
		src, err := io.ReadAll(io.LimitReader(f, maxSourceBytes))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "reading upload failed")
		}
		return &diagramRequest{Source: string(src), Format: r.FormValue("format")}, nil
	}

	var req diagramRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxSourceBytes))
	if err := dec.Decode(&req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "invalid request body")
	}
	if strings.TrimSpace(req.Source) == "" {
		return nil, errors.New(errors.ErrCodeInvalidSource, "source must not be empty")
	}
	return &req, nil
}

func artifactKey(id, format string) string {
	return "artifact:" + id + ":" + format
}

// writeError maps a domain error to an HTTP status and JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidSource, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidModel:
		status = http.StatusBadRequest
	case errors.ErrCodeNoClasses:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeDiagramNotFound:
		status = http.StatusNotFound
	}

	if status >= 500 {
		s.logger.Error("request failed", "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}
