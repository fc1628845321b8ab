package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/pipeline"
	"github.com/matzehuels/copybook/pkg/poetry"
)

func (s *Server) handleCreateSheet(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, r, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Execute works on a copy; apply the same defaults to record the template used.
	opts.SetDefaults()
	sheet := NewSheet(res, opts.Template, s.sheets.TTL())
	if err := s.sheets.Set(r.Context(), sheet); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sheets/"+sheet.ID)
	writeJSON(w, http.StatusCreated, sheet)
}

func (s *Server) handleGetSheet(w http.ResponseWriter, r *http.Request) {
	sheet, err := s.sheets.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

func (s *Server) handleListPoems(w http.ResponseWriter, r *http.Request) {
	items, err := s.runner.Poems.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []poetry.Item{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"poems": items})
}

func (s *Server) handleGetPoem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errs.ValidatePoemID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	item, err := s.runner.Poems.Get(r.Context(), id)
	if errors.Is(err, poetry.ErrNotFound) {
		err = errs.Wrap(errs.ErrCodePoemNotFound, err, "poem %s not found", id)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type strokesResponse struct {
	Char  string `json:"char"`
	Count int    `json:"count"`
	Known bool   `json:"known"`
}

func (s *Server) handleGetStrokes(w http.ResponseWriter, r *http.Request) {
	char := chi.URLParam(r, "char")
	if unescaped, err := url.PathUnescape(char); err == nil {
		char = unescaped
	}
	if err := errs.ValidateCharacter(char); err != nil {
		s.writeError(w, r, err)
		return
	}
	if s.runner.Strokes == nil {
		s.writeError(w, r, errs.New(errs.ErrCodeUnsupported, "stroke lookup is not configured"))
		return
	}

	if _, err := s.runner.Strokes.Populate(r.Context(), char); err != nil {
		s.writeError(w, r, err)
		return
	}
	n, ok := s.runner.Strokes.StrokeCount(char)
	writeJSON(w, http.StatusOK, strokesResponse{Char: char, Count: n, Known: ok})
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errs.Code) int {
	switch {
	case code == "":
		return http.StatusInternalServerError
	case code.Invalid():
		return http.StatusBadRequest
	case code.NotFound():
		return http.StatusNotFound
	case code == errs.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case code == errs.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case code == errs.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errs.GetCode(err)
	status := statusFor(code)

	body := errorBody{Code: string(code), Message: errs.UserMessage(err)}
	if code == "" {
		body = errorBody{Code: string(errs.ErrCodeInternal), Message: "internal error"}
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
