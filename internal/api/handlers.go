package api

import (
	"encoding/json"
	"net/http"

	"github.com/Denizche/divscheme/pkg/buildinfo"
	apperrors "github.com/Denizche/divscheme/pkg/errors"
	schemeio "github.com/Denizche/divscheme/pkg/io"
)

// errorBody is the JSON envelope for failed requests.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// handleHealth reports service status. The computation core has no external
// dependencies, so a running process is a healthy one.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"version": buildinfo.Version,
		"message": "division scheme service is ready",
	})
}

// handleInfo describes the API.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"name":        "divscheme",
		"version":     buildinfo.Version,
		"description": "GOST 2.701 division scheme validation and layout",
		"endpoints": map[string]string{
			"GET /health":           "service status",
			"GET /api/v1/info":      "this description",
			"POST /api/v1/validate": "validate a division scheme",
			"POST /api/v1/layout":   "validate and compute placement coordinates",
		},
	})
}

// handleValidate returns the full validation report for the posted scheme.
// The response is 200 even for invalid schemes: the report itself carries
// the verdict, and a complete report is the point of the endpoint.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	scheme, err := schemeio.ReadScheme(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.writeJSON(w, http.StatusOK, s.runner.Validate(scheme))
}

// handleLayout validates the posted scheme and computes its layout.
// Invalid schemes get 422 with the report; valid ones get the positions,
// advisory warnings, and BOM.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	scheme, err := schemeio.ReadScheme(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.runner.Run(r.Context(), scheme, s.cfg.Options)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	status := http.StatusOK
	if !res.Report.Valid {
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, res)
}

// writeJSON writes v with the given status. Encoding failures are logged;
// the status line is already out, so there is nothing else to send.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError writes the structured error envelope.
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	var body errorBody
	body.Error.Code = string(apperrors.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(apperrors.ErrCodeInternal)
	}
	body.Error.Message = apperrors.UserMessage(err)
	s.writeJSON(w, status, body)
}
