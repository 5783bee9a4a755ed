package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/PvPTrack_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// intParam parses an optional integer parameter. Absent values return def.
// Parse failures are recorded in fields under name.
func intParam(raw, name string, def int, fields map[string]string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fields[name] = ErrMsgInvalidInteger
		return def
	}
	return v
}

// floatParam parses an optional float parameter. Absent values return def.
func floatParam(raw, name string, def float64, fields map[string]string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fields[name] = "must be a number"
		return def
	}
	return v
}

// validateParams runs tag validation on req after parsing, merging parse
// failures with validation failures. If it returns false the 400 response
// has already been written and the handler should return.
func validateParams(w http.ResponseWriter, r *http.Request, req interface{}, parseErrs map[string]string) bool {
	fields := make(map[string]string, len(parseErrs))
	for k, v := range parseErrs {
		fields[k] = v
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		for k, v := range FormatValidationError(err) {
			if _, seen := fields[k]; !seen {
				fields[k] = v
			}
		}
	}
	if len(fields) == 0 {
		return true
	}

	logger.FromContext(r.Context()).Debug(LogMsgInvalidParams, "path", r.URL.Path, "fields", fields)
	respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  ErrMsgInvalidRequestSummary,
		Fields: fields,
	})
	return false
}

// splitList splits a comma-separated query value, dropping empty items.
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
