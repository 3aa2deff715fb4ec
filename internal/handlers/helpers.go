package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mariocampos1028/bankinc/internal/envelope"
	"github.com/mariocampos1028/bankinc/internal/service"
)

// writeJSON writes v as a JSON response with the given status code
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// respondSuccess writes the envelope's success variant with HTTP 200
func (h *Handler) respondSuccess(w http.ResponseWriter, message string, data any) {
	h.writeJSON(w, http.StatusOK, envelope.Success(message, data))
}

// respondError maps a service error to the envelope's error variant.
// Every expected business failure becomes HTTP 400; anything else is an
// internal defect and becomes HTTP 500 without leaking details.
func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) && svcErr.Kind != service.KindInternal {
		h.writeJSON(w, http.StatusBadRequest, envelope.Error(svcErr.Message))
		return
	}

	h.logger.Error("unexpected error", "operation", op, "error", err)
	h.writeJSON(w, http.StatusInternalServerError, envelope.Error("internal error"))
}

// decodeJSON decodes the request body into v, reporting malformed bodies
// as a business validation failure
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, envelope.Error("invalid request body"))
		return false
	}
	return true
}
