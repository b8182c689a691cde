package handler

import "net/http"

// ErrorResponse is the JSON body returned for every error status.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
// Codes: invalid_request, invalid_timestamp, invalid_range, not_found.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError writes a JSON error body with the given status and code.
// The caller supplies the message because the handler is the layer that knows
// what was being looked up or parsed.
func respondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

func notFound(w http.ResponseWriter, message string) {
	respondError(w, http.StatusNotFound, "not_found", message)
}

func badRequest(w http.ResponseWriter, code, message string) {
	respondError(w, http.StatusBadRequest, code, message)
}
