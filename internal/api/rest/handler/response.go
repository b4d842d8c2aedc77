package handler

import (
	"encoding/json"
	"net/http"
)

const contentTypeJSON = "application/json"

// ErrorResponse is the body written for every non-2xx coffee response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSONResponse encodes data as the response body with the given status
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes an ErrorResponse; message is omitted when empty
func WriteErrorResponse(w http.ResponseWriter, statusCode int, errMsg, message string) {
	WriteJSONResponse(w, statusCode, ErrorResponse{Error: errMsg, Message: message})
}

// WriteNoContent writes an empty response with status 204
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
