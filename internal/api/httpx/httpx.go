package httpx

import (
	"encoding/json"
	"net/http"
)

type errorEnvelope struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ErrorJSON(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorEnvelope{Status: "error", Error: message})
}

// OK writes v as a plain 200 JSON body.
func OK(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, v)
}
