package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// Document is the success envelope every endpoint responds with:
// a typed resource under "data" plus a self link.
type Document struct {
	Data  interface{} `json:"data"`
	Links *Links      `json:"links,omitempty"`
}

type Links struct {
	Self string `json:"self"`
}

type ErrorDocument struct {
	Errors ErrorObject `json:"errors"`
}

type ErrorObject struct {
	Code   int                 `json:"code"`
	Title  string              `json:"title"`
	Detail string              `json:"detail"`
	Meta   map[string][]string `json:"meta,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func WriteError(w http.ResponseWriter, code int, title, detail string) {
	WriteJSON(w, code, ErrorDocument{
		Errors: ErrorObject{Code: code, Title: title, Detail: detail},
	})
}

// WriteValidationError reports missing or malformed input per field, before
// any domain logic runs.
func WriteValidationError(w http.ResponseWriter, meta map[string][]string) {
	WriteJSON(w, http.StatusUnprocessableEntity, ErrorDocument{
		Errors: ErrorObject{
			Code:   http.StatusUnprocessableEntity,
			Title:  "Validation Error",
			Detail: "The given data was invalid",
			Meta:   meta,
		},
	})
}
