package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

// Envelope is the uniform body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Page extends the envelope with pagination info.
type Page struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	Data    any  `json:"data"`
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteResponseBytesOK(w http.ResponseWriter, contentType string, message []byte) {
	WriteResponseBytes(w, contentType, message, http.StatusOK)
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}

// WriteJSON marshals v and writes it with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, `{"success":false,"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, body, statusCode)
}

// WriteData writes {success: true, data}.
func WriteData(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, Envelope{Success: true, Data: data})
}

// WriteList writes {success: true, count, data}. A nil slice is written as [].
func WriteList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Count: &count, Data: items})
}

// WriteError writes {success: false, error} with the status derived from err.
func WriteError(w http.ResponseWriter, err error) {
	status := HTTPStatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Errorf("request failed: %s", err)
		msg = "internal server error"
	} else {
		log.Debugf("request rejected [%d]: %s", status, err)
	}
	WriteJSON(w, status, Envelope{Success: false, Error: msg})
}

// WriteErrorMessage writes an error envelope with an explicit status and message.
func WriteErrorMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Envelope{Success: false, Error: message})
}
