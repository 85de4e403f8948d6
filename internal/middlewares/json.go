package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type parsedJSONDataFieldType string

const parsedJSONDataField parsedJSONDataFieldType = "parsedJSONDataField"

// ModelParameter covers both single-object and slice request bodies.
type ModelParameter interface {
	interface{} | []interface{}
}

// JSONMiddleware decodes an application/json body into Model and stores the
// result in the request context.
func JSONMiddleware[Model ModelParameter](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "Content-Type is not application/json", http.StatusUnsupportedMediaType)
			return
		}

		var parsedData Model
		var buf bytes.Buffer

		if _, err := buf.ReadFrom(r.Body); err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during reading from the body: %s", err.Error()), http.StatusBadRequest)
			return
		}

		if err := json.Unmarshal(buf.Bytes(), &parsedData); err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during parsing JSON data: %s", err.Error()), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), parsedJSONDataField, parsedData)))
	})
}

// GetParsedJSONData retrieves the decoded body placed by JSONMiddleware.
func GetParsedJSONData[Model ModelParameter](w http.ResponseWriter, r *http.Request) Model {
	data, ok := r.Context().Value(parsedJSONDataField).(Model)

	if !ok {
		http.Error(w, "Could not retrieve data from context", http.StatusInternalServerError)
		var empty Model
		return empty
	}

	return data
}

// EncodeJSONResponse writes data as a JSON response body.
func EncodeJSONResponse[Model any](w http.ResponseWriter, data Model) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := json.Marshal(data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during encoding JSON response: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(resp); err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during writing the response: %s", err.Error()), http.StatusInternalServerError)
		return
	}
}
