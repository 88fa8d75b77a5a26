package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
)

// maxBodyBytes caps request body size for all JSON endpoints.
const maxBodyBytes = 4 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readBodyJSON(r *http.Request, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// errorResponse is the JSON body returned for all failed requests.
type errorResponse struct {
	Error string `json:"error"`
}
