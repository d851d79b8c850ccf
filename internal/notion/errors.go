package notion

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is the error object Notion returns on non-2xx responses.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion: status %d", e.Status)
	}

	return fmt.Sprintf("notion: %s (status %d): %s", e.Code, e.Status, e.Message)
}

func decodeAPIError(status int, payload []byte) error {
	apiErr := APIError{Status: status}
	if err := json.Unmarshal(payload, &apiErr); err != nil || apiErr.Code == "" {
		snippet := strings.TrimSpace(string(payload))
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		apiErr.Message = snippet
	}
	apiErr.Status = status

	return &apiErr
}
