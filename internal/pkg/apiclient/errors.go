package apiclient

import (
	"encoding/json"
)

// APIError is returned when the server answers with an error status
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "api error: " + e.Message
}

func detailOf(body string) string {
	var res struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal([]byte(body), &res); err != nil || res.Detail == "" {
		return body
	}
	return res.Detail
}
