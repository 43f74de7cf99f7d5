package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/apibridge/client-go/internal/apierrors"
)

// errorBody is the FastAPI error envelope. Detail is a string for
// HTTPException and a list of field errors for request validation.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationDetail struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// parseErrorResponse builds the single error returned for a non-2xx response.
func parseErrorResponse(statusCode int, status string, body []byte, requestID string) error {
	phrase := statusPhrase(statusCode, status)

	message := phrase
	var errResp errorBody
	if err := json.Unmarshal(body, &errResp); err == nil {
		if detail := detailMessage(errResp.Detail); detail != "" {
			message = detail
		}
	}

	return &apierrors.APIError{
		StatusCode: statusCode,
		Status:     phrase,
		Message:    message,
		RequestID:  requestID,
	}
}

// statusPhrase strips the numeric code from an http.Response Status line.
func statusPhrase(statusCode int, status string) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(statusCode)))
	if phrase == "" {
		phrase = http.StatusText(statusCode)
	}
	return phrase
}

func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var items []validationDetail
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg == "" {
				continue
			}
			if loc := joinLoc(item.Loc); loc != "" {
				msgs = append(msgs, loc+": "+item.Msg)
			} else {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}

func joinLoc(loc []any) string {
	parts := make([]string, 0, len(loc))
	for _, p := range loc {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ".")
}
