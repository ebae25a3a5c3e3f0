package util

import (
	"net/http"
	"strconv"
)

var MalformedIdHTTPErr = HTTPError{
	Message: "id malformed",
	Status:  http.StatusBadRequest,
}

func ParseId(val string) (int64, *HTTPError) {
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil || id <= 0 {
		return 0, &MalformedIdHTTPErr
	}
	return id, nil
}

// ParseIntOrDefault reads an optional numeric query value.
func ParseIntOrDefault(val string, fallback int) (int, *HTTPError) {
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return 0, &HTTPError{
			Message: "query value malformed",
			Status:  http.StatusBadRequest,
		}
	}
	return parsed, nil
}
