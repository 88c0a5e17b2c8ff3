package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseIntParam retrieves an integer value from the provided URL query
// parameters. If the key is not present it returns 0; if the value is not an
// integer it returns 0 and records the problem in the fieldErrors map.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return 0, fieldErrors
	}
	return n, fieldErrors
}

// ParseYearParam parses a year query parameter. Zero means the parameter was
// absent; anything outside the plausible indicator range is a field error.
func ParseYearParam(params url.Values, key string, fieldErrors map[string][]string) (int, map[string][]string) {
	year, fieldErrors := ParseIntParam(params, key, fieldErrors)
	if year == 0 {
		return 0, fieldErrors
	}
	if year < 1900 || year > 2100 {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return 0, fieldErrors
	}
	return year, fieldErrors
}

// ParseLimitParam parses a row limit. Negative limits are field errors; zero
// means "use the default".
func ParseLimitParam(params url.Values, key string, fieldErrors map[string][]string) (int, map[string][]string) {
	limit, fieldErrors := ParseIntParam(params, key, fieldErrors)
	if limit < 0 {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return 0, fieldErrors
	}
	return limit, fieldErrors
}

// ParseListParam splits a comma-separated query parameter into its trimmed,
// non-empty values.
func ParseListParam(params url.Values, key string) []string {
	val := params.Get(key)
	if val == "" {
		return nil
	}

	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
