package domain

import (
	"encoding/json"
	"strings"
)

// Sanitizers interpret raw JSON values from request bodies. Requests are
// deliberately forgiving: a value of the wrong type is discarded rather than
// rejected, so a request that is valid in its required fields never fails
// because of a malformed optional one.

// SanitizeEmail keeps a raw JSON value only when it is a string containing
// an "@". Anything else, including a missing value, yields the empty string.
func SanitizeEmail(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	if !strings.Contains(s, "@") {
		return ""
	}
	return s
}

// SanitizeImageURL keeps a raw JSON value only when it is a string with an
// explicit http or https scheme. Anything else yields the empty string.
func SanitizeImageURL(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return ""
	}
	return s
}

// SanitizeTags interprets a raw JSON value as a list of tag names. A value
// that is not an array yields an empty list, and entries that are not
// non-blank strings are dropped. The result is never nil.
func SanitizeTags(raw json.RawMessage) []string {
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}

	tags := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		tags = append(tags, s)
	}
	return tags
}

// SanitizeFavorite interprets a raw JSON value as an optional boolean.
// It returns nil unless the value is a JSON boolean, letting callers tell
// "leave unchanged" apart from "set to false".
func SanitizeFavorite(raw json.RawMessage) *bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil
	}
	return &b
}
