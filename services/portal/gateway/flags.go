package gateway

import (
	"regexp"
	"strconv"
	"strings"
)

// The backend's success indicator and payload envelope are not fixed, so
// reads tolerate several equivalent shapes. The accepted key names and
// truthy spellings are pinned here in one place.

var truthySpellings = map[string]bool{
	"ok":       true,
	"success":  true,
	"true":     true,
	"1":        true,
	"yes":      true,
	"verified": true,
	"valid":    true,
}

var successMessageRe = regexp.MustCompile(`(?i)(success|logged|authenticated)`)

// truthyFlag interprets a boolean-like upstream value.
func truthyFlag(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case string:
		return truthySpellings[strings.ToLower(strings.TrimSpace(t))]
	default:
		return false
	}
}

// flagSet reports whether any of the given keys carries a truthy value.
func flagSet(m map[string]interface{}, keys ...string) bool {
	if m == nil {
		return false
	}
	for _, key := range keys {
		if truthyFlag(m[key]) {
			return true
		}
	}
	return false
}

// hasToken reports whether the body carries a non-empty token under any of
// the known token key names.
func hasToken(m map[string]interface{}) bool {
	if m == nil {
		return false
	}
	for _, key := range []string{"token", "access_token", "accessToken", "jwt"} {
		if s, ok := m[key].(string); ok && s != "" {
			return true
		}
	}
	return false
}

// hasUserObject reports whether the body carries a user-shaped object.
func hasUserObject(m map[string]interface{}) bool {
	if m == nil {
		return false
	}
	for _, key := range []string{"user", "account", "profile"} {
		if _, ok := m[key].(map[string]interface{}); ok {
			return true
		}
	}
	return false
}

// messageOK reports whether the body's message reads like a success.
func messageOK(m map[string]interface{}) bool {
	if m == nil {
		return false
	}
	s, ok := m["message"].(string)
	return ok && successMessageRe.MatchString(s)
}

// extractList pulls a list payload out of the body: a bare array, or an
// array under any of the given keys.
func extractList(data interface{}, keys ...string) []interface{} {
	if arr, ok := data.([]interface{}); ok {
		return arr
	}
	m, ok := data.(map[string]interface{})
	if !ok {
		return nil
	}
	for _, key := range keys {
		if arr, ok := m[key].([]interface{}); ok {
			return arr
		}
	}
	return nil
}

// extractRecord pulls a single record out of the body: an object under any
// of the given keys, falling back to the body itself.
func extractRecord(data interface{}, keys ...string) map[string]interface{} {
	m, ok := data.(map[string]interface{})
	if !ok {
		return nil
	}
	for _, key := range keys {
		if rec, ok := m[key].(map[string]interface{}); ok {
			return rec
		}
	}
	return m
}

// stringField returns the first non-empty string under the given keys.
func stringField(m map[string]interface{}, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// intField returns the first positive integer under the given keys,
// tolerating numeric strings.
func intField(m map[string]interface{}, keys ...string) int {
	if m == nil {
		return 0
	}
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			if v > 0 {
				return int(v)
			}
		case string:
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}
