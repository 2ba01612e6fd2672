// Package env reads optional configuration from the environment, falling
// back to defaults. ENV > defaults.
package env

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// String returns the value of key, or def if the variable is unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Duration parses key as either a bare number of seconds or a Go duration
// string. Non-positive values collapse to zero; unparsable values fall back
// to def.
func Duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		if n <= 0 {
			return 0
		}
		return time.Duration(n) * time.Second
	}
	if d, err := time.ParseDuration(v); err == nil {
		if d <= 0 {
			return 0
		}
		return d
	}
	return def
}

// Bool parses key as a boolean flag, falling back to def for anything it
// does not recognize.
func Bool(key string, def bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "t", "yes", "y":
		return true
	case "0", "false", "f", "no", "n":
		return false
	default:
		return def
	}
}
