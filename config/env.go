package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envReader reads typed variables, falling back to the default and noting
// the variable name when a value does not parse.
type envReader struct {
	invalid []string
}

func (e *envReader) getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (e *envReader) getInt(key string, def int) int {
	return lookup(e, key, def, strconv.Atoi)
}

func (e *envReader) getBool(key string, def bool) bool {
	return lookup(e, key, def, strconv.ParseBool)
}

func (e *envReader) getDuration(key string, def time.Duration) time.Duration {
	return lookup(e, key, def, time.ParseDuration)
}

// getBreaker reads PREFIX_FAILURE_THRESHOLD, PREFIX_SUCCESS_THRESHOLD and PREFIX_TIMEOUT.
func (e *envReader) getBreaker(prefix string, def BreakerConfig) BreakerConfig {
	return BreakerConfig{
		FailureThreshold: e.getInt(prefix+"_FAILURE_THRESHOLD", def.FailureThreshold),
		SuccessThreshold: e.getInt(prefix+"_SUCCESS_THRESHOLD", def.SuccessThreshold),
		Timeout:          e.getDuration(prefix+"_TIMEOUT", def.Timeout),
	}
}

func lookup[T any](e *envReader, key string, def T, parse func(string) (T, error)) T {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := parse(v)
	if err != nil {
		e.invalid = append(e.invalid, key)
		return def
	}
	return parsed
}

// splitNames splits a comma separated list, dropping blanks and repeats
// while keeping the configured order.
func splitNames(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	seen := make(map[string]bool, len(parts))
	var result []string
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
