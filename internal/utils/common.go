package utils

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Common utilities used across the admin-api

// GetFileExtension extracts and normalizes the file extension
func GetFileExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

// MatchesMimeType checks if a MIME type matches a pattern
func MatchesMimeType(actual, pattern string) bool {
	// Exact match
	if actual == pattern {
		return true
	}

	// Wildcard match (e.g., "text/*" matches "text/plain")
	if strings.HasSuffix(pattern, "/*") {
		prefix := strings.TrimSuffix(pattern, "/*")
		return strings.HasPrefix(actual, prefix+"/")
	}

	return false
}

// IsValidMimeType checks if a MIME type matches any of the expected patterns
func IsValidMimeType(actual string, expectedPatterns []string) bool {
	for _, pattern := range expectedPatterns {
		if MatchesMimeType(actual, pattern) {
			return true
		}
	}
	return false
}

// ParseSizeString converts human-readable size strings like "100MB" to bytes
func ParseSizeString(sizeStr string) (int64, error) {
	sizeStr = strings.TrimSpace(sizeStr)

	units := []struct {
		suffix     string
		multiplier float64
	}{
		{"TB", 1 << 40},
		{"GB", 1 << 30},
		{"MB", 1 << 20},
		{"KB", 1 << 10},
	}

	for _, unit := range units {
		if strings.HasSuffix(sizeStr, unit.suffix) {
			value := strings.TrimSuffix(sizeStr, unit.suffix)
			if size, err := strconv.ParseFloat(value, 64); err == nil {
				return int64(size * unit.multiplier), nil
			}
			return 0, fmt.Errorf("invalid size format: %s", sizeStr)
		}
	}

	// Plain byte counts, with or without the "B" suffix
	if size, err := strconv.ParseInt(strings.TrimSuffix(sizeStr, "B"), 10, 64); err == nil {
		return size, nil
	}

	return 0, fmt.Errorf("invalid size format: %s", sizeStr)
}
