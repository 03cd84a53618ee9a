// Package utils holds small parsing helpers shared by the HTTP and service
// layers. Nothing here knows about the domain.
package utils

import (
	"strconv"
	"strings"
)

// AtoiDefault parses a query value such as ?limit=. Blank or malformed input
// yields def.
//
//	utils.AtoiDefault("42", 0)   // 42
//	utils.AtoiDefault(" 7 ", 0)  // 7
//	utils.AtoiDefault("ten", 20) // 20
func AtoiDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// ClampLimit bounds a page size to [1, max]. Non-positive limits mean max.
func ClampLimit(limit, max int) int {
	if limit <= 0 || limit > max {
		return max
	}
	return limit
}
