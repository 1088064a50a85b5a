package domain

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNotFound is the only error the resolution pipeline surfaces to its
// callers. Transport failures, exhausted retries and malformed upstream
// payloads all collapse into it.
var ErrNotFound = errors.New("pedido not found")

// OrderRecord is built only from a fully parsed upstream response. A partial
// payload never produces a record, the whole lookup fails instead.
type OrderRecord struct {
	Code        string `json:"codigo"`
	Status      string `json:"estado"`
	UpdatedAt   string `json:"fecha"`
	Product     string `json:"producto"`
	Customer    string `json:"cliente,omitempty"`
	TotalAmount string `json:"precio_total"`
}

// NormalizeCode canonicalizes an order code: trimmed, uppercased, internal
// whitespace removed. Read and write paths must use the same form or a valid
// code misses the cache on case alone.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, code)
}

// CacheKey scopes cached records to the requester, so two users asking about
// the same code do not see each other's entries.
func CacheKey(requesterID, code string) string {
	return strings.TrimSpace(requesterID) + ":" + NormalizeCode(code)
}
