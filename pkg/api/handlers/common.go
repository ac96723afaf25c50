// Package handlers contains the HTTP handlers for the dashboard API.
// Each file registers one resource group on the shared /api subrouter.
package handlers

import (
	"net/http"
	"strconv"

	"smartgrocery/pkg/auth"
	"smartgrocery/pkg/models"
)

// protected wraps a handler with the bearer-token guard.
func protected(h http.HandlerFunc) http.Handler {
	return auth.Middleware(h)
}

// queryInt parses an integer query parameter, returning def when absent
// or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// paginate slices one page out of items and wraps it in the standard
// envelope. Page numbers are 1-based; out-of-range pages yield an empty
// data slice with the real total.
func paginate[T any](r *http.Request, items []T) models.Page {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return models.Page{
		Data:       items[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// pathID extracts the numeric {id} route variable, or 0.
func pathID(vars map[string]string) int {
	id, _ := strconv.Atoi(vars["id"])
	return id
}
