package api

import (
	"net/http"
	"strconv"

	"github.com/rpupo63/electronics-site-backend/database"
)

const (
	publicPageSize = 10
	adminPageSize  = 50
	maxPageSize    = 100
)

// pageFromQuery reads ?limit= and ?offset=. Missing, malformed or
// non-positive values fall back to the defaults; limit is capped.
func pageFromQuery(r *http.Request, defaultLimit int) database.Page {
	q := r.URL.Query()

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset, err := strconv.Atoi(q.Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return database.Page{Limit: limit, Offset: offset}
}
