package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationDefaults(t *testing.T) {
	page, limit := parsePagination(httptest.NewRequest("GET", "/api/donors", nil))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestParsePagination(t *testing.T) {
	page, limit := parsePagination(httptest.NewRequest("GET", "/api/donors?page=3&limit=25", nil))
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
}

func TestParsePaginationRejectsBadValues(t *testing.T) {
	page, limit := parsePagination(httptest.NewRequest("GET", "/api/donors?page=-1&limit=abc", nil))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = parsePagination(httptest.NewRequest("GET", "/api/donors?page=0&limit=0", nil))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestPaginationMeta(t *testing.T) {
	meta := paginationMeta(2, 10, 25)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	meta = paginationMeta(1, 10, 30)
	assert.Equal(t, 3, meta.TotalPages)

	meta = paginationMeta(1, 10, 0)
	assert.Equal(t, 0, meta.TotalPages)
}
