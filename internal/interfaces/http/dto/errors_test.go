package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeOutOfStock, http.StatusConflict},
		{CodePaymentFailed, http.StatusPaymentRequired},
		{CodeServiceUnavailable, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
		{CodeBadRequest, http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestErrorResponse_WireShape(t *testing.T) {
	data, err := json.Marshal(NewErrorResponse("Product not found"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"detail": "Product not found"}`, string(data))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 20, 5},
		{100, 7, 15},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name               string
		total, page, limit int
		wantStart, wantEnd int
	}{
		{"first page", 100, 1, 20, 0, 20},
		{"middle page", 100, 3, 20, 40, 60},
		{"last partial page", 45, 3, 20, 40, 45},
		{"page past end", 45, 9, 20, 45, 45},
		{"empty collection", 0, 1, 20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
