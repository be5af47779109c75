package service_test

import (
	"testing"

	"claims-analytics-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		limit         int
		total         int64
		expectedPages int
	}{
		{"empty result", 1, 50, 0, 0},
		{"exact fit", 1, 50, 100, 2},
		{"partial last page", 1, 50, 101, 3},
		{"single record", 1, 20, 1, 1},
		{"limit one", 3, 1, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := service.NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.expectedPages, p.TotalPages)
		})
	}
}
