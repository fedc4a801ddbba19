package server

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathParam(t *testing.T) {
	tests := []struct {
		path   string
		prefix string
		suffix string
		want   string
	}{
		{"/api/stocks/MSFT", "/api/stocks/", "", "MSFT"},
		{"/api/stocks/MSFT/check", "/api/stocks/", "/check", "MSFT"},
		{"/api/stocks/MSFT/chart", "/api/stocks/", "/chart", "MSFT"},
		{"/api/stocks/BRK.B/check", "/api/stocks/", "/check", "BRK.B"},
		{"/api/stocks/MSFT/extra", "/api/stocks/", "", "MSFT"},
		{"/api/other/MSFT", "/api/stocks/", "", ""},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.path, nil)
		assert.Equal(t, tt.want, PathParam(r, tt.prefix, tt.suffix), "path=%s", tt.path)
	}
}
