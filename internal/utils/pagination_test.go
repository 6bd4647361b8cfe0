package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampPage(t *testing.T) {
	cases := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults", 0, 0, 1, DefaultPerPage},
		{"negative page", -3, 10, 1, 10},
		{"over the cap", 2, 500, 2, MaxPerPage},
		{"in range", 3, 25, 3, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, perPage := ClampPage(tc.page, tc.perPage)
			require.Equal(t, tc.wantPage, page)
			require.Equal(t, tc.wantPerPage, perPage)
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 45)
	require.Equal(t, 2, p.Page)
	require.Equal(t, 10, p.PerPage)
	require.Equal(t, 45, p.Total)
	require.Equal(t, 5, p.TotalPages)

	empty := NewPagination(1, 10, 0)
	require.Equal(t, 0, empty.TotalPages)
}

func TestOffset(t *testing.T) {
	require.Equal(t, 0, Offset(1, 20))
	require.Equal(t, 40, Offset(3, 20))
}
