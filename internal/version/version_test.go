package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIDFor(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2026-01-05", expected: 0},
		{name: "next day after epoch", date: "2026-01-06", expected: 1},
		{name: "one year later", date: "2027-01-05", expected: 365},
		{name: "across leap year", date: "2029-01-05", expected: 1096},
		{name: "invalid format", date: "invalid", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2026-01-04", wantError: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := buildIDFor(tt.date)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInfo_Unset(t *testing.T) {
	old := BuildDate
	BuildDate = ""
	defer func() { BuildDate = old }()

	info := Info()
	assert.Equal(t, Name, info.Name)
	assert.False(t, info.Calculated)
	assert.NotEmpty(t, info.Error)
	assert.Contains(t, String(), "build unknown")
}

func TestString_Calculated(t *testing.T) {
	old := BuildDate
	BuildDate = "2026-01-15"
	defer func() { BuildDate = old }()

	assert.Equal(t, "JavIsland build 10 (2026-01-15) commit[unknown] branch[unknown] ci[local]", String())
}
