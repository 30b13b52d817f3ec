package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    plan
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"one", "60:380:440", plan{{Tick: 60, Start: 380, End: 440}}, false},
		{"many", " 0:1:2 , 10:3.5:-4", plan{{Tick: 0, Start: 1, End: 2}, {Tick: 10, Start: 3.5, End: -4}}, false},
		{"missing_field", "60:380", nil, true},
		{"negative_tick", "-1:0:0", nil, true},
		{"bad_number", "1:x:0", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePlan(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlanAt(t *testing.T) {
	p := plan{{Tick: 1, Start: 1}, {Tick: 2, Start: 2}, {Tick: 1, Start: 3}}
	assert.Len(t, p.at(1), 2)
	assert.Empty(t, p.at(5))
}

func TestBuildRunsEmbeddedLevel(t *testing.T) {
	s, err := build("classic", false, "", false, 0)
	require.NoError(t, err)
	for i := 0; i < 120; i++ {
		require.NoError(t, s.Tick())
	}
	assert.Equal(t, uint64(120), s.Ticks())

	_, err = build("classic", false, "missing", false, 0)
	assert.Error(t, err)
}
