package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldValidation(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		height    float64
		obstacles []Obstacle
		wantErr   bool
	}{
		{name: "empty", width: 800, height: 600},
		{name: "unbounded_height", width: 800, height: 0, obstacles: []Obstacle{{X: 0, Y: 580, Width: 800, Height: 20}}},
		{name: "zero_width", width: 0, height: 600, wantErr: true},
		{name: "negative_height", width: 800, height: -1, wantErr: true},
		{name: "flat_obstacle", width: 800, height: 600, obstacles: []Obstacle{{X: 0, Y: 0, Width: 10, Height: 0}}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := NewWorld(tc.width, tc.height, tc.obstacles)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidSize)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.obstacles), w.Len())
			assert.Equal(t, DefaultGravity, w.Gravity())
			assert.Equal(t, DefaultAirResistance, w.AirResistance())
		})
	}
}

func TestWorldQueryKeepsLevelOrder(t *testing.T) {
	obstacles := []Obstacle{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 500, Y: 500, Width: 10, Height: 10},
		{X: 50, Y: 50, Width: 100, Height: 100},
		{X: 20, Y: 20, Width: 10, Height: 10},
	}
	w, err := NewWorld(800, 600, obstacles)
	require.NoError(t, err)

	got := w.Query(cp.BB{L: 10, B: 10, R: 60, T: 60}, nil)
	assert.Equal(t, []int{0, 2, 3}, got)

	got = w.Query(cp.BB{L: 700, B: 0, R: 790, T: 10}, got[:0])
	assert.Empty(t, got)
}

func TestWorldObstaclesIsACopy(t *testing.T) {
	w, err := NewWorld(800, 600, []Obstacle{{X: 1, Y: 2, Width: 3, Height: 4, Tag: TagGoal}})
	require.NoError(t, err)

	obs := w.Obstacles()
	obs[0].X = 99
	assert.Equal(t, 1.0, w.Obstacle(0).X)
	assert.True(t, w.Obstacle(0).IsGoal())
}

func TestNewBody(t *testing.T) {
	b, err := NewBody(10, 20, 30, 40)
	require.NoError(t, err)
	assert.Equal(t, DefaultElasticity, b.Elasticity)
	assert.Equal(t, DefaultFriction, b.Friction)
	assert.Equal(t, 40.0, b.Right())
	assert.Equal(t, 60.0, b.Bottom())
	assert.Equal(t, FacingRight, b.Facing)

	_, err = NewBody(0, 0, 0, 20)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestParseTag(t *testing.T) {
	assert.Equal(t, TagGoal, ParseTag("goal"))
	assert.Equal(t, TagGoal, ParseTag(" GOAL "))
	assert.Equal(t, TagSolid, ParseTag(""))
	assert.Equal(t, TagSolid, ParseTag("lava"))
}
