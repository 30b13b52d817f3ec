package sim

import (
	"bytes"
	"log"
	"sync"
	"testing"

	"github.com/milk9111/blocklaunch/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

var floor = physics.Obstacle{X: 0, Y: 580, Width: 800, Height: 20}

// restY is where a 20px block sits on floor.
const restY = 580 - 20 - 0.01

func newTestSim(t *testing.T, x, y float64, opts []Option, obstacles ...physics.Obstacle) *Simulation {
	t.Helper()
	w, err := physics.NewWorld(800, 600, obstacles)
	require.NoError(t, err)
	b, err := physics.NewBody(x, y, 20, 20)
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.Respawn = Point{X: 100, Y: 100}
	s, err := New(w, b, physics.DefaultConfig(), cfg, opts...)
	require.NoError(t, err)
	return s
}

func tickN(t *testing.T, s *Simulation, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, s.Tick())
	}
}

func TestNewRequiresWorldAndBody(t *testing.T) {
	w, err := physics.NewWorld(800, 600, nil)
	require.NoError(t, err)
	b, err := physics.NewBody(0, 0, 20, 20)
	require.NoError(t, err)

	_, err = New(nil, b, physics.DefaultConfig(), DefaultConfig())
	assert.ErrorIs(t, err, ErrWorldNotReady)
	_, err = New(w, nil, physics.DefaultConfig(), DefaultConfig())
	assert.ErrorIs(t, err, ErrWorldNotReady)

	var empty Simulation
	assert.ErrorIs(t, empty.Tick(), ErrWorldNotReady)
}

func TestStop(t *testing.T) {
	s := newTestSim(t, 390, restY, nil, floor)
	require.NoError(t, s.Tick())
	s.Stop()
	assert.True(t, s.Stopped())
	assert.ErrorIs(t, s.Tick(), ErrStopped)
	assert.Equal(t, uint64(1), s.Ticks())
}

func TestRestingBlockStaysIdle(t *testing.T) {
	s := newTestSim(t, 390, restY, nil, floor)
	tickN(t, s, 120)
	assert.Equal(t, StateIdle, s.State())
	assert.True(t, s.IndicatorVisible())
	assert.InDelta(t, restY, s.Body().Y, 0.5)
}

func TestLaunch(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		facing     physics.Facing
		vx, vy     float64
	}{
		// block centre is x=400
		{"anchor_left_pull_right", 380, 420, physics.FacingLeft, 15, -30},
		{"anchor_right_pull_left", 420, 400, physics.FacingRight, -10, -15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim(t, 390, restY, nil, floor)
			s.AimStart(tc.start)
			s.AimUpdate(tc.end)
			require.NoError(t, s.Tick())

			b := s.Body()
			assert.Equal(t, StateLaunched, s.State())
			assert.Equal(t, tc.facing, b.Facing)
			assert.False(t, s.IndicatorVisible())
			// gravity and air resistance act on the launch tick
			assert.InDelta(t, tc.vx*0.995, b.VX, eps)
			assert.InDelta(t, (tc.vy+0.5)*0.995, b.VY, eps)
		})
	}
}

func TestAimUpdateTowardAnchorDoesNotLaunch(t *testing.T) {
	s := newTestSim(t, 390, restY, nil, floor)
	s.AimStart(380)
	s.AimUpdate(370)
	require.NoError(t, s.Tick())

	assert.Equal(t, StateAiming, s.State())
	assert.True(t, s.IndicatorVisible())
	assert.Equal(t, 380.0, s.AimStartX())
	assert.Zero(t, s.Body().VX)
}

func TestAimStartToggles(t *testing.T) {
	s := newTestSim(t, 390, restY, nil, floor)
	s.AimStart(380)
	require.NoError(t, s.Tick())
	assert.Equal(t, StateAiming, s.State())

	s.AimStart(380)
	require.NoError(t, s.Tick())
	assert.Equal(t, StateIdle, s.State())

	// released aim ignores updates
	s.AimUpdate(500)
	require.NoError(t, s.Tick())
	assert.Equal(t, StateIdle, s.State())
}

func TestAimRejectedWhileMoving(t *testing.T) {
	s := newTestSim(t, 390, 300, nil, floor)
	s.body.VX = 10
	s.AimStart(380)
	s.AimUpdate(420)
	require.NoError(t, s.Tick())

	assert.Equal(t, StateLaunched, s.State())
	assert.InDelta(t, 10*0.995, s.Body().VX, eps)
}

func TestAimDroppedWhenBlockStartsMoving(t *testing.T) {
	s := newTestSim(t, 390, restY, nil, floor)
	s.AimStart(380)
	require.NoError(t, s.Tick())
	require.Equal(t, StateAiming, s.State())

	s.body.VX = 5
	require.NoError(t, s.Tick())
	assert.Equal(t, StateLaunched, s.State())
	assert.False(t, s.IndicatorVisible())
}

func TestSetPhysicsConfig(t *testing.T) {
	s := newTestSim(t, 0, 100, nil)
	s.SetGravity(0)
	s.SetAirResistance(1)
	s.body.VX = -3

	cfg := physics.DefaultConfig()
	cfg.SideWalls = false
	s.SetPhysicsConfig(cfg)
	require.NoError(t, s.Tick())
	assert.False(t, s.LastStep().Contact.Collided())
	assert.InDelta(t, -3, s.Body().X, eps)

	s.SetMoveUpNudge(2)
	s.MoveUp()
	require.NoError(t, s.Tick())
	assert.InDelta(t, 98, s.Body().Y, eps)
}

func TestRestDwell(t *testing.T) {
	s := newTestSim(t, 390, restY, nil, floor)
	s.setState(stateLaunched)

	require.NoError(t, s.Tick())
	assert.Equal(t, StateResting, s.State())
	assert.False(t, s.IndicatorVisible())

	dwell := s.cfg.dwellTicks()
	require.Equal(t, 6, dwell)
	tickN(t, s, dwell-1)
	assert.Equal(t, StateResting, s.State())

	require.NoError(t, s.Tick())
	assert.Equal(t, StateIdle, s.State())
	assert.True(t, s.IndicatorVisible())
}

func TestLaunchedBlockComesToRest(t *testing.T) {
	s := newTestSim(t, 390, restY, nil, floor)
	s.AimStart(380)
	s.AimUpdate(400)
	require.NoError(t, s.Tick())
	require.Equal(t, StateLaunched, s.State())

	for i := 0; i < 2000 && s.State() != StateIdle; i++ {
		require.NoError(t, s.Tick())
	}
	assert.Equal(t, StateIdle, s.State())
	b := s.Body()
	assert.InDelta(t, restY, b.Y, 0.5)
	assert.GreaterOrEqual(t, b.X, 0.0)
	assert.LessOrEqual(t, b.Right(), 800.0)
}

func TestGoalResetsToRespawn(t *testing.T) {
	goal := floor
	goal.Tag = physics.TagGoal
	s := newTestSim(t, 390, restY, nil, goal)

	require.NoError(t, s.Tick())
	assert.True(t, s.Done())
	assert.Equal(t, 1, s.Goals())

	require.NoError(t, s.Tick())
	b := s.Body()
	assert.False(t, s.Done())
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 100.0, b.X)
	// one free-fall tick after the reset
	assert.InDelta(t, 100.5, b.Y, eps)
	assert.InDelta(t, 0.5*0.995, b.VY, eps)
}

func TestMoveUp(t *testing.T) {
	s := newTestSim(t, 100, 100, nil)
	s.SetGravity(0)
	s.MoveUp()
	require.NoError(t, s.Tick())
	assert.InDelta(t, 99.99, s.Body().Y, eps)

	// one-shot
	require.NoError(t, s.Tick())
	assert.InDelta(t, 99.99, s.Body().Y, eps)
}

func TestApplyTuning(t *testing.T) {
	s := newTestSim(t, 100, 100, nil)
	want := Tuning{Gravity: 0.25, AirResistance: 1, Elasticity: 0.5, Friction: 0.9}
	s.ApplyTuning(want)
	assert.Equal(t, want, s.Tuning())

	require.NoError(t, s.Tick())
	assert.InDelta(t, 100.25, s.Body().Y, eps)
	assert.InDelta(t, 0.25, s.Body().VY, eps)
}

func TestWithSystemsRunsAfterPipeline(t *testing.T) {
	var states []State
	rec := SystemFunc(func(s *Simulation) { states = append(states, s.State()) })
	s := newTestSim(t, 390, restY, []Option{WithSystems(rec)}, floor)

	s.AimStart(380)
	s.AimUpdate(420)
	tickN(t, s, 2)
	assert.Equal(t, []State{StateLaunched, StateLaunched}, states)
	assert.Len(t, s.scheduler.Systems(), len(DefaultSystems())+1)
}

func TestWithLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	s := newTestSim(t, 390, restY, []Option{WithLogger(logger, true)}, floor)

	s.AimStart(380)
	s.AimUpdate(420)
	require.NoError(t, s.Tick())
	assert.Contains(t, buf.String(), "sim: state idle -> aiming")
	assert.Contains(t, buf.String(), "sim: launch vx=15.00 vy=-30.00")
}

func TestInputQueueConcurrentPush(t *testing.T) {
	s := newTestSim(t, 100, 100, nil)
	s.SetGravity(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.AimUpdate(float64(j))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, s.queue.len())

	require.NoError(t, s.Tick())
	assert.Zero(t, s.queue.len())
}

func TestSetStepMode(t *testing.T) {
	s := newTestSim(t, 100, 100, nil)
	assert.Equal(t, physics.StepContinuous, s.StepMode())
	s.SetStepMode(physics.StepDiscrete)
	s.body.VY = 40
	require.NoError(t, s.Tick())
	assert.Equal(t, 1, s.LastStep().Steps)
}
