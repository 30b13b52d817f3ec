package prefabs

import (
	"fmt"
	"strings"
	"time"

	"github.com/milk9111/blocklaunch/physics"
	"github.com/milk9111/blocklaunch/sim"
)

// Tuning is every prefab the simulation is built from.
type Tuning struct {
	Block  *BlockSpec
	World  *WorldSpec
	Camera *CameraSpec
	Launch *LaunchSpec
}

func LoadTuning() (*Tuning, error) {
	block, err := LoadBlockSpec()
	if err != nil {
		return nil, err
	}
	world, err := LoadWorldSpec()
	if err != nil {
		return nil, err
	}
	camera, err := LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	launch, err := LoadLaunchSpec()
	if err != nil {
		return nil, err
	}
	return &Tuning{Block: block, World: world, Camera: camera, Launch: launch}, nil
}

// PhysicsConfig fills unset fields from physics.DefaultConfig.
func (s *WorldSpec) PhysicsConfig() physics.Config {
	cfg := physics.DefaultConfig()
	if s == nil {
		return cfg
	}
	if s.TerminalVelocity > 0 {
		cfg.TerminalVelocity = s.TerminalVelocity
	}
	if s.MaxSubSteps > 0 {
		cfg.MaxSubSteps = s.MaxSubSteps
	}
	if s.EdgeInset > 0 {
		cfg.EdgeInset = s.EdgeInset
	}
	if s.VerticalSkin > 0 {
		cfg.VerticalSkin = s.VerticalSkin
	}
	if s.HorizontalSkin > 0 {
		cfg.HorizontalSkin = s.HorizontalSkin
	}
	if s.BounceCapX > 0 {
		cfg.BounceCapX = s.BounceCapX
	}
	if s.SideWalls != nil {
		cfg.SideWalls = *s.SideWalls
	}
	cfg.StepMode = physics.ParseStepMode(s.StepMode)
	return cfg
}

func (s *CameraSpec) CameraConfig() sim.CameraConfig {
	cfg := sim.DefaultConfig().Camera
	if s == nil {
		return cfg
	}
	if s.ViewHeight > 0 {
		cfg.ViewHeight = s.ViewHeight
	}
	if s.Smoothing != nil {
		cfg.Smoothing = *s.Smoothing
	}
	if s.MaxY != nil {
		cfg.MaxY = *s.MaxY
	}
	return cfg
}

func (s *LaunchSpec) LaunchConfig() sim.LaunchConfig {
	if s == nil {
		return sim.DefaultLaunchConfig()
	}
	return sim.LaunchConfig{ScaleX: s.ScaleX, ScaleY: s.ScaleY, MaxVX: s.MaxVX}
}

func (s *LaunchSpec) RestConfig() sim.RestConfig {
	cfg := sim.DefaultConfig().Rest
	if s == nil {
		return cfg
	}
	if s.Rest.VX > 0 {
		cfg.VX = s.Rest.VX
	}
	if s.Rest.VY > 0 {
		cfg.VY = s.Rest.VY
	}
	if s.Rest.DwellMS >= 0 {
		cfg.Dwell = time.Duration(s.Rest.DwellMS) * time.Millisecond
	}
	return cfg
}

// BuildLauncher returns the script launcher when the spec names a script,
// otherwise the proportional one.
func (s *LaunchSpec) BuildLauncher() (sim.Launcher, error) {
	cfg := s.LaunchConfig()
	if s == nil || strings.TrimSpace(s.Script) == "" {
		return sim.NewProportionalLauncher(cfg), nil
	}
	l, err := BuildScriptLauncher(s.Script, cfg.MaxVX)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func BuildScriptLauncher(name string, maxVX float64) (*sim.ScriptLauncher, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return sim.NewScriptLauncher(name, src, maxVX)
}

// BuildBody creates the block at (x, y).
func (s *BlockSpec) BuildBody(x, y float64) (*physics.Body, error) {
	if s == nil {
		return nil, fmt.Errorf("prefabs: nil block spec")
	}
	b, err := physics.NewBody(x, y, s.Width, s.Height)
	if err != nil {
		return nil, fmt.Errorf("prefabs: build %s: %w", s.Name, err)
	}
	b.Elasticity = s.Elasticity
	b.Friction = s.Friction
	return b, nil
}

// SimTuning is the live-adjustable subset.
func (t *Tuning) SimTuning() sim.Tuning {
	return sim.Tuning{
		Gravity:       t.World.Gravity,
		AirResistance: t.World.AirResistance,
		Elasticity:    t.Block.Elasticity,
		Friction:      t.Block.Friction,
	}
}

// SimConfig builds the loop configuration. respawn comes from the level.
func (t *Tuning) SimConfig(respawn sim.Point) sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Camera = t.Camera.CameraConfig()
	cfg.Rest = t.Launch.RestConfig()
	cfg.Launch = t.Launch.LaunchConfig()
	cfg.Respawn = respawn
	if t.Launch != nil && t.Launch.MoveUpNudge > 0 {
		cfg.MoveUpNudge = t.Launch.MoveUpNudge
	}
	return cfg
}

// Apply pushes reloaded values into a running simulation.
func (t *Tuning) Apply(s *sim.Simulation) error {
	s.ApplyTuning(t.SimTuning())
	s.SetPhysicsConfig(t.World.PhysicsConfig())
	s.SetCamera(t.Camera.CameraConfig())
	s.SetRest(t.Launch.RestConfig())
	s.SetMoveUpNudge(t.SimConfig(sim.Point{}).MoveUpNudge)
	l, err := t.Launch.BuildLauncher()
	if err != nil {
		return err
	}
	s.SetLauncher(l)
	return nil
}
