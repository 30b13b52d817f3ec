package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

const (
	BlockFile  = "block.yaml"
	WorldFile  = "world.yaml"
	CameraFile = "camera.yaml"
	LaunchFile = "launch.yaml"
)

// BlockSpec sizes the launched block and sets its bounce material.
type BlockSpec struct {
	Name       string  `yaml:"name"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Elasticity float64 `yaml:"elasticity"`
	Friction   float64 `yaml:"friction"`
}

func LoadBlockSpec() (*BlockSpec, error) {
	spec, err := LoadSpec[BlockSpec](BlockFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type WorldSpec struct {
	Gravity          float64 `yaml:"gravity"`
	AirResistance    float64 `yaml:"air_resistance"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	StepMode         string  `yaml:"step_mode"`
	MaxSubSteps      int     `yaml:"max_sub_steps"`
	EdgeInset        float64 `yaml:"edge_inset"`
	VerticalSkin     float64 `yaml:"vertical_skin"`
	HorizontalSkin   float64 `yaml:"horizontal_skin"`
	BounceCapX       float64 `yaml:"bounce_cap_x"`
	SideWalls        *bool   `yaml:"side_walls"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CameraSpec leaves Smoothing and MaxY nil when the file omits them; 0 is a
// valid value for both.
type CameraSpec struct {
	ViewHeight float64  `yaml:"view_height"`
	Smoothing  *float64 `yaml:"smoothing"`
	MaxY       *float64 `yaml:"max_y"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type RestSpec struct {
	VX      float64 `yaml:"vx"`
	VY      float64 `yaml:"vy"`
	DwellMS int     `yaml:"dwell_ms"`
}

type LaunchSpec struct {
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
	MaxVX  float64 `yaml:"max_vx"`
	// Script names a tengo script under prefabs/scripts. Empty uses the
	// built-in proportional mapping.
	Script      string   `yaml:"script"`
	MoveUpNudge float64  `yaml:"move_up_nudge"`
	Rest        RestSpec `yaml:"rest"`
}

func LoadLaunchSpec() (*LaunchSpec, error) {
	spec, err := LoadSpec[LaunchSpec](LaunchFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
