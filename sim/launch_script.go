package sim

import (
	"errors"
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var ErrBadLaunchResult = errors.New("sim: launch script must return {vx, vy} or undefined")

const launchDispatchScript = `
__out = launch(__gesture)
`

// ScriptLauncher runs a tengo script defining launch(g). g carries start_x,
// pointer_x, delta and facing ("left" or "right").
type ScriptLauncher struct {
	name     string
	compiled *tengo.Compiled
	maxVX    float64
	logger   *log.Logger
}

// NewScriptLauncher compiles src. name is only used in errors and logs.
func NewScriptLauncher(name string, src []byte, maxVX float64) (*ScriptLauncher, error) {
	full := string(src) + "\n" + launchDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__gesture", map[string]any{})
	_ = script.Add("__out", nil)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("sim: compile launch script %s: %w", name, err)
	}
	return &ScriptLauncher{name: name, compiled: compiled, maxVX: maxVX}, nil
}

// SetLogger sets where script errors are reported. nil uses the standard
// logger.
func (l *ScriptLauncher) SetLogger(logger *log.Logger) { l.logger = logger }

// Launch declines the gesture when the script fails.
func (l *ScriptLauncher) Launch(g Gesture) (Impulse, bool) {
	imp, ok, err := l.Eval(g)
	if err != nil {
		if l.logger != nil {
			l.logger.Printf("sim: launch script %s: %v", l.name, err)
		} else {
			log.Printf("sim: launch script %s: %v", l.name, err)
		}
		return Impulse{}, false
	}
	return imp, ok
}

// Eval runs the script once for g.
func (l *ScriptLauncher) Eval(g Gesture) (Impulse, bool, error) {
	if l == nil || l.compiled == nil {
		return Impulse{}, false, fmt.Errorf("sim: nil launch script")
	}
	if err := l.compiled.Set("__gesture", gestureObject(g)); err != nil {
		return Impulse{}, false, err
	}
	if err := l.compiled.Set("__out", nil); err != nil {
		return Impulse{}, false, err
	}
	if err := l.compiled.Run(); err != nil {
		return Impulse{}, false, err
	}

	out := l.compiled.Get("__out")
	if out.IsUndefined() {
		return Impulse{}, false, nil
	}
	var fields map[string]tengo.Object
	switch v := out.Object().(type) {
	case *tengo.Map:
		fields = v.Value
	case *tengo.ImmutableMap:
		fields = v.Value
	default:
		return Impulse{}, false, ErrBadLaunchResult
	}
	vx, okX := objectAsFloat(fields["vx"])
	vy, okY := objectAsFloat(fields["vy"])
	if !okX || !okY {
		return Impulse{}, false, ErrBadLaunchResult
	}
	return Impulse{VX: vx, VY: vy}.capped(l.maxVX), true, nil
}

func gestureObject(g Gesture) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"start_x":   &tengo.Float{Value: g.StartX},
		"pointer_x": &tengo.Float{Value: g.PointerX},
		"delta":     &tengo.Float{Value: g.Delta()},
		"facing":    &tengo.String{Value: g.Facing.String()},
	}}
}

func objectAsFloat(obj tengo.Object) (float64, bool) {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	default:
		return 0, false
	}
}
