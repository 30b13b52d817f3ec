package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/blocklaunch/levels"
	"github.com/milk9111/blocklaunch/physics"
	"github.com/milk9111/blocklaunch/prefabs"
	"github.com/milk9111/blocklaunch/sim"
)

type gameOptions struct {
	Level        string
	Debug        bool
	Discrete     bool
	LaunchScript string
	Watch        bool
}

type Game struct {
	frames int
	debug  bool
	opts   gameOptions

	level   *levels.Level
	tuning  *prefabs.Tuning
	sim     *sim.Simulation
	input   *Input
	watcher *prefabs.Watcher
}

func NewGame(opts gameOptions) (*Game, error) {
	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return nil, err
	}
	tuning, err := loadTuning(opts)
	if err != nil {
		return nil, err
	}

	world, err := lvl.World()
	if err != nil {
		return nil, err
	}
	world.SetGravity(tuning.World.Gravity)
	world.SetAirResistance(tuning.World.AirResistance)

	body, err := tuning.Block.BuildBody(lvl.Spawn.X, lvl.Spawn.Y)
	if err != nil {
		return nil, err
	}

	launcher, err := tuning.Launch.BuildLauncher()
	if err != nil {
		return nil, err
	}

	respawn := lvl.RespawnPoint()
	s, err := sim.New(world, body, tuning.World.PhysicsConfig(), tuning.SimConfig(sim.Point{X: respawn.X, Y: respawn.Y}),
		sim.WithLauncher(launcher),
		sim.WithLogger(log.Default(), opts.Debug),
	)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:  opts.Debug,
		opts:   opts,
		level:  lvl,
		tuning: tuning,
		sim:    s,
		input:  NewInput(),
	}

	if opts.Watch {
		if dirs := prefabs.DiskDirs(); len(dirs) > 0 {
			w, err := prefabs.NewWatcher(dirs...)
			if err != nil {
				log.Printf("prefabs: watch disabled: %v", err)
			} else {
				g.watcher = w
			}
		}
	}

	log.Printf("loaded level %s (%d walls, %d goals)", lvl.Name, len(lvl.Walls), lvl.Goals())
	return g, nil
}

// loadTuning reads the prefabs and applies command line overrides.
func loadTuning(opts gameOptions) (*prefabs.Tuning, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}
	if opts.Discrete {
		tuning.World.StepMode = physics.StepDiscrete.String()
	}
	if opts.LaunchScript != "" {
		tuning.Launch.Script = opts.LaunchScript
	}
	return tuning, nil
}

func (g *Game) TickRate() int { return g.tuning.SimConfig(sim.Point{}).TickRate }

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.reloadChanged()
	if g.input.Update(g.sim) {
		g.sim.Stop()
	}

	if err := g.sim.Tick(); err != nil {
		if errors.Is(err, sim.ErrStopped) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// reloadChanged applies prefab edits picked up by the watcher. A bad edit
// keeps the previous tuning.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}

	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	for _, name := range changed {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		log.Printf("prefabs: %s changed", filepath.Base(name))
	}

	tuning, err := loadTuning(g.opts)
	if err != nil {
		log.Printf("prefabs: reload: %v", err)
		return
	}
	if err := tuning.Apply(g.sim); err != nil {
		log.Printf("prefabs: reload: %v", err)
		return
	}
	g.tuning = tuning
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.sim)
	drawBody(screen, g.sim)
	if g.sim.IndicatorVisible() {
		drawIndicator(screen, g.sim, g.input.PointerX())
	}

	msg := fmt.Sprintf("Frames: %d    FPS: %.2f    Goals: %d", g.frames, ebiten.ActualFPS(), g.sim.Goals())
	if g.debug {
		b := g.sim.Body()
		last := g.sim.LastStep()
		msg += fmt.Sprintf("\nstate=%s mode=%s\npos=(%.2f, %.2f) vel=(%.2f, %.2f)\nsteps=%d hit=%s",
			g.sim.State(), g.sim.StepMode(), b.X, b.Y, b.VX, b.VY, last.Steps, last.Contact.Dirs)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.sim.World().Width()), int(g.sim.Camera().ViewHeight())
}
