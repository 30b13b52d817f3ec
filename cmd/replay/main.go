package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/blocklaunch/levels"
	"github.com/milk9111/blocklaunch/physics"
	"github.com/milk9111/blocklaunch/prefabs"
	"github.com/milk9111/blocklaunch/sim"
)

func main() {
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional) or a path")
	ticks := flag.Int("ticks", 600, "number of ticks to run")
	every := flag.Int("every", 30, "log the body every N ticks (0 logs contacts only)")
	launches := flag.String("launch", "", "comma separated tick:start:end aim gestures, e.g. 60:380:440")
	discrete := flag.Bool("discrete", false, "integrate each tick in one step")
	script := flag.String("launch-script", "", "tengo launch script in prefabs/scripts")
	debug := flag.Bool("debug", false, "log state transitions")
	flag.Parse()

	plan, err := parsePlan(*launches)
	if err != nil {
		log.Fatal(err)
	}

	s, err := build(*levelName, *discrete, *script, *debug, *every)
	if err != nil {
		log.Fatal(err)
	}

	for tick := 0; tick < *ticks; tick++ {
		for _, g := range plan.at(tick) {
			s.AimStart(g.Start)
			s.AimUpdate(g.End)
		}
		if err := s.Tick(); err != nil {
			log.Fatal(err)
		}
	}

	b := s.Body()
	fmt.Fprintf(os.Stdout, "final tick=%d pos=(%.3f, %.3f) vel=(%.3f, %.3f) state=%s goals=%d\n",
		s.Ticks(), b.X, b.Y, b.VX, b.VY, s.State(), s.Goals())
}

func build(levelName string, discrete bool, script string, debug bool, every int) (*sim.Simulation, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}
	if discrete {
		tuning.World.StepMode = physics.StepDiscrete.String()
	}
	if script != "" {
		tuning.Launch.Script = script
	}

	world, err := lvl.World()
	if err != nil {
		return nil, err
	}
	body, err := tuning.Block.BuildBody(lvl.Spawn.X, lvl.Spawn.Y)
	if err != nil {
		return nil, err
	}
	launcher, err := tuning.Launch.BuildLauncher()
	if err != nil {
		return nil, err
	}

	respawn := lvl.RespawnPoint()
	logger := log.New(os.Stderr, "", log.Lmicroseconds)
	s, err := sim.New(world, body, tuning.World.PhysicsConfig(), tuning.SimConfig(sim.Point{X: respawn.X, Y: respawn.Y}),
		sim.WithLauncher(launcher),
		sim.WithLogger(logger, debug),
		sim.WithSystems(&traceSystem{logger: logger, every: every}),
	)
	if err != nil {
		return nil, err
	}
	s.ApplyTuning(tuning.SimTuning())
	logger.Printf("replay: level %s, %s stepping", lvl.Name, s.StepMode())
	return s, nil
}

// traceSystem logs the body at a fixed interval and on every contact.
type traceSystem struct {
	logger *log.Logger
	every  int
}

func (t *traceSystem) Update(s *sim.Simulation) {
	tick := int(s.Ticks()) + 1
	last := s.LastStep()
	periodic := t.every > 0 && tick%t.every == 0
	if !periodic && !last.Contact.Collided() {
		return
	}
	b := s.Body()
	t.logger.Printf("tick=%d pos=(%.3f, %.3f) vel=(%.3f, %.3f) steps=%d hit=%s state=%s",
		tick, b.X, b.Y, b.VX, b.VY, last.Steps, last.Contact.Dirs, s.State())
}
