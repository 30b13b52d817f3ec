package main

import (
	"fmt"
	"strconv"
	"strings"
)

// gesture is one scripted aim: press at Start, drag to End.
type gesture struct {
	Tick       int
	Start, End float64
}

type plan []gesture

// parsePlan reads "tick:start:end" entries separated by commas.
func parsePlan(s string) (plan, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var p plan
	for _, entry := range strings.Split(s, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("replay: launch %q: want tick:start:end", entry)
		}
		tick, err := strconv.Atoi(parts[0])
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("replay: launch %q: bad tick", entry)
		}
		start, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("replay: launch %q: %w", entry, err)
		}
		end, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("replay: launch %q: %w", entry, err)
		}
		p = append(p, gesture{Tick: tick, Start: start, End: end})
	}
	return p, nil
}

func (p plan) at(tick int) []gesture {
	var out []gesture
	for _, g := range p {
		if g.Tick == tick {
			out = append(out, g)
		}
	}
	return out
}
