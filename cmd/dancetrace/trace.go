package main

import (
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/dancevis"
)

type trace struct {
	Scenario string  `yaml:"scenario"`
	StepMS   float64 `yaml:"step_ms"`
	Frames   []frame `yaml:"frames"`
}

type frame struct {
	TimeMS  float64       `yaml:"time_ms"`
	Dancers []dancerTrace `yaml:"dancers"`
}

type dancerTrace struct {
	ID      uint32  `yaml:"id"`
	Name    string  `yaml:"name"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"`
	State   string  `yaml:"state"`
}

func runTrace(w io.Writer, opts options, logger *zap.Logger) error {
	sc, ok := scenarios[opts.scenario]
	if !ok {
		return fmt.Errorf("unknown scenario %q (have %v)", opts.scenario, scenarioNames())
	}
	if opts.step <= 0 {
		return fmt.Errorf("step must be positive, got %v", opts.step)
	}
	if opts.every < 1 {
		return fmt.Errorf("every must be at least 1, got %d", opts.every)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	stage, err := dancevis.NewStage(dancevis.StageConfig{Logger: logger, Debug: opts.verbose})
	if err != nil {
		return err
	}
	if err := sc.build(stage); err != nil {
		return fmt.Errorf("building %s: %w", opts.scenario, err)
	}
	logger.Info("running scenario",
		zap.String("scenario", opts.scenario),
		zap.Duration("duration", opts.duration),
		zap.Duration("step", opts.step))

	tr := simulate(stage, opts)
	tr.Scenario = opts.scenario

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tr); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return enc.Close()
}

// simulate ticks stage from 0 to opts.duration inclusive and records every
// opts.every-th tick plus the last one.
func simulate(stage *dancevis.Stage, opts options) trace {
	step := dancevis.FromDuration(opts.step)
	n := int(opts.duration / opts.step)
	tr := trace{StepMS: step.InMilliseconds()}
	var states []dancevis.DancerState
	for i := 0; i <= n; i++ {
		now := dancevis.Milliseconds(float64(i) * step.InMilliseconds())
		stage.TickAt(now)
		if i%opts.every != 0 && i != n {
			continue
		}
		states = stage.AppendSnapshot(states[:0])
		f := frame{TimeMS: now.InMilliseconds(), Dancers: make([]dancerTrace, len(states))}
		for j, s := range states {
			f.Dancers[j] = dancerTrace{
				ID:      s.ID,
				Name:    s.Name,
				X:       round2(s.Position.X),
				Y:       round2(s.Position.Y),
				Heading: round2(dancevis.RadiansToDegrees(dancevis.NormalizeAngle(s.Orientation.InRadians()))),
				State:   s.State.String(),
			}
		}
		tr.Frames = append(tr.Frames, f)
	}
	return tr
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
