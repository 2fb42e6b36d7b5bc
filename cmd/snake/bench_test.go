package main

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
)

func benchConfig(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = seed
	rc.Map = "AROUND"
	return rc
}

func TestBenchOneEnds(t *testing.T) {
	theme, err := render.Themes.Get("ascii")
	if err != nil {
		t.Fatalf("Themes.Get() error = %v", err)
	}

	res, err := benchOne(benchConfig(3), theme, nil, 500)
	if err != nil {
		t.Fatalf("benchOne() error = %v", err)
	}

	r := res.Run
	switch r.Outcome {
	case outcomeCollision, outcomeStuck:
		if r.Length < 30 {
			t.Errorf("Outcome = %q with a %d-cell snake, expected a short snake to keep moving", r.Outcome, r.Length)
		}
	case outcomeLimit:
	default:
		t.Errorf("Outcome = %q, expected collision, stuck or limit", r.Outcome)
	}
	if res.Frames > 500 {
		t.Errorf("Frames = %d, expected at most 500", res.Frames)
	}
	if r.Outcome == outcomeLimit && res.Frames != 500 {
		t.Errorf("Frames = %d at the limit, expected 500", res.Frames)
	}
	if r.Map != "AROUND" || r.Seed != 3 {
		t.Errorf("Run = %+v, expected map AROUND and seed 3", r)
	}
	if res.FullRedraws < 1 {
		t.Errorf("FullRedraws = %d, expected the first frame to be full", res.FullRedraws)
	}
}

func TestBenchOneIsDeterministic(t *testing.T) {
	theme, err := render.Themes.Get("unicode")
	if err != nil {
		t.Fatalf("Themes.Get() error = %v", err)
	}

	a, err := benchOne(benchConfig(11), theme, nil, 300)
	if err != nil {
		t.Fatalf("benchOne() error = %v", err)
	}
	b, err := benchOne(benchConfig(11), theme, nil, 300)
	if err != nil {
		t.Fatalf("benchOne() error = %v", err)
	}

	if a.Run != b.Run || a.Frames != b.Frames {
		t.Errorf("same seed gave %+v and %+v", a.Run, b.Run)
	}
}
