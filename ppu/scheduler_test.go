package ppu

import (
	"testing"

	"github.com/coalblack/gones/mappers"
)

func newTestScheduler() *Scheduler {
	regs := NewRegisters(NewMemory(&mappers.Dummy{}))
	return NewScheduler(regs)
}

func TestAdvanceCountsDotsAndWrapsLines(t *testing.T) {
	s := newTestScheduler()
	if res := s.Advance(340); res != CountUp {
		t.Fatalf("Advance(340) = %v, want CountUp", res)
	}
	if res := s.Advance(1); res != CountUp {
		t.Fatalf("Advance(1) = %v, want CountUp (line 1, not yet a multiple of 8)", res)
	}
	if s.Line != 1 || s.Dot != 0 {
		t.Errorf("Line=%d Dot=%d, want Line=1 Dot=0", s.Line, s.Dot)
	}
}

func TestAdvanceBuildsBackgroundRowEveryEighthLine(t *testing.T) {
	s := newTestScheduler()
	for s.Line != 8 {
		s.Advance(dotsPerScanline)
	}
	if len(s.Background) != tilesPerRow {
		t.Errorf("len(Background) = %d, want %d", len(s.Background), tilesPerRow)
	}
}

func TestAdvanceSignalsVBlankStart(t *testing.T) {
	s := newTestScheduler()
	var res Result
	for s.Line != vblankStartLine {
		res = s.Advance(dotsPerScanline)
	}
	if res != VBlankStart {
		t.Errorf("Advance() at line %d = %v, want VBlankStart", s.Line, res)
	}
}

func TestAdvanceSignalsFrameDone(t *testing.T) {
	s := newTestScheduler()
	var res Result
	for i := 0; i < scanlinesPerFrame; i++ {
		res = s.Advance(dotsPerScanline)
	}
	if res != FrameDone {
		t.Errorf("Advance() = %v, want FrameDone", res)
	}
	if s.Line != 0 {
		t.Errorf("Line = %d, want 0 after frame wrap", s.Line)
	}
}
