package ppu

const (
	dotsPerScanline    = 341
	scanlinesPerFrame  = 262
	visibleScanlines   = 240
	vblankStartLine    = 241
	tilesPerRow        = 32
)

// Result reports what, if anything, of note happened during an
// Advance call.
type Result uint8

const (
	CountUp Result = iota
	BackgroundLineDone
	VBlankStart
	FrameDone
)

// Scheduler drives the PPU's dot/scanline clock and builds background
// tile rows as the beam crosses them. It does not render sprites or
// implement fine horizontal/vertical scrolling: Background accumulates
// the tiles built so far, in raster order. The Scheduler never empties
// it; the caller does so after each FrameDone.
type Scheduler struct {
	Dot, Line int

	regs *Registers

	Background []Tile
}

func NewScheduler(regs *Registers) *Scheduler {
	return &Scheduler{regs: regs}
}

// Advance steps the beam forward n dots, building any background tile
// rows it crosses and reporting the most significant event that
// occurred.
func (s *Scheduler) Advance(n int) Result {
	s.Dot += n
	res := CountUp

	for s.Dot >= dotsPerScanline {
		s.Dot -= dotsPerScanline
		s.Line++

		if s.Line >= 1 && s.Line <= visibleScanlines && s.Line%8 == 0 {
			s.buildRow(s.Line)
			if res < BackgroundLineDone {
				res = BackgroundLineDone
			}
		}

		if s.Line == vblankStartLine {
			s.regs.EnterVBlank()
			if res < VBlankStart {
				res = VBlankStart
			}
		}

		if s.Line == scanlinesPerFrame {
			s.Line = 0
			s.regs.ExitVBlank()
			res = FrameDone
		}
	}
	return res
}

// buildRow composes the 32 background tiles covering pixel rows
// [line-8, line) from the base nametable PPUCTRL names.
func (s *Scheduler) buildRow(line int) {
	gridY := line/8 - 1
	for gridX := 0; gridX < tilesPerRow; gridX++ {
		s.Background = append(s.Background, s.regs.BuildTile(gridX, gridY))
	}
}
