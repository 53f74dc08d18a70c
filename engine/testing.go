package engine

// StubSprite records sprite calls for tests and headless runs
type StubSprite struct {
	Track   float64
	Current float64
	Visible bool
	Shows   int
	Hides   int
	Repos   int
}

func (s *StubSprite) Show(track float64) {
	s.Track = track
	s.Visible = true
	s.Shows++
}

func (s *StubSprite) Reposition(current float64) {
	s.Current = current
	s.Repos++
}

func (s *StubSprite) Hide() {
	s.Visible = false
	s.Hides++
}

// CountingFactory constructs StubSprites and keeps hold of them so callers
// can assert on construction counts and per-sprite call history
type CountingFactory struct {
	Constructed int
	Sprites     []*StubSprite
}

func (f *CountingFactory) NewLineSprite() LineSprite {
	s := &StubSprite{}
	f.Constructed++
	f.Sprites = append(f.Sprites, s)
	return s
}
