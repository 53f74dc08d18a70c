package engine

// spritePool is a LIFO stack of detached sprites. Reconciliation runs on a
// single goroutine, so there is no locking; acquire constructs through the
// factory when the stack is dry and never fails. The pool grows to the
// historical visibility peak and only lets go at Teardown.
type spritePool struct {
	factory SpriteFactory
	free    []LineSprite
	built   int
}

func newSpritePool(factory SpriteFactory, prewarm int) *spritePool {
	hint := prewarm
	if hint < 8 {
		hint = 8
	}
	p := &spritePool{
		factory: factory,
		free:    make([]LineSprite, 0, hint),
	}
	for i := 0; i < prewarm; i++ {
		p.free = append(p.free, factory.NewLineSprite())
		p.built++
	}
	return p
}

func (p *spritePool) acquire() LineSprite {
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return s
	}
	p.built++
	return p.factory.NewLineSprite()
}

func (p *spritePool) release(s LineSprite) {
	p.free = append(p.free, s)
}

func (p *spritePool) reset() {
	for i := range p.free {
		p.free[i] = nil
	}
	p.free = p.free[:0]
	p.built = 0
}

func (p *spritePool) freeCount() int {
	return len(p.free)
}

func (p *spritePool) builtCount() int {
	return p.built
}
