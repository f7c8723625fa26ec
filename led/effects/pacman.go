package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-led/led/core"
)

const (
	defaultPacManDX         = 0.25
	defaultPacManDY         = 0.0
	defaultPacManRadius     = 3.0
	defaultPacManChompSpeed = 1.0
	pacManMouthMaxAngle     = math.Pi / 2.2
	pacManEdgeBleed         = 0.6

	defaultPelletSpacing    = 3
	defaultPelletBrightness = 0.8

	defaultGhostSpeed = 0.15
	ghostHeadRadius   = 2
	ghostHalfWidth    = 2
	ghostBodyDepth    = 3
	ghostBrightness   = 0.6
	ghostExitMargin   = 4
)

// PacManOption mutates construction parameters.
type PacManOption func(*pacManConfig) error

type pacManConfig struct {
	dx         float64
	dy         float64
	radius     float64
	chompSpeed float64
	clip       bool
}

// WithPacManVelocity sets the per-frame movement vector. The mouth faces
// the direction of travel.
func WithPacManVelocity(dx, dy float64) PacManOption {
	return func(cfg *pacManConfig) error {
		if dx == 0 && dy == 0 {
			return fmt.Errorf("pacman velocity must be non-zero")
		}
		cfg.dx = dx
		cfg.dy = dy
		return nil
	}
}

// WithPacManRadius sets the body radius in pixels.
func WithPacManRadius(r float64) PacManOption {
	return func(cfg *pacManConfig) error {
		if r <= 0 || math.IsInf(r, 0) || math.IsNaN(r) {
			return fmt.Errorf("pacman radius must be a positive finite value: %v", r)
		}
		cfg.radius = r
		return nil
	}
}

// WithPacManChompSpeed sets the mouth phase advance per frame in radians.
func WithPacManChompSpeed(speed float64) PacManOption {
	return func(cfg *pacManConfig) error {
		if speed <= 0 || math.IsInf(speed, 0) || math.IsNaN(speed) {
			return fmt.Errorf("pacman chomp speed must be a positive finite value: %v", speed)
		}
		cfg.chompSpeed = speed
		return nil
	}
}

// WithPacManClip makes the effect finite: instead of wrapping at the matrix
// edges, the character completes once its center leaves the matrix.
func WithPacManClip() PacManOption {
	return func(cfg *pacManConfig) error {
		cfg.clip = true
		return nil
	}
}

// PacMan is a chomping disc that travels across the matrix. Each frame the
// center advances by the velocity vector and the mouth opens and closes on
// a sinusoidal phase, cutting a wedge out of the disc toward the direction
// of travel. Brightness falls off linearly from the center. The effect
// wraps and runs forever by default; with clip it finishes at the edge.
type PacMan struct {
	geom       core.Geometry
	startX     float64
	startY     float64
	dx         float64
	dy         float64
	radius     float64
	chompSpeed float64
	clip       bool

	x     float64
	y     float64
	phase float64
	done  bool
}

// NewPacMan creates a pac-man centered at (x, y) on the given geometry.
func NewPacMan(geom core.Geometry, x, y float64, opts ...PacManOption) (*PacMan, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := pacManConfig{
		dx:         defaultPacManDX,
		dy:         defaultPacManDY,
		radius:     defaultPacManRadius,
		chompSpeed: defaultPacManChompSpeed,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	p := &PacMan{
		geom:       geom,
		startX:     x,
		startY:     y,
		dx:         cfg.dx,
		dy:         cfg.dy,
		radius:     cfg.radius,
		chompSpeed: cfg.chompSpeed,
		clip:       cfg.clip,
	}
	p.Reset()
	return p, nil
}

// Reset restores the start position and closes the mouth.
func (p *PacMan) Reset() {
	p.x = p.startX
	p.y = p.startY
	p.phase = 0
	p.done = false
}

// X returns the current center x coordinate.
func (p *PacMan) X() float64 {
	return p.x
}

// Y returns the current center y coordinate.
func (p *PacMan) Y() float64 {
	return p.y
}

// Step advances position and mouth phase and renders the disc.
func (p *PacMan) Step() core.Frame {
	if p.done {
		return nil
	}

	w := float64(p.geom.Width)
	h := float64(p.geom.Height)
	p.x += p.dx
	p.y += p.dy
	if p.clip {
		if p.x < 0 || p.x >= w || p.y < 0 || p.y >= h {
			p.done = true
			return nil
		}
	} else {
		p.x = math.Mod(p.x, w)
		if p.x < 0 {
			p.x += w
		}
		p.y = math.Mod(p.y, h)
		if p.y < 0 {
			p.y += h
		}
	}

	p.phase += p.chompSpeed
	mouthOpen := (math.Sin(p.phase) + 1) / 2
	mouthAngle := mouthOpen * pacManMouthMaxAngle
	dirAngle := math.Atan2(p.dy, p.dx)

	xmin := int(p.x - p.radius - 1)
	xmax := int(p.x + p.radius + 1)
	ymin := int(p.y - p.radius - 1)
	ymax := int(p.y + p.radius + 1)

	var frame core.Frame
	for iy := ymin; iy <= ymax; iy++ {
		for ix := xmin; ix <= xmax; ix++ {
			if !p.geom.Contains(ix, iy) {
				continue
			}
			cx := float64(ix) + 0.5 - p.x
			cy := float64(iy) + 0.5 - p.y
			dist := mathDist(cx, cy)
			if dist > p.radius {
				continue
			}
			// Cells inside the mouth wedge stay dark. The relative angle
			// is folded into [-pi, pi) around the travel direction.
			rel := math.Mod(math.Atan2(cy, cx)-dirAngle+3*math.Pi, 2*math.Pi) - math.Pi
			if math.Abs(rel) < mouthAngle {
				continue
			}
			frame = append(frame, core.Pixel{
				X: ix,
				Y: iy,
				B: p.radius - dist + pacManEdgeBleed,
			})
		}
	}
	return frame
}

// Done reports true only for the clipped variant, once the center has left
// the matrix.
func (p *PacMan) Done() bool {
	return p.done
}

// Looping reports true for the wrapping variant.
func (p *PacMan) Looping() bool {
	return !p.clip
}

// PelletRowOption mutates construction parameters.
type PelletRowOption func(*pelletRowConfig) error

type pelletRowConfig struct {
	spacing    int
	brightness float64
}

// WithPelletSpacing sets the horizontal distance between pellets.
func WithPelletSpacing(n int) PelletRowOption {
	return func(cfg *pelletRowConfig) error {
		if n <= 0 {
			return fmt.Errorf("pellet spacing must be > 0: %d", n)
		}
		cfg.spacing = n
		return nil
	}
}

// WithPelletBrightness sets the brightness of each pellet.
func WithPelletBrightness(b float64) PelletRowOption {
	return func(cfg *pelletRowConfig) error {
		if b <= 0 || math.IsInf(b, 0) || math.IsNaN(b) {
			return fmt.Errorf("pellet brightness must be a positive finite value: %v", b)
		}
		cfg.brightness = b
		return nil
	}
}

// PelletRow is a static row of evenly spaced pellets. Pellets disappear
// when eaten via Eat and come back on Reset. The row renders forever and
// never completes on its own.
type PelletRow struct {
	geom       core.Geometry
	y          int
	spacing    int
	brightness float64

	pellets []bool
}

// NewPelletRow creates a pellet row at matrix row y.
func NewPelletRow(geom core.Geometry, y int, opts ...PelletRowOption) (*PelletRow, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := pelletRowConfig{
		spacing:    defaultPelletSpacing,
		brightness: defaultPelletBrightness,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	r := &PelletRow{
		geom:       geom,
		y:          y,
		spacing:    cfg.spacing,
		brightness: cfg.brightness,
	}
	r.Reset()
	return r, nil
}

// Reset restores the full pellet row.
func (r *PelletRow) Reset() {
	r.pellets = make([]bool, r.geom.Width)
	for x := 0; x < r.geom.Width; x += r.spacing {
		r.pellets[x] = true
	}
}

// Eat removes the pellet at the cell under x, if one remains.
func (r *PelletRow) Eat(x float64) {
	ix := int(x)
	if ix >= 0 && ix < len(r.pellets) {
		r.pellets[ix] = false
	}
}

// Remaining counts the pellets not yet eaten.
func (r *PelletRow) Remaining() int {
	n := 0
	for _, lit := range r.pellets {
		if lit {
			n++
		}
	}
	return n
}

// Step returns the remaining pellets in x order.
func (r *PelletRow) Step() core.Frame {
	frame := make(core.Frame, 0, len(r.pellets)/r.spacing+1)
	for x, lit := range r.pellets {
		if lit {
			frame = append(frame, core.Pixel{X: x, Y: r.y, B: r.brightness})
		}
	}
	return frame
}

// Done always reports false; the row only empties, it never completes.
func (r *PelletRow) Done() bool {
	return false
}

// Looping reports true.
func (r *PelletRow) Looping() bool {
	return true
}

// GhostOption mutates construction parameters.
type GhostOption func(*ghostConfig) error

type ghostConfig struct {
	speed float64
}

// WithGhostSpeed sets the rightward speed in pixels per frame.
func WithGhostSpeed(speed float64) GhostOption {
	return func(cfg *ghostConfig) error {
		if speed <= 0 || math.IsInf(speed, 0) || math.IsNaN(speed) {
			return fmt.Errorf("ghost speed must be a positive finite value: %v", speed)
		}
		cfg.speed = speed
		return nil
	}
}

// Ghost is a finite sprite that drifts rightward across the matrix: a
// semicircular head over a square body with an alternating bumpy skirt.
// It completes once the center has moved past the right edge.
type Ghost struct {
	geom   core.Geometry
	startX float64
	y      float64
	speed  float64

	x     float64
	phase int
	done  bool
}

// NewGhost creates a ghost centered at (x, y) on the given geometry. A
// negative x lets the sprite enter from outside the left edge.
func NewGhost(geom core.Geometry, x, y float64, opts ...GhostOption) (*Ghost, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := ghostConfig{speed: defaultGhostSpeed}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	g := &Ghost{
		geom:   geom,
		startX: x,
		y:      y,
		speed:  cfg.speed,
	}
	g.Reset()
	return g, nil
}

// Reset restores the start position and skirt phase.
func (g *Ghost) Reset() {
	g.x = g.startX
	g.phase = 0
	g.done = false
}

// Step advances the sprite one frame and renders it.
func (g *Ghost) Step() core.Frame {
	if g.done {
		return nil
	}

	g.x += g.speed
	g.phase++
	if g.x >= float64(g.geom.Width+ghostExitMargin) {
		g.done = true
		return nil
	}

	cx := int(math.Round(g.x))
	cy := int(math.Round(g.y))

	var frame core.Frame
	emit := func(x, y int) {
		if g.geom.Contains(x, y) {
			frame = append(frame, core.Pixel{X: x, Y: y, B: ghostBrightness})
		}
	}

	// Semicircular head.
	for dy := -ghostHeadRadius; dy <= 0; dy++ {
		for dx := -ghostHalfWidth; dx <= ghostHalfWidth; dx++ {
			if dx*dx+dy*dy <= ghostHeadRadius*ghostHeadRadius {
				emit(cx+dx, cy+dy)
			}
		}
	}
	// Square body below the head.
	for dy := 1; dy <= ghostBodyDepth; dy++ {
		for dx := -ghostHalfWidth; dx <= ghostHalfWidth; dx++ {
			emit(cx+dx, cy+dy)
		}
	}
	// Bumpy skirt alternating with the step phase.
	skirtY := cy + ghostBodyDepth + 1
	for i, dx := range [3]int{-ghostHalfWidth, 0, ghostHalfWidth} {
		if (i+g.phase)%2 == 0 {
			emit(cx+dx, skirtY)
		}
	}
	return frame
}

// Done reports whether the sprite has left the matrix.
func (g *Ghost) Done() bool {
	return g.done
}

// Looping reports false.
func (g *Ghost) Looping() bool {
	return false
}

// PacManScene coordinates a pellet row, a pac-man, and a trailing ghost:
// each frame the pac-man moves first, eats the pellet under it, and the
// three sprites render in back-to-front order. The scene completes with
// the pac-man; a wrapping pac-man makes the scene continuous.
type PacManScene struct {
	pellets *PelletRow
	pacman  *PacMan
	ghost   *Ghost
}

// NewPacManScene wires the three sprites into one effect.
func NewPacManScene(pellets *PelletRow, pacman *PacMan, ghost *Ghost) (*PacManScene, error) {
	if pellets == nil || pacman == nil || ghost == nil {
		return nil, fmt.Errorf("pacman scene requires pellets, pacman, and ghost")
	}
	return &PacManScene{pellets: pellets, pacman: pacman, ghost: ghost}, nil
}

// Reset restarts all three sprites, restoring eaten pellets.
func (s *PacManScene) Reset() {
	s.pellets.Reset()
	s.pacman.Reset()
	s.ghost.Reset()
}

// Step advances the scene one frame.
func (s *PacManScene) Step() core.Frame {
	if s.pacman.Done() {
		return nil
	}

	pac := s.pacman.Step()
	if s.pacman.Done() {
		return nil
	}
	s.pellets.Eat(s.pacman.X())

	var frame core.Frame
	frame = append(frame, s.pellets.Step()...)
	frame = append(frame, s.ghost.Step()...)
	frame = append(frame, pac...)
	return frame
}

// Done tracks the pac-man's completion.
func (s *PacManScene) Done() bool {
	return s.pacman.Done()
}

// Looping reports true when the pac-man wraps.
func (s *PacManScene) Looping() bool {
	return s.pacman.Looping()
}
