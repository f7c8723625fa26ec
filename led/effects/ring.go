package effects

// pointRing is a fixed-capacity trail buffer. Pushing beyond capacity
// evicts the oldest entry, keeping trail memory bounded across frames.
type pointRing struct {
	pts   [][2]int
	head  int
	count int
}

func newPointRing(capacity int) *pointRing {
	return &pointRing{pts: make([][2]int, capacity)}
}

// Push records a new newest point.
func (r *pointRing) Push(x, y int) {
	r.head = (r.head + 1) % len(r.pts)
	r.pts[r.head] = [2]int{x, y}
	if r.count < len(r.pts) {
		r.count++
	}
}

// At returns the i-th newest point; At(0) is the most recent push.
func (r *pointRing) At(i int) (x, y int) {
	idx := (r.head - i + len(r.pts)) % len(r.pts)
	return r.pts[idx][0], r.pts[idx][1]
}

// Len returns the number of stored points.
func (r *pointRing) Len() int {
	return r.count
}

// Clear drops all stored points.
func (r *pointRing) Clear() {
	r.head = 0
	r.count = 0
}
