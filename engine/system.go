package engine

// System is a per-frame update rule
// Update returns an error only for violated scene invariants; the frame is aborted
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update() error
}
