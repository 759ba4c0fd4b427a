package engine

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// ResourceStore is a thread-safe container for global game resources
// Systems reach shared data (time, input, arena) without coupling to GameContext
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its type
// Pointer types are recommended so systems observe in-place updates
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Used for core resources that are registered before any system is built
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("Required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// === World Resources ===

// TimeResource is refreshed by GameContext at the start of every frame
type TimeResource struct {
	// Now is the wall-clock time sampled for this frame
	Now time.Time

	// DeltaTime is the duration since the previous frame, zero on the first
	DeltaTime time.Duration

	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with system reads
func (tr *TimeResource) Update(now time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.Now = now
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// DeltaSeconds returns the frame delta as float seconds for integration
func (tr *TimeResource) DeltaSeconds() float64 {
	return tr.DeltaTime.Seconds()
}

// InputResource holds the key snapshot for the current frame
type InputResource struct {
	Keys input.KeyState
}

// Update must be called under world lock
func (ir *InputResource) Update(keys input.KeyState) {
	ir.Keys = keys
}

// ArenaResource holds the arena extents, centered on the origin
type ArenaResource struct {
	Width  float64
	Height float64
}

func (a *ArenaResource) HalfWidth() float64  { return a.Width / 2 }
func (a *ArenaResource) HalfHeight() float64 { return a.Height / 2 }

// WallBounceMode selects how WallBounce reflects velocity
type WallBounceMode uint8

const (
	// WallBounceLiteral multiplies velocity by (-1,0) or (0,-1); the other axis is zeroed
	WallBounceLiteral WallBounceMode = iota
	// WallBounceReflect negates the crossing axis only
	WallBounceReflect
)

// ParseWallBounceMode maps the configuration name to a mode
func ParseWallBounceMode(name string) (WallBounceMode, error) {
	switch name {
	case parameter.WallBounceLiteral:
		return WallBounceLiteral, nil
	case parameter.WallBounceReflect:
		return WallBounceReflect, nil
	}
	return 0, fmt.Errorf("unknown wall bounce mode %q", name)
}

// PhysicsResource holds tunables read by the update rules
type PhysicsResource struct {
	PaddleSpeed        float64
	MomentumMultiplier float64
	WallBounce         WallBounceMode
}

// Resource holds cached pointers to singleton resources
// Populated once per system to avoid map lookups in the frame path
type Resource struct {
	Time    *TimeResource
	Input   *InputResource
	Arena   *ArenaResource
	Physics *PhysicsResource
	Status  *status.Registry
}

// GetResources populates Resource from the world's resource store
// Pointers remain valid for the world lifetime
func GetResources(w *World) Resource {
	return Resource{
		Time:    MustGetResource[*TimeResource](w.Resources),
		Input:   MustGetResource[*InputResource](w.Resources),
		Arena:   MustGetResource[*ArenaResource](w.Resources),
		Physics: MustGetResource[*PhysicsResource](w.Resources),
		Status:  MustGetResource[*status.Registry](w.Resources),
	}
}
