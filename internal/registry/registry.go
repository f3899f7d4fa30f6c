// Package registry provides a global registry of arena layouts.
// Layouts register themselves in init() functions, allowing the CLI and the
// menu to discover them by name without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/spacefight/internal/core"
)

// Point is a position in play-field units.
type Point struct {
	X, Y int
}

// Layout describes the geometry of one arena: the play field, the centre
// divider, the reserved health-text margin and the ship spawn points.
type Layout struct {
	Name  string
	Title string

	FieldW int // Play-field width in field units
	FieldH int // Play-field height in field units

	DividerWidth int // Width of the uncrossable centre divider
	TopMargin    int // Rows reserved for health text
	BottomMargin int // Rows kept clear at the bottom edge

	Spawn [2]Point // Spawn position per side, indexed by core.Side
}

// Divider returns the centre divider rectangle.
func (l Layout) Divider() core.Rect {
	return core.NewRect(l.FieldW/2-l.DividerWidth/2, 0, l.DividerWidth, l.FieldH)
}

// Bounds returns the containment rectangle for a side's ship.
// Ships must stay strictly inside it (see core.Within).
func (l Layout) Bounds(side core.Side) core.Rect {
	div := l.Divider()
	h := l.FieldH - l.TopMargin - l.BottomMargin
	if side == core.SideLeft {
		return core.NewRect(0, l.TopMargin, div.X, h)
	}
	return core.NewRect(div.Right(), l.TopMargin, l.FieldW-div.Right(), h)
}

// Validate checks that a ship of the given size fits at both spawn points.
func (l Layout) Validate(shipW, shipH int) error {
	if l.FieldW <= 0 || l.FieldH <= 0 {
		return fmt.Errorf("registry: layout %q has empty field %dx%d", l.Name, l.FieldW, l.FieldH)
	}
	if l.DividerWidth < 0 || l.TopMargin < 0 || l.BottomMargin < 0 {
		return fmt.Errorf("registry: layout %q has negative margins", l.Name)
	}
	for _, side := range core.Sides {
		p := l.Spawn[side]
		box := core.NewRect(p.X, p.Y, shipW, shipH)
		if !core.Within(l.Bounds(side), box) {
			return fmt.Errorf("registry: layout %q spawns %s ship outside its bounds", l.Name, side)
		}
	}
	return nil
}

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	Name  string
	Title string
}

// Factory is a function that builds a layout.
type Factory func() Layout

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a layout factory to the registry.
// Panics if a layout with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", name))
	}

	factories[name] = f
	titles[name] = f().Title
}

// List returns information about all registered layouts, sorted by name.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(factories))
	for name := range factories {
		result = append(result, LayoutInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get builds the layout registered under name.
// Returns an error if the name is not registered.
func Get(name string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return Layout{}, fmt.Errorf("registry: unknown arena %q", name)
	}

	l := f()
	l.Name = name
	return l, nil
}

// Exists checks if a layout with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
