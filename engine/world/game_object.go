package world

import "github.com/google/uuid"

// GameObject is a named bag of components.
type GameObject struct {
	ID         uuid.UUID
	Name       string
	Components []any
}

func (g *GameObject) AddComponent(c any) {
	g.Components = append(g.Components, c)
}

// Component returns the first component of g with type T.
func Component[T any](g *GameObject) (T, bool) {
	for _, c := range g.Components {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
