package core

// Steppable is an entity advanced once per simulation tick inside a play field.
type Steppable interface {
	Step(field Rect)
}

// CollisionBody exposes an axis-aligned bounding box in world units.
type CollisionBody interface {
	Bounds() Rect
}
