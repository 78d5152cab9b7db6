package component

// Player marks the player-controlled entity.
type Player struct{}

// Follower makes an NPC walk toward the player while it is inside
// FollowRange, stopping once within StopDistance.
type Follower struct {
	FollowRange  float64
	StopDistance float64
}

// Model marks a visual-model child entity.
type Model struct{}

// SceneObject marks the root entity of a spawned hierarchy so the
// persistence system can record and rebuild it.
type SceneObject struct {
	Object GameObject
}

// Parent links a child entity to its hierarchy parent. The child's world
// transform is kept at the parent's position plus the stored offset.
type Parent struct {
	Entity  uint64
	OffsetX float64
	OffsetY float64
}

var (
	PlayerKind      = NewKind[Player]()
	FollowerKind    = NewKind[Follower]()
	ModelKind       = NewKind[Model]()
	SceneObjectKind = NewKind[SceneObject]()
	ParentKind      = NewKind[Parent]()
)
