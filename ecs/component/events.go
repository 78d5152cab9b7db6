package component

// SpawnEvent requests creation of one object hierarchy in the world. Name
// and Parent are optional; Parent refers to an existing entity by name.
type SpawnEvent struct {
	Object    GameObject
	Name      string
	Parent    string
	Transform Transform
}

// ParentChangeEvent requests reparenting of a named entity.
type ParentChangeEvent struct {
	Name      string
	NewParent string
}

// SaveRequest asks the persistence system to write the current scene.
type SaveRequest struct {
	Filename string
}

// LoadRequest asks the persistence system to replace the current scene.
type LoadRequest struct {
	Filename string
}
