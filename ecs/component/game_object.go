package component

import "fmt"

// GameObject is the closed enumeration of spawnable kinds. Every variant has
// exactly one registered spawner; the registry validates exhaustiveness when
// it is built.
type GameObject int

const (
	GameObjectNpc GameObject = iota
	GameObjectOrb
	GameObjectPointLight
	GameObjectSunlight
	GameObjectGrass
	GameObjectBox
	GameObjectEmpty

	gameObjectCount
)

var gameObjectNames = map[GameObject]string{
	GameObjectNpc:        "Npc",
	GameObjectOrb:        "Orb",
	GameObjectPointLight: "PointLight",
	GameObjectSunlight:   "Sunlight",
	GameObjectGrass:      "Grass",
	GameObjectBox:        "Box",
	GameObjectEmpty:      "Empty",
}

func (o GameObject) String() string {
	if name, ok := gameObjectNames[o]; ok {
		return name
	}
	return fmt.Sprintf("GameObject(%d)", int(o))
}

func (o GameObject) Valid() bool {
	return o >= 0 && o < gameObjectCount
}

// AllGameObjects returns every variant, in declaration order.
func AllGameObjects() []GameObject {
	out := make([]GameObject, 0, int(gameObjectCount))
	for o := GameObject(0); o < gameObjectCount; o++ {
		out = append(out, o)
	}
	return out
}

// ParseGameObject resolves the name used in editor labels and save files.
func ParseGameObject(s string) (GameObject, error) {
	for o, name := range gameObjectNames {
		if name == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("component: unknown game object %q", s)
}
