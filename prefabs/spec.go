package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and decodes one prefab file, preferring a disk copy over the
// embedded one so tuning edits apply without a rebuild.
func LoadSpec[T any](filename string) (*T, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name       string     `yaml:"name"`
	Radius     float64    `yaml:"radius"`
	MoveSpeed  float64    `yaml:"move_speed"`
	JumpSpeed  float64    `yaml:"jump_speed"`
	Gravity    float64    `yaml:"gravity"`
	StartX     float64    `yaml:"start_x"`
	StartY     float64    `yaml:"start_y"`
	Color      *YAMLColor `yaml:"color"`
	CamSmooth  float64    `yaml:"cam_smooth"`
	DebugState bool       `yaml:"debug_state"`
}

type NpcSpec struct {
	Name         string     `yaml:"name"`
	Radius       float64    `yaml:"radius"`
	Height       float64    `yaml:"height"`
	Scale        float64    `yaml:"scale"`
	MoveSpeed    float64    `yaml:"move_speed"`
	FollowRange  float64    `yaml:"follow_range"`
	StopDistance float64    `yaml:"stop_distance"`
	DialogID     string     `yaml:"dialog_id"`
	DialogRadius float64    `yaml:"dialog_radius"`
	Color        *YAMLColor `yaml:"color"`
	ModelColor   *YAMLColor `yaml:"model_color"`
}

type OrbSpec struct {
	Name           string     `yaml:"name"`
	Radius         float64    `yaml:"radius"`
	HoverHeight    float64    `yaml:"hover_height"`
	Color          *YAMLColor `yaml:"color"`
	LightColor     *YAMLColor `yaml:"light_color"`
	LightIntensity float64    `yaml:"light_intensity"`
	LightRange     float64    `yaml:"light_range"`
}

type PointLightSpec struct {
	Name      string     `yaml:"name"`
	Color     *YAMLColor `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Range     float64    `yaml:"range"`
}

type SunlightSpec struct {
	Name        string  `yaml:"name"`
	Illuminance float64 `yaml:"illuminance"`
}

type PropSpec struct {
	Name   string     `yaml:"name"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type LevelBoxSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type LevelSpec struct {
	Name   string         `yaml:"name"`
	Width  float64        `yaml:"width"`
	Height float64        `yaml:"height"`
	Boxes  []LevelBoxSpec `yaml:"boxes"`
}

// Library holds every prefab spec, preloaded at startup. Spawners fail loudly
// if a spec they need was not preloaded.
type Library struct {
	Player     *PlayerSpec
	Npc        *NpcSpec
	Orb        *OrbSpec
	PointLight *PointLightSpec
	Sunlight   *SunlightSpec
	Grass      *PropSpec
	Box        *PropSpec
	Level      *LevelSpec
}

// LoadLibrary reads all prefab specs. Any missing or malformed file is an
// error; a partially loaded library is never returned.
func LoadLibrary() (*Library, error) {
	lib := &Library{}
	var err error
	if lib.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if lib.Npc, err = LoadSpec[NpcSpec]("npc.yaml"); err != nil {
		return nil, err
	}
	if lib.Orb, err = LoadSpec[OrbSpec]("orb.yaml"); err != nil {
		return nil, err
	}
	if lib.PointLight, err = LoadSpec[PointLightSpec]("point_light.yaml"); err != nil {
		return nil, err
	}
	if lib.Sunlight, err = LoadSpec[SunlightSpec]("sunlight.yaml"); err != nil {
		return nil, err
	}
	if lib.Grass, err = LoadSpec[PropSpec]("grass.yaml"); err != nil {
		return nil, err
	}
	if lib.Box, err = LoadSpec[PropSpec]("box.yaml"); err != nil {
		return nil, err
	}
	if lib.Level, err = LoadSpec[LevelSpec]("level.yaml"); err != nil {
		return nil, err
	}
	return lib, nil
}

// Reload re-reads every spec in place, so held pointers keep serving stale
// values only until the next lookup of the library fields.
func (l *Library) Reload() error {
	fresh, err := LoadLibrary()
	if err != nil {
		return err
	}
	*l = *fresh
	return nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa" scalars.
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}
	a := uint8(255)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// OrDefault returns the decoded color, or fallback when the field was absent.
func (c *YAMLColor) OrDefault(fallback color.NRGBA) color.NRGBA {
	if c == nil {
		return fallback
	}
	return c.NRGBA
}
