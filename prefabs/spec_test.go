package prefabs

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary()
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}

	if lib.Player.Radius <= 0 {
		t.Fatalf("player radius = %v", lib.Player.Radius)
	}
	if lib.Player.MoveSpeed != 450 {
		t.Fatalf("player move speed = %v, want 450", lib.Player.MoveSpeed)
	}
	if lib.Player.JumpSpeed != 1100 {
		t.Fatalf("player jump speed = %v, want 1100", lib.Player.JumpSpeed)
	}
	if lib.Player.Gravity != -9.81 {
		t.Fatalf("player gravity = %v, want -9.81", lib.Player.Gravity)
	}
	if lib.Npc.DialogID == "" {
		t.Fatalf("npc prefab has no dialog id")
	}
	if lib.Level.Width <= 0 || lib.Level.Height <= 0 {
		t.Fatalf("level size = %v x %v", lib.Level.Width, lib.Level.Height)
	}
	if len(lib.Level.Boxes) == 0 {
		t.Fatalf("level has no terrain")
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec[PlayerSpec]("not_a_prefab.yaml"); err == nil {
		t.Fatalf("missing file should error")
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#dc143c"`, color.NRGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff}, false},
		{"rgba", `"#10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"no_hash", `"4f9d4f"`, color.NRGBA{R: 0x4f, G: 0x9d, B: 0x4f, A: 0xff}, false},
		{"too_short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#zzzzzz"`, color.NRGBA{}, true},
		{"not_scalar", `[1, 2]`, color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", c.in, err)
			}
			if got.NRGBA != c.want {
				t.Fatalf("color = %+v, want %+v", got.NRGBA, c.want)
			}
		})
	}
}

func TestYAMLColorOrDefault(t *testing.T) {
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	var nilColor *YAMLColor
	if got := nilColor.OrDefault(fallback); got != fallback {
		t.Fatalf("nil color should fall back, got %+v", got)
	}
	set := &YAMLColor{NRGBA: color.NRGBA{R: 9, A: 0xff}}
	if got := set.OrDefault(fallback); got != set.NRGBA {
		t.Fatalf("set color should win, got %+v", got)
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	data, err := LoadScript("follower.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("script is empty")
	}

	// path prefixes are tolerated
	if _, err := LoadScript("prefabs/scripts/follower.tengo"); err != nil {
		t.Fatalf("prefixed script path: %v", err)
	}
}
