package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/san-kum/bitviz/internal/bits"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	policy, _ := cfg.ClampPolicy()
	if policy != bits.ClampSaturate {
		t.Errorf("expected saturate, got %s", policy)
	}
	if cfg.Backend != BackendBubbleTea {
		t.Errorf("expected bubbletea backend, got %s", cfg.Backend)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitviz.yaml")
	data := "theme: retro\nclamp: one\nborder: block\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "retro" || cfg.Clamp != "one" || cfg.Border != "block" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Backend != DefaultBackend {
		t.Errorf("missing keys should keep defaults, got backend %q", cfg.Backend)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"clamp", "clamp: wrap\n"},
		{"border", "border: double\n"},
		{"backend", "backend: ncurses\n"},
		{"theme", "theme: neon\n"},
		{"preset", "preset: nibble\n"},
		{"syntax", "clamp: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bitviz.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_Preset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitviz.yaml")
	if err := os.WriteFile(path, []byte("preset: mask\nclamp: one\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Preset != "mask" {
		t.Fatalf("preset dropped: %+v", cfg)
	}
	f, err := cfg.StartFrame()
	if err != nil {
		t.Fatal(err)
	}
	want := bits.Frame{Current: 0x00F0, Opt: 0x0F0F, Op: bits.OpAnd, Policy: bits.ClampOne}
	if f != want {
		t.Errorf("start frame = %+v, want %+v", f, want)
	}
}

func TestStartFrame_NoPreset(t *testing.T) {
	f, err := DefaultConfig().StartFrame()
	if err != nil {
		t.Fatal(err)
	}
	if f != bits.NewFrame(bits.ClampSaturate) {
		t.Errorf("unexpected start frame %+v", f)
	}

	cfg := DefaultConfig()
	cfg.Preset = "nibble"
	if _, err := cfg.StartFrame(); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestOverride(t *testing.T) {
	file := Config{
		Theme:   "retro",
		Clamp:   "one",
		Border:  "block",
		Backend: BackendTcell,
		LogFile: "file.log",
		Preset:  "mask",
	}
	flags := Flags{
		Theme:   "ocean",
		Clamp:   "saturate",
		Border:  "line",
		LogFile: "flag.log",
		Preset:  "edges",
	}

	tests := []struct {
		name    string
		changed []string
		want    func(c *Config)
	}{
		{"none set keeps file", nil, func(c *Config) {}},
		{"theme", []string{"theme"}, func(c *Config) { c.Theme = "ocean" }},
		{"clamp", []string{"clamp"}, func(c *Config) { c.Clamp = "saturate" }},
		{"border", []string{"border"}, func(c *Config) { c.Border = "line" }},
		{"log", []string{"log"}, func(c *Config) { c.LogFile = "flag.log" }},
		{"preset", []string{"preset"}, func(c *Config) { c.Preset = "edges" }},
		{"all", []string{"theme", "clamp", "border", "log", "preset"}, func(c *Config) {
			c.Theme, c.Clamp, c.Border, c.LogFile, c.Preset = "ocean", "saturate", "line", "flag.log", "edges"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := file
			got.Override(flags, func(name string) bool { return slices.Contains(tt.changed, name) })

			want := file
			tt.want(&want)
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitviz.yaml")
	cfg := DefaultConfig()
	cfg.Backend = BackendTcell
	cfg.LogFile = "debug.log"
	cfg.Preset = "checker"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("mask")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	f := p.Frame(bits.ClampSaturate)
	if f.Result() != 0 {
		t.Errorf("mask result = %#x, want 0", uint32(f.Result()))
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsInRange(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("ListPresets returned %d of %d", len(names), len(Presets))
	}
	for _, name := range names {
		p := Presets[name]
		if !p.Current.InRange() || !p.Opt.InRange() || p.Op == bits.OpNone {
			t.Errorf("preset %s is not a reachable state: %+v", name, p)
		}
	}
}
