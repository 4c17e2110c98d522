// Package config loads the interaction demo configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"interact3d/internal/engine"
	"interact3d/internal/interaction"
	"interact3d/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidRadius   = errors.New("interaction radius must be positive and finite")
	ErrInvalidCooldown = errors.New("cooldown must be non-negative and finite")
)

type Config struct {
	Detector DetectorConfig `yaml:"detector"`
	Logging  logging.Config `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Audio    AudioConfig    `yaml:"audio"`
	Scene    SceneConfig    `yaml:"scene"`
}

type DetectorConfig struct {
	// Pointers tell "unset" (defaulted) apart from an explicit zero.
	InteractionRadius   *float32 `yaml:"interaction_radius"`
	Layers              []string `yaml:"layers"`
	Cooldown            *float32 `yaml:"cooldown"`
	DropUnreadyTriggers bool     `yaml:"drop_unready_triggers"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type SceneConfig struct {
	Player  PlayerConfig   `yaml:"player"`
	Prompt  PromptConfig   `yaml:"prompt"`
	Targets []TargetConfig `yaml:"targets"`
}

type PlayerConfig struct {
	Name     string  `yaml:"name"`
	Position Vec3    `yaml:"position"`
	Speed    float32 `yaml:"speed"`
}

type PromptConfig struct {
	FontSize int32 `yaml:"font_size"`
}

type TargetConfig struct {
	Name           string         `yaml:"name"`
	Layer          string         `yaml:"layer,omitempty"`
	Position       Vec3           `yaml:"position"`
	Size           *Vec3          `yaml:"size,omitempty"`
	Mesh           string         `yaml:"mesh,omitempty"`
	Color          string         `yaml:"color,omitempty"`
	ColliderRadius float32        `yaml:"collider_radius,omitempty"`
	Scripts        []ScriptConfig `yaml:"scripts,omitempty"`
}

type ScriptConfig struct {
	Name  string         `yaml:"name"`
	Props map[string]any `yaml:"props,omitempty"`
}

// Vec3 is written as a three element list: [x, y, z].
type Vec3 [3]float32

func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var xs []float32
	if err := node.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return fmt.Errorf("line %d: expected [x, y, z], got %d values", node.Line, len(xs))
	}
	copy(v[:], xs)
	return nil
}

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, fills defaults and validates. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := &c.Detector
	if d.InteractionRadius == nil {
		r := interaction.DefaultRadius
		d.InteractionRadius = &r
	}
	if d.Cooldown == nil {
		cd := interaction.DefaultCooldown
		d.Cooldown = &cd
	}
	if len(d.Layers) == 0 {
		d.Layers = []string{"interactable"}
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9464"
	}

	p := &c.Scene.Player
	if p.Name == "" {
		p.Name = "Player"
	}
	if p.Speed == 0 {
		p.Speed = 4
	}
	if c.Scene.Prompt.FontSize == 0 {
		c.Scene.Prompt.FontSize = 24
	}

	for i := range c.Scene.Targets {
		t := &c.Scene.Targets[i]
		if t.Layer == "" {
			t.Layer = "interactable"
		}
		if t.Mesh == "" {
			t.Mesh = "cube"
		}
		if t.Size == nil {
			t.Size = &Vec3{1, 1, 1}
		}
	}
}

func (c *Config) Validate() error {
	d := c.Detector
	if d.InteractionRadius != nil && (*d.InteractionRadius <= 0 || !finite(*d.InteractionRadius)) {
		return fmt.Errorf("detector.interaction_radius %v: %w", *d.InteractionRadius, ErrInvalidRadius)
	}
	if d.Cooldown != nil && (*d.Cooldown < 0 || !finite(*d.Cooldown)) {
		return fmt.Errorf("detector.cooldown %v: %w", *d.Cooldown, ErrInvalidCooldown)
	}
	if _, err := engine.MaskFromNames(d.Layers); err != nil {
		return fmt.Errorf("detector.layers: %w", err)
	}

	seen := make(map[string]bool)
	for i, t := range c.Scene.Targets {
		if t.Name == "" {
			return fmt.Errorf("scene.targets[%d]: name is required", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("scene.targets[%d]: duplicate name %q", i, t.Name)
		}
		seen[t.Name] = true
		if _, ok := engine.LayerByName(t.Layer); !ok && t.Layer != "" {
			return fmt.Errorf("scene.targets[%d] %s: unknown layer %q", i, t.Name, t.Layer)
		}
		if t.ColliderRadius < 0 {
			return fmt.Errorf("scene.targets[%d] %s: collider_radius must not be negative", i, t.Name)
		}
		switch t.Mesh {
		case "", "cube", "sphere":
		default:
			return fmt.Errorf("scene.targets[%d] %s: unknown mesh %q", i, t.Name, t.Mesh)
		}
		for j, s := range t.Scripts {
			if s.Name == "" {
				return fmt.Errorf("scene.targets[%d] %s: scripts[%d] has no name", i, t.Name, j)
			}
		}
	}
	return nil
}

// finite rejects the NaN and ±Inf that yaml accepts as .nan and .inf.
func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

// InteractionConfig converts the detector section. Call after defaults.
func (c *Config) InteractionConfig() (interaction.Config, error) {
	mask, err := engine.MaskFromNames(c.Detector.Layers)
	if err != nil {
		return interaction.Config{}, err
	}
	cfg := interaction.DefaultConfig()
	cfg.LayerMask = mask
	cfg.DropUnreadyTriggers = c.Detector.DropUnreadyTriggers
	if c.Detector.InteractionRadius != nil {
		cfg.Radius = *c.Detector.InteractionRadius
	}
	if c.Detector.Cooldown != nil {
		cfg.Cooldown = *c.Detector.Cooldown
	}
	return cfg, nil
}
