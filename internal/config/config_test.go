package config

import (
	"os"
	"path/filepath"
	"testing"

	"interact3d/internal/engine"
	"interact3d/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	ic, err := cfg.InteractionConfig()
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), ic.Radius)
	assert.Equal(t, float32(0.3), ic.Cooldown)
	assert.Equal(t, engine.LayerInteractable, ic.LayerMask)

	require.NotEmpty(t, cfg.Scene.Targets)
	assert.Equal(t, "TestCube", cfg.Scene.Targets[0].Name)
	assert.Equal(t, "Press E to interact with cube", cfg.Scene.Targets[0].Scripts[0].Props["prompt"])
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("scene:\n  targets:\n    - name: Cube\n"))
	require.NoError(t, err)

	ic, err := cfg.InteractionConfig()
	require.NoError(t, err)
	assert.Equal(t, interaction.DefaultConfig(), ic)

	target := cfg.Scene.Targets[0]
	assert.Equal(t, "interactable", target.Layer)
	assert.Equal(t, "cube", target.Mesh)
	assert.Equal(t, Vec3{1, 1, 1}, *target.Size)
	assert.Equal(t, "Player", cfg.Scene.Player.Name)
	assert.Equal(t, ":9464", cfg.Metrics.Addr)
}

func TestParseDetectorSection(t *testing.T) {
	cfg, err := Parse([]byte(`
detector:
  interaction_radius: 4
  layers: [interactable, default]
  cooldown: 0
  drop_unready_triggers: true
`))
	require.NoError(t, err)

	ic, err := cfg.InteractionConfig()
	require.NoError(t, err)
	assert.Equal(t, float32(4), ic.Radius)
	assert.Zero(t, ic.Cooldown, "explicit zero cooldown is kept")
	assert.Equal(t, engine.LayerInteractable|engine.LayerDefault, ic.LayerMask)
	assert.True(t, ic.DropUnreadyTriggers)
}

func TestParseRejectsBadRadius(t *testing.T) {
	for _, doc := range []string{
		"detector:\n  interaction_radius: 0\n",
		"detector:\n  interaction_radius: -1\n",
		"detector:\n  interaction_radius: .nan\n",
		"detector:\n  interaction_radius: .inf\n",
		"detector:\n  interaction_radius: -.inf\n",
	} {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidRadius, doc)
	}
}

func TestParseRejectsNegativeCooldown(t *testing.T) {
	for _, doc := range []string{
		"detector:\n  cooldown: -0.1\n",
		"detector:\n  cooldown: .nan\n",
		"detector:\n  cooldown: .inf\n",
	} {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidCooldown, doc)
	}
}

func TestParseRejectsUnknownLayer(t *testing.T) {
	_, err := Parse([]byte("detector:\n  layers: [ghosts]\n"))
	assert.ErrorContains(t, err, "ghosts")

	_, err = Parse([]byte("scene:\n  targets:\n    - name: A\n      layer: ghosts\n"))
	assert.ErrorContains(t, err, "ghosts")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("detector:\n  radius: 3\n"))
	assert.Error(t, err)
}

func TestParseRejectsBadTargets(t *testing.T) {
	cases := map[string]string{
		"missing name":    "scene:\n  targets:\n    - position: [0, 0, 0]\n",
		"duplicate":       "scene:\n  targets:\n    - name: A\n    - name: A\n",
		"short vector":    "scene:\n  targets:\n    - name: A\n      position: [1, 2]\n",
		"negative radius": "scene:\n  targets:\n    - name: A\n      collider_radius: -1\n",
		"mesh":            "scene:\n  targets:\n    - name: A\n      mesh: teapot\n",
		"script name":     "scene:\n  targets:\n    - name: A\n      scripts:\n        - props: {}\n",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestParseTargetProps(t *testing.T) {
	cfg, err := Parse([]byte(`
scene:
  targets:
    - name: Cube
      position: [1, 0.5, -2]
      scripts:
        - name: PulseCube
          props:
            enabled: false
            defaultColor: [1, 2, 3]
`))
	require.NoError(t, err)

	target := cfg.Scene.Targets[0]
	assert.Equal(t, rl.Vector3{X: 1, Y: 0.5, Z: -2}, target.Position.Vector3())
	props := target.Scripts[0].Props
	assert.Equal(t, false, props["enabled"])
	assert.Equal(t, []any{1, 2, 3}, props["defaultColor"])
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interact.yaml")
	require.NoError(t, os.WriteFile(path, []byte("detector:\n  interaction_radius: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(3), *cfg.Detector.InteractionRadius)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), *cfg.Detector.InteractionRadius)
}
