package config

import (
	"os"
	"path/filepath"
	"testing"

	"blockworld/internal/blocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 40, cfg.World.Width)
	assert.Equal(t, 40, cfg.World.Depth)
	assert.Equal(t, 10, cfg.World.Layers)
	assert.Equal(t, float32(2), cfg.World.BlockSize)
	assert.Equal(t, float32(12), cfg.Interaction.RemoveReach)
	assert.Equal(t, float32(14), cfg.Interaction.PlaceReach)
	assert.Equal(t, float32(10), cfg.Camera.MoveSpeed)
	assert.Equal(t, [3]float32{0, 0, 3}, cfg.Camera.Start)
	assert.Equal(t, blocks.Grass, cfg.Interaction.Material())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := `
window:
  title: My World
  width: 800
world:
  terrain: rolling
  seed: 42
assets:
  models:
    grass: models/grass-block.glb
    Stone: models/stone-block.glb
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "My World", cfg.Window.Title)
	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, int32(720), cfg.Window.Height)
	assert.Equal(t, TerrainRolling, cfg.World.Terrain)
	assert.Equal(t, int64(42), cfg.World.Seed)
	assert.Equal(t, 40, cfg.World.Width)

	paths, err := cfg.Assets.ModelPaths()
	require.NoError(t, err)
	assert.Equal(t, map[blocks.Material]string{
		blocks.Grass: "models/grass-block.glb",
		blocks.Stone: "models/stone-block.glb",
	}, paths)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  colour: red\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.World.Width = 0
	cfg.World.Terrain = "caves"
	cfg.Interaction.StartMaterial = "lava"
	cfg.Assets.Models = map[string]string{"obsidian": "x.glb"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "world dimensions")
	assert.Contains(t, err.Error(), "world.terrain")
	assert.Contains(t, err.Error(), "start_material")
	assert.Contains(t, err.Error(), "assets.models")
}

func TestValidatePickDistanceCoversReach(t *testing.T) {
	cfg := Default()
	cfg.Interaction.PickDistance = 10
	assert.Error(t, cfg.Validate())
}

func TestPathPrecedence(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, Path(""))

	t.Setenv(EnvPath, "/etc/blockworld.yaml")
	assert.Equal(t, "/etc/blockworld.yaml", Path(""))
	assert.Equal(t, "explicit.yaml", Path("explicit.yaml"))
}

func TestShippedSettingsMatchDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
