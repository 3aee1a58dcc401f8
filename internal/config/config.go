package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"blockworld/internal/blocks"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file read at startup. The BLOCKWORLD_CONFIG
// environment variable overrides it.
const DefaultPath = "settings.yaml"

const EnvPath = "BLOCKWORLD_CONFIG"

const (
	TerrainFlat    = "flat"
	TerrainRolling = "rolling"
)

type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Camera      CameraConfig      `yaml:"camera"`
	Interaction InteractionConfig `yaml:"interaction"`
	World       WorldConfig       `yaml:"world"`
	Lighting    LightingConfig    `yaml:"lighting"`
	Assets      AssetsConfig      `yaml:"assets"`
	Audio       AudioConfig       `yaml:"audio"`
}

type WindowConfig struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	Icon       string `yaml:"icon"`
	TargetFPS  int32  `yaml:"target_fps"`
	MSAA       bool   `yaml:"msaa"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type CameraConfig struct {
	Start           [3]float32 `yaml:"start"`
	FOV             float32    `yaml:"fov"` // horizontal, degrees
	MoveSpeed       float32    `yaml:"move_speed"`
	LookSensitivity float32    `yaml:"look_sensitivity"`
}

type InteractionConfig struct {
	RemoveReach    float32 `yaml:"remove_reach"`
	PlaceReach     float32 `yaml:"place_reach"`
	PickDistance   float32 `yaml:"pick_distance"`
	PreventOverlap bool    `yaml:"prevent_overlap"`
	StartMaterial  string  `yaml:"start_material"`
}

type WorldConfig struct {
	Width     int        `yaml:"width"`
	Depth     int        `yaml:"depth"`
	Layers    int        `yaml:"layers"`
	BlockSize float32    `yaml:"block_size"`
	Origin    [3]float32 `yaml:"origin"`
	Terrain   string     `yaml:"terrain"`
	Seed      int64      `yaml:"seed"`
	Amplitude int        `yaml:"amplitude"`
	Frequency float64    `yaml:"frequency"`
}

type LightingConfig struct {
	SunHeading float32 `yaml:"sun_heading"`
	SunPitch   float32 `yaml:"sun_pitch"`
	Ambient    float32 `yaml:"ambient"`
}

type AssetsConfig struct {
	Models      map[string]string `yaml:"models"` // material name -> model file
	Skybox      string            `yaml:"skybox"`
	SkyboxScale float32           `yaml:"skybox_scale"`
	Crosshair   string            `yaml:"crosshair"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Block World",
			TargetFPS: 120,
			MSAA:      true,
		},
		Camera: CameraConfig{
			Start:           [3]float32{0, 0, 3},
			FOV:             80,
			MoveSpeed:       10,
			LookSensitivity: 10,
		},
		Interaction: InteractionConfig{
			RemoveReach:    12,
			PlaceReach:     14,
			PickDistance:   64,
			PreventOverlap: true,
			StartMaterial:  "grass",
		},
		World: WorldConfig{
			Width:     40,
			Depth:     40,
			Layers:    10,
			BlockSize: 2,
			Origin:    [3]float32{-20, -20, 0},
			Terrain:   TerrainFlat,
			Seed:      1,
			Amplitude: 3,
			Frequency: 0.08,
		},
		Lighting: LightingConfig{
			SunHeading: 30,
			SunPitch:   -60,
			Ambient:    0.3,
		},
		Assets: AssetsConfig{
			Models:      map[string]string{},
			SkyboxScale: 500,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Path returns the settings path to read: explicit, then environment, then default.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Load reads a YAML settings file over the defaults. A missing file is not
// an error; unknown keys and invalid values are.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("config: %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse: %w", err)
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("window.target_fps must not be negative"))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov must be in (0, 180), got %g", c.Camera.FOV))
	}
	if c.Camera.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("camera.move_speed must be positive"))
	}
	if c.Interaction.RemoveReach <= 0 || c.Interaction.PlaceReach <= 0 {
		errs = append(errs, fmt.Errorf("interaction reaches must be positive"))
	}
	if c.Interaction.PickDistance < c.Interaction.PlaceReach || c.Interaction.PickDistance < c.Interaction.RemoveReach {
		errs = append(errs, fmt.Errorf("interaction.pick_distance must cover both reaches"))
	}
	if _, err := blocks.ParseMaterial(c.Interaction.StartMaterial); err != nil {
		errs = append(errs, fmt.Errorf("interaction.start_material: %w", err))
	}
	if c.World.Width <= 0 || c.World.Depth <= 0 || c.World.Layers <= 0 {
		errs = append(errs, fmt.Errorf("world dimensions must be positive, got %dx%dx%d", c.World.Width, c.World.Depth, c.World.Layers))
	}
	if c.World.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("world.block_size must be positive"))
	}
	switch c.World.Terrain {
	case TerrainFlat, TerrainRolling:
	default:
		errs = append(errs, fmt.Errorf("world.terrain must be %q or %q, got %q", TerrainFlat, TerrainRolling, c.World.Terrain))
	}
	if c.World.Amplitude < 0 {
		errs = append(errs, fmt.Errorf("world.amplitude must not be negative"))
	}
	if c.Lighting.Ambient < 0 || c.Lighting.Ambient > 1 {
		errs = append(errs, fmt.Errorf("lighting.ambient must be in [0, 1]"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1]"))
	}
	if c.Assets.Skybox != "" && c.Assets.SkyboxScale <= 0 {
		errs = append(errs, fmt.Errorf("assets.skybox_scale must be positive"))
	}
	if _, err := c.Assets.ModelPaths(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ModelPaths returns the configured model file per material.
func (a AssetsConfig) ModelPaths() (map[blocks.Material]string, error) {
	paths := make(map[blocks.Material]string, len(a.Models))
	for name, path := range a.Models {
		m, err := blocks.ParseMaterial(name)
		if err != nil {
			return nil, fmt.Errorf("assets.models: %w", err)
		}
		paths[m] = path
	}
	return paths, nil
}

// Material returns the material selected at startup.
func (i InteractionConfig) Material() blocks.Material {
	m, err := blocks.ParseMaterial(i.StartMaterial)
	if err != nil {
		return blocks.Grass
	}
	return m
}
