package assets

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

// Manager caches loaded assets by path so each file is loaded once.
type Manager struct {
	models   map[string]rl.Model
	textures map[string]rl.Texture2D
}

func Init() {
	manager = &Manager{
		models:   make(map[string]rl.Model),
		textures: make(map[string]rl.Texture2D),
	}
}

// LoadModel loads a model file once. raylib logs and returns an empty model
// on failure, so the file is checked first and the result validated.
func LoadModel(path string) (rl.Model, error) {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[path]; exists {
		return model, nil
	}

	if err := checkFile(path); err != nil {
		return rl.Model{}, fmt.Errorf("assets: load model: %w", err)
	}

	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) {
		return rl.Model{}, fmt.Errorf("assets: load model %q: invalid or unsupported file", path)
	}
	manager.models[path] = model
	return model, nil
}

func LoadTexture(path string) (rl.Texture2D, error) {
	if manager == nil {
		Init()
	}

	if texture, exists := manager.textures[path]; exists {
		return texture, nil
	}

	if err := checkFile(path); err != nil {
		return rl.Texture2D{}, fmt.Errorf("assets: load texture: %w", err)
	}

	texture := rl.LoadTexture(path)
	if !rl.IsTextureValid(texture) {
		return rl.Texture2D{}, fmt.Errorf("assets: load texture %q: invalid or unsupported file", path)
	}
	manager.textures[path] = texture
	return texture, nil
}

// LoadImage loads a CPU-side image. Images are not cached; the caller owns it.
func LoadImage(path string) (*rl.Image, error) {
	if err := checkFile(path); err != nil {
		return nil, fmt.Errorf("assets: load image: %w", err)
	}
	img := rl.LoadImage(path)
	if img == nil || !rl.IsImageValid(img) {
		return nil, fmt.Errorf("assets: load image %q: invalid or unsupported file", path)
	}
	return img, nil
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	for _, texture := range manager.textures {
		rl.UnloadTexture(texture)
	}

	manager.models = make(map[string]rl.Model)
	manager.textures = make(map[string]rl.Texture2D)
}
