package world

import (
	"log"
	"math"

	"blockworld/internal/blocks"
	"blockworld/internal/config"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters: smoothness, frequency falloff, octaves.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// Generate fills the world with terrain and returns the number of blocks
// spawned. Each column has Layers blocks going down from the surface; the
// surface block is grass and everything below it dirt. Rolling terrain
// raises columns above z = 0 by up to Amplitude extra blocks. Blocks are
// spawned a layer at a time, top layer first, rows of y then x within it.
func (w *World) Generate() int {
	s := w.settings

	// rise[y][x] is the number of extra layers above z = 0.
	rise := make([][]int, s.Depth)
	peak := 0
	var noise *perlin.Perlin
	if s.Terrain == config.TerrainRolling && s.Amplitude > 0 {
		noise = perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, s.Seed)
	}
	for y := range rise {
		rise[y] = make([]int, s.Width)
		if noise == nil {
			continue
		}
		for x := range rise[y] {
			rise[y][x] = columnRise(noise, x, y, s.Frequency, s.Amplitude)
			peak = max(peak, rise[y][x])
		}
	}

	spawned := 0
	for z := -peak; z < s.Layers; z++ {
		for y := 0; y < s.Depth; y++ {
			for x := 0; x < s.Width; x++ {
				top := -rise[y][x]
				if z < top {
					continue
				}
				m := blocks.Dirt
				if z == top {
					m = blocks.Grass
				}
				if _, ok := w.SpawnBlock(m, w.PositionOf(Cell{X: x, Y: y, Z: -z})); ok {
					spawned++
				}
			}
		}
	}

	log.Printf("world: generated %d blocks (%s, %dx%dx%d)", spawned, s.Terrain, s.Width, s.Depth, s.Layers)
	return spawned
}

// columnRise maps noise at a column to [0, amplitude] extra layers.
func columnRise(noise *perlin.Perlin, x, y int, frequency float64, amplitude int) int {
	n := noise.Noise2D(float64(x)*frequency, float64(y)*frequency)
	n = (n + 1) / 2
	rise := int(math.Round(n * float64(amplitude)))
	if rise < 0 {
		return 0
	}
	if rise > amplitude {
		return amplitude
	}
	return rise
}
