package components

import (
	"blockworld/internal/blocks"
	"blockworld/internal/engine"
)

// Block marks a scene object as a world block of a material.
type Block struct {
	engine.BaseComponent
	Material blocks.Material
}

func NewBlock(m blocks.Material) *Block {
	return &Block{Material: m}
}
