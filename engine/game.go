package engine

import "github.com/spaghettifunk/clay/engine/renderer"

// Game carries optional per-frame hooks. Nil hooks are skipped.
type Game struct {
	ApplicationConfig *ApplicationConfig
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
}

type Initialize func() error
type Update func(elapsed, deltaTime float64) error
type Render func(packet *renderer.RenderPacket, deltaTime float64) error
