package renderer

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/clay/engine/core"
)

// Uniform names, matching the shader of the triangle example.
const (
	UniformProjection = "proj"
	UniformView       = "view"
	UniformModel      = "model"
	UniformMVP        = "mvp"
)

var ErrNoBackend = errors.New("renderer has no backend")

type Renderer struct {
	backend RendererBackend
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Backend() RendererBackend {
	return r.backend
}

func (r *Renderer) BeginFrame(deltaTime float64) error {
	if r.backend == nil {
		return ErrNoBackend
	}
	return r.backend.BeginFrame(deltaTime)
}

func (r *Renderer) EndFrame(deltaTime float64) error {
	if r.backend == nil {
		return ErrNoBackend
	}
	return r.backend.EndFrame(deltaTime)
}

// DrawFrame uploads proj and view once, then model and mvp (proj * view * model)
// for every geometry of the packet.
func (r *Renderer) DrawFrame(renderPacket *RenderPacket) error {
	if err := r.BeginFrame(renderPacket.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}

	if err := r.uploadFrame(renderPacket); err != nil {
		core.LogError(err.Error())
		// close the frame anyway so the backend is not left mid-frame
		if endErr := r.EndFrame(renderPacket.DeltaTime); endErr != nil {
			core.LogError(endErr.Error())
		}
		return err
	}

	if err := r.EndFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed: %s", err)
		return err
	}
	return nil
}

func (r *Renderer) uploadFrame(renderPacket *RenderPacket) error {
	if err := r.setMat4(UniformProjection, renderPacket.Projection.Floats()); err != nil {
		return err
	}
	if err := r.setMat4(UniformView, renderPacket.View.Floats()); err != nil {
		return err
	}

	viewProjection := renderPacket.Projection.Mul(renderPacket.View)
	for _, geometry := range renderPacket.Geometries {
		if err := r.setMat4(UniformModel, geometry.Model.Floats()); err != nil {
			return fmt.Errorf("geometry %q: %w", geometry.Name, err)
		}
		mvp := viewProjection.Mul(geometry.Model)
		if err := r.setMat4(UniformMVP, mvp.Floats()); err != nil {
			return fmt.Errorf("geometry %q: %w", geometry.Name, err)
		}
	}
	return nil
}

func (r *Renderer) setMat4(name string, data [16]float32) error {
	if err := r.backend.SetMat4(name, data); err != nil {
		return fmt.Errorf("set_mat4 %s: %w", name, err)
	}
	return nil
}
