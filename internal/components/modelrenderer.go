package components

import (
	"unsafe"

	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model         rl.Model
	Material      *Material
	CastShadow    bool
	ReceiveShadow bool
	// BoundingRadius is the local-space radius used for frustum culling.
	// Zero disables culling for this renderer.
	BoundingRadius float32
	shader         rl.Shader
	owned          bool // false when the model belongs to the asset cache
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:    model,
		Material: NewMaterial(color),
		owned:    true,
	}
}

// NewModelRendererShared wraps a model owned by the asset cache. Its
// materials are left untinted.
func NewModelRendererShared(model rl.Model) *ModelRenderer {
	m := &ModelRenderer{
		Model:    model,
		Material: NewMaterial(rl.White),
	}
	m.Material.Tint = false
	return m
}

func (m *ModelRenderer) SetShader(shader rl.Shader) {
	m.shader = shader
	mats := m.materials()
	for i := range mats {
		mats[i].Shader = shader
	}
}

func (m *ModelRenderer) materials() []rl.Material {
	if m.Model.MaterialCount == 0 || m.Model.Materials == nil {
		return nil
	}
	return unsafe.Slice(m.Model.Materials, m.Model.MaterialCount)
}

// SetMap binds a texture into the given slot of the model's first material.
func (m *ModelRenderer) SetMap(kind MapKind, texture rl.Texture2D) {
	if m.Model.MaterialCount == 0 {
		return
	}
	rl.SetMaterialTexture(m.Model.Materials, kind.rlIndex(), texture)
	m.Material.mask |= kind.Bit()
}

// BindShadowMap samples depth from the emission slot of every material.
// The lighting shader reads its shadow map from there.
func (m *ModelRenderer) BindShadowMap(depth rl.Texture2D) {
	mats := m.materials()
	for i := range mats {
		rl.SetMaterialTexture(&mats[i], int32(rl.MapEmission), depth)
	}
}

// DrawWithShader draws once with shader in place of the material shaders.
func (m *ModelRenderer) DrawWithShader(shader rl.Shader) {
	mats := m.materials()
	for i := range mats {
		mats[i].Shader = shader
	}
	m.Draw()
	for i := range mats {
		mats[i].Shader = m.shader
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Visible() {
		return
	}

	if m.Material.Tint && m.Model.MaterialCount > 0 {
		m.Model.Materials.Maps.Color = m.Material.Color
	}
	m.Model.Transform = g.WorldMatrix()

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, rl.White)
}

func (m *ModelRenderer) Unload() {
	// Cached models are unloaded by the asset cache
	if m.owned {
		rl.UnloadModel(m.Model)
	}
}
