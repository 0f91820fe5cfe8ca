package world

import (
	"log"
	"path/filepath"
	"unsafe"

	"diorama/internal/components"
	"diorama/internal/engine"
	"diorama/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const ShadowMapResolution = 2048

const (
	ShadowNear float32 = 1.0
	ShadowFar  float32 = 150.0
)

// MaxPointLights must match the array size in lighting.fs.
const MaxPointLights = 16

// maxShaderLocs is raylib's RL_MAX_SHADER_LOCATIONS.
const maxShaderLocs = 32

type uniforms struct {
	viewPos       int32
	matLightVP    int32
	lightDir      int32
	lightColor    int32
	ambient       int32
	emissive      int32
	mapMask       int32
	receiveShadow int32
	shadows       int32
	heightScale   int32
	pointCount    int32
	pointPosition int32
	pointColor    int32
	pointRange    int32
}

type Renderer struct {
	Shader      rl.Shader
	DepthShader rl.Shader
	ShadowMap   rl.RenderTexture2D
	Light       *components.DirectionalLight
	LightCamera rl.Camera3D
	MatLightVP  rl.Matrix
	ClearColor  rl.Color
	Shadows     bool
	// HeightScale is how far height maps displace vertices along their normal.
	HeightScale float32
	orthoSize   float32
	u           uniforms

	pointPos   []float32
	pointColor []float32
	pointRange []float32
}

func NewRenderer(clearColor rl.Color, shadows bool) *Renderer {
	return &Renderer{
		ClearColor:  clearColor,
		Shadows:     shadows,
		HeightScale: 0.05,
	}
}

// Initialize loads the shaders from shaderDir and allocates the shadow map.
// orthoSize is the width of the area the sun's shadow camera covers.
func (r *Renderer) Initialize(shaderDir string, orthoSize float32) {
	r.orthoSize = orthoSize

	r.Shader = rl.LoadShader(filepath.Join(shaderDir, "lighting.vs"), filepath.Join(shaderDir, "lighting.fs"))
	r.DepthShader = rl.LoadShader(filepath.Join(shaderDir, "depth.vs"), filepath.Join(shaderDir, "depth.fs"))
	if r.Shader.ID == 0 {
		log.Printf("Lighting shader could not load from %s", shaderDir)
	}

	// Tell raylib which sampler each material map binds to
	locs := unsafe.Slice(r.Shader.Locs, maxShaderLocs)
	locs[rl.ShaderLocMapAlbedo] = rl.GetShaderLocation(r.Shader, "texture0")
	locs[rl.ShaderLocMapNormal] = rl.GetShaderLocation(r.Shader, "normalMap")
	locs[rl.ShaderLocMapOcclusion] = rl.GetShaderLocation(r.Shader, "occlusionMap")
	locs[rl.ShaderLocMapRoughness] = rl.GetShaderLocation(r.Shader, "roughnessMap")
	locs[rl.ShaderLocMapMetalness] = rl.GetShaderLocation(r.Shader, "metalnessMap")
	locs[rl.ShaderLocMapHeight] = rl.GetShaderLocation(r.Shader, "heightMap")
	locs[rl.ShaderLocMapBrdf] = rl.GetShaderLocation(r.Shader, "alphaMap")
	locs[rl.ShaderLocMapEmission] = rl.GetShaderLocation(r.Shader, "shadowMap")

	r.u = uniforms{
		viewPos:       rl.GetShaderLocation(r.Shader, "viewPos"),
		matLightVP:    rl.GetShaderLocation(r.Shader, "matLightVP"),
		lightDir:      rl.GetShaderLocation(r.Shader, "lightDir"),
		lightColor:    rl.GetShaderLocation(r.Shader, "lightColor"),
		ambient:       rl.GetShaderLocation(r.Shader, "ambient"),
		emissive:      rl.GetShaderLocation(r.Shader, "emissive"),
		mapMask:       rl.GetShaderLocation(r.Shader, "mapMask"),
		receiveShadow: rl.GetShaderLocation(r.Shader, "receiveShadow"),
		shadows:       rl.GetShaderLocation(r.Shader, "shadowsEnabled"),
		heightScale:   rl.GetShaderLocation(r.Shader, "heightScale"),
		pointCount:    rl.GetShaderLocation(r.Shader, "pointCount"),
		pointPosition: rl.GetShaderLocation(r.Shader, "pointPosition"),
		pointColor:    rl.GetShaderLocation(r.Shader, "pointColor"),
		pointRange:    rl.GetShaderLocation(r.Shader, "pointRange"),
	}

	r.ShadowMap = loadShadowmapRenderTexture(ShadowMapResolution, ShadowMapResolution)
}

// Prepare assigns the lighting shader and shadow map to a renderer. It is
// applied to every renderer, including models that load after startup.
func (r *Renderer) Prepare(mr *components.ModelRenderer) {
	mr.SetShader(r.Shader)
	mr.BindShadowMap(r.ShadowMap.Depth)
}

func (r *Renderer) SetLight(light *components.DirectionalLight) {
	r.Light = light
	r.LightCamera = light.GetLightCamera(r.orthoSize)
	if r.Shader.ID == 0 {
		// Not initialized; nothing to upload to
		return
	}

	rl.SetShaderValue(r.Shader, r.u.lightDir, []float32{light.Direction.X, light.Direction.Y, light.Direction.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.Shader, r.u.lightColor, light.GetColorFloat(), rl.ShaderUniformVec4)
	rl.SetShaderValue(r.Shader, r.u.ambient, light.GetAmbientFloat(), rl.ShaderUniformVec4)
}

// DrawShadowMap renders the depth of every visible shadow caster from the
// sun. Call it before BeginDrawing.
func (r *Renderer) DrawShadowMap(scene *engine.Scene) {
	if !r.Shadows || r.Light == nil || !r.Light.CastShadow {
		return
	}

	rl.BeginTextureMode(r.ShadowMap)
	rl.ClearBackground(rl.White)

	rl.BeginMode3D(r.LightCamera)

	halfSize := r.LightCamera.Fovy / 2.0
	shadowProj := rl.MatrixOrtho(
		-halfSize, halfSize,
		-halfSize, halfSize,
		ShadowNear, ShadowFar,
	)
	rl.SetMatrixProjection(shadowProj)

	lightView := rl.GetMatrixModelview()
	lightProj := rl.GetMatrixProjection()

	rl.SetCullFace(0)
	forEachRenderer(scene, func(mr *components.ModelRenderer) {
		if mr.CastShadow {
			mr.DrawWithShader(r.DepthShader)
		}
	})
	rl.SetCullFace(1)

	rl.EndMode3D()
	rl.EndTextureMode()

	rl.Viewport(0, 0, int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))

	r.MatLightVP = rl.MatrixMultiply(lightView, lightProj)
}

// DrawScene draws every visible renderer inside the frustum. Call it inside
// BeginMode3D.
func (r *Renderer) DrawScene(scene *engine.Scene, cameraPos rl.Vector3, frustum Frustum) {
	rl.SetShaderValue(r.Shader, r.u.viewPos, []float32{cameraPos.X, cameraPos.Y, cameraPos.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValueMatrix(r.Shader, r.u.matLightVP, r.MatLightVP)
	rl.SetShaderValue(r.Shader, r.u.shadows, []float32{boolFloat(r.Shadows)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.Shader, r.u.heightScale, []float32{r.HeightScale}, rl.ShaderUniformFloat)
	r.uploadPointLights(scene)

	forEachRenderer(scene, func(mr *components.ModelRenderer) {
		if mr.BoundingRadius > 0 {
			g := mr.GetGameObject()
			s := g.WorldScale()
			if !frustum.ContainsSphere(g.WorldPosition(), mr.BoundingRadius*max(s.X, s.Y, s.Z)) {
				return
			}
		}
		mat := mr.Material
		rl.SetShaderValue(r.Shader, r.u.emissive, mat.EmissiveFloat(), rl.ShaderUniformVec3)
		rl.SetShaderValue(r.Shader, r.u.mapMask, []float32{float32(mat.Mask())}, rl.ShaderUniformFloat)
		rl.SetShaderValue(r.Shader, r.u.receiveShadow, []float32{boolFloat(mr.ReceiveShadow)}, rl.ShaderUniformFloat)
		mr.Draw()
	})
}

func (r *Renderer) uploadPointLights(scene *engine.Scene) {
	lights := CollectPointLights(scene, MaxPointLights)

	r.pointPos = r.pointPos[:0]
	r.pointColor = r.pointColor[:0]
	r.pointRange = r.pointRange[:0]
	for _, l := range lights {
		p := l.GetPosition()
		r.pointPos = append(r.pointPos, p.X, p.Y, p.Z)
		r.pointColor = append(r.pointColor, l.GetColorFloat()...)
		r.pointRange = append(r.pointRange, l.Radius)
	}

	rl.SetShaderValue(r.Shader, r.u.pointCount, []float32{float32(len(lights))}, rl.ShaderUniformFloat)
	if len(lights) == 0 {
		return
	}
	n := int32(len(lights))
	rl.SetShaderValueV(r.Shader, r.u.pointPosition, r.pointPos, rl.ShaderUniformVec3, n)
	rl.SetShaderValueV(r.Shader, r.u.pointColor, r.pointColor, rl.ShaderUniformVec3, n)
	rl.SetShaderValueV(r.Shader, r.u.pointRange, r.pointRange, rl.ShaderUniformFloat, n)
}

// CollectPointLights returns up to limit enabled point lights in scene order.
func CollectPointLights(scene *engine.Scene, limit int) []*components.PointLight {
	var lights []*components.PointLight
	scene.Walk(func(g *engine.GameObject) bool {
		if !g.Active || len(lights) >= limit {
			return false
		}
		if l := engine.GetComponent[*components.PointLight](g); l != nil && l.Enabled() {
			lights = append(lights, l)
		}
		return true
	})
	return lights
}

// forEachRenderer visits renderers of active nodes, skipping hidden subtrees.
func forEachRenderer(scene *engine.Scene, fn func(*components.ModelRenderer)) {
	scene.Walk(func(g *engine.GameObject) bool {
		if !g.Active {
			return false
		}
		for _, c := range g.Components() {
			if mr, ok := c.(*components.ModelRenderer); ok {
				fn(mr)
			}
		}
		return true
	})
}

// Frustum returns the culling frustum for cam at the viewport's aspect.
func (r *Renderer) Frustum(cam rl.Camera3D, aspect, near, far float32) Frustum {
	return ExtractFrustum(physics.ViewMatrix(cam), physics.ProjectionMatrix(cam, aspect, near, far))
}

func (r *Renderer) Unload(scene *engine.Scene) {
	forEachRenderer(scene, func(mr *components.ModelRenderer) {
		mr.Unload()
	})
	rl.UnloadShader(r.Shader)
	rl.UnloadShader(r.DepthShader)
	rl.UnloadRenderTexture(r.ShadowMap)
}

func boolFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func loadShadowmapRenderTexture(width, height int32) rl.RenderTexture2D {
	target := rl.RenderTexture2D{}

	target.ID = rl.LoadFramebuffer()
	target.Texture.Width = width
	target.Texture.Height = height

	if target.ID > 0 {
		rl.EnableFramebuffer(target.ID)

		target.Depth.ID = rl.LoadTextureDepth(width, height, false)
		target.Depth.Width = width
		target.Depth.Height = height
		target.Depth.Format = 19
		target.Depth.Mipmaps = 1

		rl.FramebufferAttach(target.ID, target.Depth.ID, rl.AttachmentDepth, rl.AttachmentTexture2d, 0)

		rl.DisableFramebuffer()
	}

	return target
}
