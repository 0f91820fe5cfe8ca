package physics

import (
	"diorama/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// ToNDC maps a pixel position on a w x h surface to normalized device
// coordinates. Y points up, so the top-left pixel maps to (-1, 1).
func ToNDC(px, py, w, h float32) rl.Vector2 {
	return rl.Vector2{
		X: px/w*2 - 1,
		Y: -(py/h*2 - 1),
	}
}

// ViewMatrix returns the world-to-view transform of cam, laid out the way
// rl.MatrixMultiply and rl.MatrixPerspective expect.
func ViewMatrix(cam rl.Camera3D) rl.Matrix {
	return rl.GetCameraMatrix(cam)
}

// ProjectionMatrix returns the perspective projection of cam for the given
// aspect ratio and clip planes.
func ProjectionMatrix(cam rl.Camera3D, aspect, near, far float32) rl.Matrix {
	return rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, near, far)
}

// RayFromNDC builds the world-space pick ray through an NDC position by
// unprojecting it onto the near and far planes.
func RayFromNDC(ndc rl.Vector2, cam rl.Camera3D, aspect, near, far float32) rl.Ray {
	view := ViewMatrix(cam)
	proj := ProjectionMatrix(cam, aspect, near, far)

	nearPoint := rl.Vector3Unproject(rl.Vector3{X: ndc.X, Y: ndc.Y, Z: -1}, proj, view)
	farPoint := rl.Vector3Unproject(rl.Vector3{X: ndc.X, Y: ndc.Y, Z: 1}, proj, view)

	return rl.Ray{
		Position:  nearPoint,
		Direction: rl.Vector3Normalize(rl.Vector3Subtract(farPoint, nearPoint)),
	}
}

// RaycastQuad intersects ray with a width x length rectangle lying in the
// local XZ plane of transform, facing local +Y. This is the shape raylib's
// GenMeshPlane produces. The ray direction must be normalized.
func RaycastQuad(ray rl.Ray, transform rl.Matrix, width, length, maxDistance float32) (RaycastHit, bool) {
	inv := rl.MatrixInvert(transform)
	origin := rl.Vector3Transform(ray.Position, inv)
	dir := rl.Vector3Subtract(rl.Vector3Transform(rl.Vector3Add(ray.Position, ray.Direction), inv), origin)

	// Parallel to the plane
	if math32.Abs(dir.Y) < 1e-8 {
		return RaycastHit{}, false
	}

	// The transform is affine, so t is also the world-space distance
	t := -origin.Y / dir.Y
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	local := rl.Vector3Add(origin, rl.Vector3Scale(dir, t))
	if math32.Abs(local.X) > width/2 || math32.Abs(local.Z) > length/2 {
		return RaycastHit{}, false
	}

	worldOrigin := rl.Vector3Transform(rl.Vector3Zero(), transform)
	normal := rl.Vector3Normalize(rl.Vector3Subtract(rl.Vector3Transform(rl.Vector3{Y: 1}, transform), worldOrigin))
	if rl.Vector3DotProduct(normal, ray.Direction) > 0 {
		normal = rl.Vector3Negate(normal)
	}

	point := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
