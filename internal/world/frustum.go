package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// plane is a*x + b*y + c*z + d = 0 with a unit normal (a, b, c).
type plane struct {
	normal rl.Vector3
	d      float32
}

func (p plane) distance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.normal, point) + p.d
}

// Frustum is the view volume used to cull props: left, right, bottom, top,
// near and far planes, normals pointing inward.
type Frustum struct {
	planes [6]plane
}

// ExtractFrustum derives the six planes from the combined view-projection
// matrix (Gribb/Hartmann).
func ExtractFrustum(view, proj rl.Matrix) Frustum {
	vp := rl.MatrixMultiply(view, proj)
	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}
	w := rows[3]

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		f.planes[axis*2] = planeFrom(w, rows[axis], 1)
		f.planes[axis*2+1] = planeFrom(w, rows[axis], -1)
	}
	return f
}

// planeFrom builds w + sign*row, normalized.
func planeFrom(w, row [4]float32, sign float32) plane {
	p := plane{
		normal: rl.Vector3{X: w[0] + sign*row[0], Y: w[1] + sign*row[1], Z: w[2] + sign*row[2]},
		d:      w[3] + sign*row[3],
	}
	if length := rl.Vector3Length(p.normal); length > 0 {
		p.normal = rl.Vector3Scale(p.normal, 1/length)
		p.d /= length
	}
	return p
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if p.distance(center) < -radius {
			return false
		}
	}
	return true
}
