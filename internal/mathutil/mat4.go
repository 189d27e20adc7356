package mathutil

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a 4×4 column-major matrix (mgl64 layout). Used for model, view
// and projection transforms.
type Mat4 = mgl64.Mat4

// Vec4 is a homogeneous clip-space coordinate.
type Vec4 = mgl64.Vec4

func Mat4Identity() Mat4 {
	return mgl64.Ident4()
}

// LookAt builds a right-handed world→eye matrix.
func LookAt(eye, target, up Vec3) Mat4 {
	return mgl64.LookAtV(mgl64.Vec3(eye), mgl64.Vec3(target), mgl64.Vec3(up))
}

// Perspective builds a right-handed projection mapping the view frustum to
// the [-1,1] NDC cube. fovY is in radians.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	return mgl64.Perspective(fovY, aspect, near, far)
}

// Model builds T(position) · Ry(yaw) · S(scale).
func Model(position Vec3, scale, yaw float64) Mat4 {
	m := mgl64.Translate3D(position[0], position[1], position[2])
	if yaw != 0 {
		m = m.Mul4(mgl64.HomogRotate3DY(yaw))
	}
	return m.Mul4(mgl64.Scale3D(scale, scale, scale))
}

// TransformPoint applies an affine matrix to a point (w=1) without a
// perspective divide.
func TransformPoint(m Mat4, v Vec3) Vec3 {
	return Vec3(m.Mul4x1(mgl64.Vec3(v).Vec4(1)).Vec3())
}

// Clip transforms a point (w=1) into homogeneous clip space.
func Clip(m Mat4, v Vec3) Vec4 {
	return m.Mul4x1(mgl64.Vec3(v).Vec4(1))
}
