package math

import "github.com/chewxy/math32"

// NewMatrix4f creates a single-precision identity matrix.
func NewMatrix4f() *Matrix4f {
	return &Matrix4f{M00: 1, M11: 1, M22: 1, M33: 1}
}

// SetMatrix4f copies src into mat, widening every element to float64.
func (mat *Matrix4d) SetMatrix4f(src Matrix4f) *Matrix4d {
	*mat = Matrix4d{
		float64(src.M00), float64(src.M01), float64(src.M02), float64(src.M03),
		float64(src.M10), float64(src.M11), float64(src.M12), float64(src.M13),
		float64(src.M20), float64(src.M21), float64(src.M22), float64(src.M23),
		float64(src.M30), float64(src.M31), float64(src.M32), float64(src.M33),
	}
	return mat
}

// Matrix4f returns mat narrowed to single precision.
func (mat *Matrix4d) Matrix4f() Matrix4f {
	var f Matrix4f
	return *f.SetMatrix4d(mat)
}

// SetMatrix4d copies src into f, narrowing every element to float32.
func (f *Matrix4f) SetMatrix4d(src Matrix4dc) *Matrix4f {
	a := src.Array()
	var n [16]float32
	for i, v := range a {
		n[i] = float32(v)
	}
	return f.SetArray(n)
}

// Matrix4d returns f widened to double precision.
func (f *Matrix4f) Matrix4d() Matrix4d {
	var d Matrix4d
	return *d.SetMatrix4f(*f)
}

func (f *Matrix4f) Identity() *Matrix4f {
	*f = Matrix4f{M00: 1, M11: 1, M22: 1, M33: 1}
	return f
}

// Array returns the 16 elements in column-major order.
func (f *Matrix4f) Array() [16]float32 {
	return [16]float32{
		f.M00, f.M01, f.M02, f.M03,
		f.M10, f.M11, f.M12, f.M13,
		f.M20, f.M21, f.M22, f.M23,
		f.M30, f.M31, f.M32, f.M33,
	}
}

func (f *Matrix4f) SetArray(a [16]float32) *Matrix4f {
	*f = Matrix4f{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	}
	return f
}

// Mul multiplies f by right: f * right.
func (f *Matrix4f) Mul(right *Matrix4f) *Matrix4f {
	a, b := f.Array(), right.Array()
	var r [16]float32
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = a[row]*b[c*4] + a[4+row]*b[c*4+1] + a[8+row]*b[c*4+2] + a[12+row]*b[c*4+3]
		}
	}
	return f.SetArray(r)
}

// Translation sets f to a translation matrix.
func (f *Matrix4f) Translation(x, y, z float32) *Matrix4f {
	*f = Matrix4f{M00: 1, M11: 1, M22: 1, M30: x, M31: y, M32: z, M33: 1}
	return f
}

// RotationY sets f to a rotation of angle radians about the Y axis.
func (f *Matrix4f) RotationY(angle float32) *Matrix4f {
	sin, cos := math32.Sincos(angle)
	*f = Matrix4f{M00: cos, M02: -sin, M11: 1, M20: sin, M22: cos, M33: 1}
	return f
}

// SetPerspective sets f to a right-handed OpenGL perspective projection.
func (f *Matrix4f) SetPerspective(fovy, aspect, zNear, zFar float32) *Matrix4f {
	h := math32.Tan(fovy * 0.5)
	*f = Matrix4f{
		M00: 1 / (h * aspect),
		M11: 1 / h,
		M22: (zFar + zNear) / (zNear - zFar),
		M23: -1,
		M32: (zFar + zFar) * zNear / (zNear - zFar),
	}
	return f
}

// Transform multiplies v by f.
func (f *Matrix4f) Transform(x, y, z, w float32) (float32, float32, float32, float32) {
	return f.M00*x + f.M10*y + f.M20*z + f.M30*w,
		f.M01*x + f.M11*y + f.M21*z + f.M31*w,
		f.M02*x + f.M12*y + f.M22*z + f.M32*w,
		f.M03*x + f.M13*y + f.M23*z + f.M33*w
}

// Equals reports whether every element differs by at most delta.
func (f *Matrix4f) Equals(other *Matrix4f, delta float32) bool {
	b := other.Array()
	for i, v := range f.Array() {
		if math32.Abs(v-b[i]) > delta {
			return false
		}
	}
	return true
}

// Float32s copies the elements into dest at offset.
func (f *Matrix4f) Float32s(dest []float32, offset int) error {
	if offset < 0 || len(dest)-offset < 16 {
		return bufferError("[]float32", len(dest), offset, 16)
	}
	a := f.Array()
	copy(dest[offset:], a[:])
	return nil
}
