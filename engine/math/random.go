package math

import "golang.org/x/exp/rand"

// RandomAffine returns a well-conditioned affine matrix built from a random
// rotation, a scale in [0.5, 2) and a translation in [-10, 10).
func RandomAffine(r *rand.Rand) Matrix4d {
	axis := Vector3d{r.Float64()*2 - 1, r.Float64()*2 - 1, r.Float64()*2 - 1}
	if axis.LengthSquared() < 1e-6 {
		axis = NewVector3dUp()
	}
	q := NewQuaterniondAxisAngle(axis, r.Float64()*K_PI_2)
	s := Vector3d{0.5 + r.Float64()*1.5, 0.5 + r.Float64()*1.5, 0.5 + r.Float64()*1.5}
	t := Vector3d{r.Float64()*20 - 10, r.Float64()*20 - 10, r.Float64()*20 - 10}
	var mat Matrix4d
	mat.TranslationRotateScale(t, q, s)
	return mat
}

// RandomMatrix returns a matrix with every element uniform in [-1, 1).
func RandomMatrix(r *rand.Rand) Matrix4d {
	var a [16]float64
	for i := range a {
		a[i] = r.Float64()*2 - 1
	}
	var mat Matrix4d
	return *mat.SetArray(a)
}
