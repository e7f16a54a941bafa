package math

func TransformCreate() *Transform {
	return TransformFromPositionRotationScale(NewVector3dZero(), NewQuaterniondIdentity(), NewVector3dOne())
}

func TransformFromPosition(position Vector3d) *Transform {
	return TransformFromPositionRotationScale(position, NewQuaterniondIdentity(), NewVector3dOne())
}

func TransformFromRotation(rotation Quaterniond) *Transform {
	return TransformFromPositionRotationScale(NewVector3dZero(), rotation, NewVector3dOne())
}

func TransformFromPositionRotation(position Vector3d, rotation Quaterniond) *Transform {
	return TransformFromPositionRotationScale(position, rotation, NewVector3dOne())
}

func TransformFromPositionRotationScale(position Vector3d, rotation Quaterniond, scale Vector3d) *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(position, rotation, scale)
	t.Local.Identity()
	t.Parent = nil
	return t
}

func (t *Transform) SetPosition(position Vector3d) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vector3d) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(rotation Quaterniond) {
	t.Rotation = rotation
	t.IsDirty = true
}

// Rotate applies rotation after the current orientation.
func (t *Transform) Rotate(rotation Quaterniond) {
	t.Rotation = rotation.Mul(t.Rotation).Normalized()
	t.IsDirty = true
}

func (t *Transform) SetScale(scale Vector3d) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) ScaleIt(scale Vector3d) {
	t.Scale = t.Scale.Mul(scale)
	t.IsDirty = true
}

func (t *Transform) SetPositionRotation(position Vector3d, rotation Quaterniond) {
	t.Position = position
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vector3d, rotation Quaterniond, scale Vector3d) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) TranslateRotate(translation Vector3d, rotation Quaterniond) {
	t.Translate(translation)
	t.Rotate(rotation)
}

/**
 * @brief Returns the local matrix T * R * S, rebuilding it only when the
 * position, rotation or scale changed since the last call.
 */
func (t *Transform) GetLocal() Matrix4d {
	if t == nil {
		return *NewMatrix4d()
	}
	if t.IsDirty {
		t.Local.TranslationRotateScale(t.Position, t.Rotation, t.Scale)
		t.IsDirty = false
	}
	return t.Local
}

/**
 * @brief Returns the world matrix: the parent's world matrix multiplied by
 * the local one, so the local transform is applied first.
 */
func (t *Transform) GetWorld() Matrix4d {
	if t == nil {
		return *NewMatrix4d()
	}
	l := t.GetLocal()
	if t.Parent != nil {
		p := t.Parent.GetWorld()
		return *p.MulAffine(&l)
	}
	return l
}

// GetWorldInverse returns the inverse of GetWorld.
func (t *Transform) GetWorldInverse() Matrix4d {
	w := t.GetWorld()
	return *w.InvertAffine()
}
