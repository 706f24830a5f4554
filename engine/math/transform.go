package math

/** @brief Creates a transform at the origin with identity rotation and unit scale. */
func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func NewTransformFromPosition(position Vec3) *Transform {
	return NewTransformFromPositionRotationScale(position, NewQuatIdentity(), NewVec3One())
}

func NewTransformFromRotation(rotation Quat) *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), rotation, NewVec3One())
}

func NewTransformFromPositionRotation(position Vec3, rotation Quat) *Transform {
	return NewTransformFromPositionRotationScale(position, rotation, NewVec3One())
}

func NewTransformFromPositionRotationScale(position Vec3, rotation Quat, scale Vec3) *Transform {
	t := &Transform{Local: NewMat4Identity()}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(rotation Quat) {
	t.Rotation = rotation
	t.IsDirty = true
}

// Rotate composes rotation after the current one (applied in world order).
func (t *Transform) Rotate(rotation Quat) {
	t.Rotation = rotation.Mul(t.Rotation)
	t.IsDirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) ScaleBy(scale Vec3) {
	t.Scale = t.Scale.Mul(scale)
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quat, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

/**
 * @brief Returns the local matrix T * R * S, rebuilding it only when a
 * property changed since the last call. A nil transform yields identity.
 */
func (t *Transform) GetLocal() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	if t.IsDirty {
		local := NewMat4Scale(t.Scale)
		local.Rotate(t.Rotation)
		local.Translate(t.Position)
		t.Local = local
		t.IsDirty = false
	}
	return t.Local
}

/** @brief Returns parent.GetWorld() * GetLocal(), walking up the hierarchy. */
func (t *Transform) GetWorld() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	l := t.GetLocal()
	if t.Parent != nil {
		return t.Parent.GetWorld().Mul(l)
	}
	return l
}
