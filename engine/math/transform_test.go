package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTransformDefaultsToIdentity(t *testing.T) {
	tr := NewTransform()
	if !tr.GetWorld().Equal(NewMat4Identity()) {
		t.Fatalf("default world = %v", tr.GetWorld())
	}
	var nilTransform *Transform
	if !nilTransform.GetWorld().Equal(NewMat4Identity()) {
		t.Fatal("nil transform should yield identity")
	}
}

func TestTransformLocalIsTranslateRotateScale(t *testing.T) {
	rot := NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI)
	tr := NewTransformFromPositionRotationScale(Vec3{0, 0, 5}, rot, Vec3{2, 2, 2})

	got := NewVec3(1, 0, 0).Transform(tr.GetLocal())
	assertVec3Near(t, got, Vec3{0, 2, 5}, tolerance)

	ref := mgl32.Translate3D(0, 0, 5).
		Mul4(toMgl(rot).Mat4()).
		Mul4(mgl32.Scale3D(2, 2, 2))
	assertMat4Near(t, tr.GetLocal(), ref, 1e-5)
}

func TestTransformParentChain(t *testing.T) {
	parent := NewTransformFromPosition(Vec3{10, 0, 0})
	child := NewTransformFromPosition(Vec3{0, 1, 0})
	child.Parent = parent

	assertVec3Near(t, NewVec3Zero().Transform(child.GetWorld()), Vec3{10, 1, 0}, tolerance)

	parent.SetRotation(NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI))
	// child offset (0,1,0) is rotated into (-1,0,0) by the parent
	assertVec3Near(t, NewVec3Zero().Transform(child.GetWorld()), Vec3{9, 0, 0}, tolerance)
}

func TestTransformCachesLocalUntilDirty(t *testing.T) {
	tr := NewTransformFromPosition(Vec3{1, 2, 3})
	first := tr.GetLocal()
	if tr.IsDirty {
		t.Fatal("GetLocal should clear the dirty flag")
	}
	tr.Position = Vec3{9, 9, 9} // bypasses the setter, so the cache is kept
	if !tr.GetLocal().Equal(first) {
		t.Fatal("local matrix rebuilt without the dirty flag")
	}

	tr.Translate(Vec3{1, 0, 0})
	if got := tr.GetLocal(); got.Data[12] != 10 {
		t.Fatalf("translated local = %v", got)
	}

	tr.ScaleBy(Vec3{3, 3, 3})
	if got := tr.GetLocal(); got.Data[0] != 3 {
		t.Fatalf("scaled local = %v", got)
	}
}

func TestTransformRotateAppliesInWorldOrder(t *testing.T) {
	tr := NewTransformFromRotation(NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI))
	tr.Rotate(NewQuatFromAxisAngle(NewVec3Right(), K_HALF_PI))
	// x -> y (about z), then y -> z (about x)
	got := NewVec3(1, 0, 0).Transform(tr.GetLocal())
	assertVec3Near(t, got, Vec3{0, 0, 1}, tolerance)
}
