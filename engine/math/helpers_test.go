package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

func near(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// nearRel tolerates tol relative to the larger magnitude, or tol absolute below 1.
func nearRel(a, b, tol float32) bool {
	scale := kabs(a)
	if kabs(b) > scale {
		scale = kabs(b)
	}
	if scale < 1 {
		scale = 1
	}
	return kabs(a-b) <= tol*scale
}

func isNaN(f float32) bool {
	return f != f
}

func assertMat4Near(t *testing.T, got Mat4, want [16]float32, tol float32) {
	t.Helper()
	for i := 0; i < 16; i++ {
		if !nearRel(got.Data[i], want[i], tol) {
			t.Fatalf("Data[%d] = %v, want %v\ngot  %v\nwant %v", i, got.Data[i], want[i], got.Data, want)
		}
	}
}

func assertVec3Near(t *testing.T, got, want Vec3, tol float32) {
	t.Helper()
	if !got.Compare(want, tol) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func toMgl(q Quat) mgl32.Quat {
	return mgl32.Quat{W: q.R, V: mgl32.Vec3{q.I, q.J, q.K}}
}
