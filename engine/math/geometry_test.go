package math

import "testing"

func TestNewVertices(t *testing.T) {
	positions := []float32{-0.5, -0.5, 0, 0, 0.5, 0, 0.5, -0.5, 0}
	uvs := []float32{0, 0, 0.5, 1, 1, 0}

	vertices, err := NewVertices(positions, uvs)
	if err != nil {
		t.Fatal(err)
	}
	if len(vertices) != 3 {
		t.Fatalf("len = %d", len(vertices))
	}
	if !vertices[1].Position.Equal(Vec3{0, 0.5, 0}) || !vertices[1].Texcoord.Equal(Vec2{0.5, 1}) {
		t.Fatalf("vertex 1 = %+v", vertices[1])
	}

	flat := FlattenPositions(vertices)
	for i := range positions {
		if flat[i] != positions[i] {
			t.Fatalf("FlattenPositions = %v", flat)
		}
	}
	if got := FlattenTexcoords(vertices); len(got) != len(uvs) || got[2] != 0.5 {
		t.Fatalf("FlattenTexcoords = %v", got)
	}
}

func TestNewVerticesRejectsRaggedBuffers(t *testing.T) {
	if _, err := NewVertices([]float32{1, 2}, nil); err == nil {
		t.Error("expected error for partial position")
	}
	if _, err := NewVertices([]float32{1, 2, 3}, []float32{1}); err == nil {
		t.Error("expected error for texcoord mismatch")
	}
	if v, err := NewVertices([]float32{1, 2, 3}, nil); err != nil || len(v) != 1 {
		t.Errorf("positions only: %v, %v", v, err)
	}
}

func TestGeometryGenerateNormals(t *testing.T) {
	vertices, _ := NewVertices([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, nil)
	GeometryGenerateNormals(vertices)
	for i, v := range vertices {
		if !v.Normal.Equal(Vec3{0, 0, 1}) {
			t.Fatalf("normal %d = %v", i, v.Normal)
		}
	}
}

func TestGeometryTransform(t *testing.T) {
	vertices, _ := NewVertices([]float32{1, 0, 0, 0, 1, 0}, nil)
	clip := GeometryTransform(vertices, NewMat4Translation(Vec3{0, 0, -2}))
	if !clip[0].Equal(Vec4{1, 0, -2, 1}) || !clip[1].Equal(Vec4{0, 1, -2, 1}) {
		t.Fatalf("clip = %v", clip)
	}
}
