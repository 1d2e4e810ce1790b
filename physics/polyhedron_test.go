// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"math"
	"testing"

	"github.com/ironvale/rigidphys/math/lin"
)

func TestNewCuboidPolyhedronFaceNormalsAreUnitAndOutward(t *testing.T) {
	p, err := NewCuboidPolyhedron(1, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	centroid := p.centroid()
	for i, f := range p.Faces {
		if mag := f.Normal.Len(); math.Abs(mag-1) > 1e-9 {
			t.Errorf("face %d: |normal| = %v, want 1", i, mag)
		}
		anchor := p.Vertices[p.Edges[f.BoundingEdges[0]].Start]
		diff := lin.NewV3().Sub(&centroid, &anchor)
		if diff.Dot(&f.Normal) > 1e-9 {
			t.Errorf("face %d: centroid projects onto the positive side of its own plane", i)
		}
	}
}

func TestPolyhedronUpdateIsIdempotent(t *testing.T) {
	p, err := NewCuboidPolyhedron(1, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.update(); err != nil {
		t.Fatalf("first update: %v", err)
	}
	first := append([]Edge{}, p.Edges...)
	firstNormals := make([]lin.V3, len(p.Faces))
	for i, f := range p.Faces {
		firstNormals[i] = f.Normal
	}

	if err := p.update(); err != nil {
		t.Fatalf("second update: %v", err)
	}
	for i, e := range p.Edges {
		if e != first[i] {
			t.Errorf("edge %d changed on a repeated update: %+v != %+v", i, e, first[i])
		}
	}
	for i, f := range p.Faces {
		if f.Normal != firstNormals[i] {
			t.Errorf("face %d normal changed on a repeated update", i)
		}
	}
}

func TestNewPolyhedronRejectsCoincidentEdgeEndpoints(t *testing.T) {
	vertices := []lin.V3{{}, {}}
	_, err := NewPolyhedron(vertices, [][2]int{{0, 1}}, [][]int{{0, 1}})
	if err == nil {
		t.Fatal("expected an error for coincident edge endpoints")
	}
	if _, ok := err.(*DegenerateGeometryError); !ok {
		t.Errorf("expected *DegenerateGeometryError, got %T", err)
	}
}

func TestNewMeshPolyhedronBuildsOneFacePerTriangle(t *testing.T) {
	vertices := []lin.V3{{}, {X: 1}, {Y: 1}, {Z: 1}}
	triangles := [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}}
	p, err := NewMeshPolyhedron(vertices, triangles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Faces) != len(triangles) {
		t.Fatalf("expected %d faces, got %d", len(triangles), len(p.Faces))
	}
	if len(p.Edges) != len(triangles)*3 {
		t.Fatalf("expected %d edges, got %d", len(triangles)*3, len(p.Edges))
	}
}

func TestEnclosingPlanesOneBoundingEdgePerPlane(t *testing.T) {
	p, err := NewCuboidPolyhedron(1, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, f := range p.Faces {
		planes := p.EnclosingPlanes(i)
		if len(planes) != len(f.BoundingEdges) {
			t.Errorf("face %d: %d planes, want %d", i, len(planes), len(f.BoundingEdges))
		}
	}
}
