// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"os"
	"path/filepath"
	"testing"
)

const tetrahedronObj = `
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 2 3
f 1 2 4
f 1 3 4
f 2 3 4
`

func writeObj(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("could not write fixture: %v", err)
	}
	return path
}

func TestObjRejectsNonObjExtension(t *testing.T) {
	path := writeObj(t, "tetra.txt", tetrahedronObj)
	if _, _, err := Obj(path); err == nil {
		t.Error("expected an error for a non-.obj extension")
	}
}

func TestObjRejectsMissingFile(t *testing.T) {
	if _, _, err := Obj(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestObjParsesVerticesAndTriangles(t *testing.T) {
	path := writeObj(t, "tetra.obj", tetrahedronObj)
	vertices, triangles, err := Obj(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(vertices))
	}
	if len(triangles) != 4 {
		t.Errorf("expected 4 triangular faces, got %d", len(triangles))
	}
	if triangles[0] != [3]int{0, 1, 2} {
		t.Errorf("expected 1-based indices converted to 0-based, got %v", triangles[0])
	}
}

func TestObjRejectsNonTriangleFace(t *testing.T) {
	path := writeObj(t, "quad.obj", "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")
	if _, _, err := Obj(path); err == nil {
		t.Error("expected an error for a non-triangle face")
	}
}

func TestObjPolyhedronBuildsPolyhedron(t *testing.T) {
	path := writeObj(t, "tetra.obj", tetrahedronObj)
	poly, err := ObjPolyhedron(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(poly.Vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(poly.Vertices))
	}
	if len(poly.Faces) != 4 {
		t.Errorf("expected 4 faces, got %d", len(poly.Faces))
	}
}
