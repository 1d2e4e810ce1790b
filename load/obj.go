// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// obj.go is a convenience Wavefront .obj parser, adapted from the teacher's
// load/obj.go: trimmed to the subset spec.md §6 names (only "v " and "f "
// lines, triangle faces, no normals/texture coordinates/groups/materials),
// and wired into physics.Polyhedron's vertex/face-loop constructor instead
// of an OpenGL vertex/normal/index buffer.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ironvale/rigidphys/math/lin"
	"github.com/ironvale/rigidphys/physics"
)

// Obj reads the vertex and triangle-face data out of the Wavefront .obj
// file at path. The path must end in ".obj"; every "f " line must name
// exactly three 1-based vertex indices.
func Obj(path string) (vertices []lin.V3, triangles [][3]int, err error) {
	if !strings.HasSuffix(path, ".obj") {
		return nil, nil, fmt.Errorf("load: %q does not have an .obj extension", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return parseObj(f)
}

// ObjPolyhedron loads path and builds a physics.Polyhedron from its
// vertex/face data in one step.
func ObjPolyhedron(path string) (*physics.Polyhedron, error) {
	vertices, triangles, err := Obj(path)
	if err != nil {
		return nil, err
	}
	return physics.NewMeshPolyhedron(vertices, triangles)
}

func parseObj(r io.Reader) (vertices []lin.V3, triangles [][3]int, err error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			v, e := parseVertex(line)
			if e != nil {
				return nil, nil, fmt.Errorf("load: line %d: %w", lineNum, e)
			}
			vertices = append(vertices, v)
		case strings.HasPrefix(line, "f "):
			tri, e := parseFace(line)
			if e != nil {
				return nil, nil, fmt.Errorf("load: line %d: %w", lineNum, e)
			}
			triangles = append(triangles, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(vertices) == 0 || len(triangles) == 0 {
		return nil, nil, fmt.Errorf("load: no vertex or face data found")
	}
	return vertices, triangles, nil
}

func parseVertex(line string) (lin.V3, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return lin.V3{}, fmt.Errorf("malformed vertex line %q", line)
	}
	x, ex := strconv.ParseFloat(fields[1], 64)
	y, ey := strconv.ParseFloat(fields[2], 64)
	z, ez := strconv.ParseFloat(fields[3], 64)
	if ex != nil || ey != nil || ez != nil {
		return lin.V3{}, fmt.Errorf("malformed vertex line %q", line)
	}
	return lin.V3{X: x, Y: y, Z: z}, nil
}

func parseFace(line string) ([3]int, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return [3]int{}, fmt.Errorf("non-triangle face %q", line)
	}
	var tri [3]int
	for i := 0; i < 3; i++ {
		idx, e := strconv.Atoi(fields[i+1])
		if e != nil {
			return [3]int{}, fmt.Errorf("malformed face line %q", line)
		}
		tri[i] = idx - 1
	}
	return tri, nil
}
