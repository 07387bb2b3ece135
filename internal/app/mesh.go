package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldscan/surveyor/pkg/geometry"
	"github.com/fieldscan/surveyor/pkg/stl"
)

// modelToMesh converts the surface model to a raylib mesh with baked diffuse
// lighting in the vertex colors
func modelToMesh(model *stl.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Diffuse shading with a 30% ambient floor; steel-gray tint
		intensity := math.Max(0.3, -normal.Dot(lightDir))
		r := uint8(190 * intensity * 0.8)
		g := uint8(190 * intensity * 0.85)
		b := uint8(190 * intensity)

		for _, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = 0
			texcoords[idx*2+1] = 0
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = 255
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
	}
	if len(normals) > 0 {
		mesh.Normals = &normals[0]
	}
	if len(texcoords) > 0 {
		mesh.Texcoords = &texcoords[0]
	}
	if len(colors) > 0 {
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)
	return mesh
}

// drawWireframe overlays the triangle edges on the filled surface. Shared
// edges are drawn once.
func (app *App) drawWireframe() {
	wireColor := rl.NewColor(100, 100, 100, 200)
	drawn := make(map[[2]geometry.Vector3]bool)

	for _, triangle := range app.Model.model.Triangles {
		edges := [3][2]geometry.Vector3{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		}
		for _, edge := range edges {
			key := edge
			if edge[1].X < edge[0].X ||
				(edge[1].X == edge[0].X && edge[1].Y < edge[0].Y) ||
				(edge[1].X == edge[0].X && edge[1].Y == edge[0].Y && edge[1].Z < edge[0].Z) {
				key = [2]geometry.Vector3{edge[1], edge[0]}
			}
			if drawn[key] {
				continue
			}
			drawn[key] = true
			rl.DrawLine3D(toRaylib(edge[0]), toRaylib(edge[1]), wireColor)
		}
	}
}
