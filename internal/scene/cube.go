package scene

// VertexStride is the number of float32 per cube vertex: position then
// normal.
const VertexStride = 6

// CubeVertices is a cube of side 0.5 centred on the origin, two triangles
// per face.
var CubeVertices = []float32{
	// +z
	-0.25, -0.25, 0.25, 0, 0, 1,
	0.25, -0.25, 0.25, 0, 0, 1,
	0.25, 0.25, 0.25, 0, 0, 1,
	-0.25, -0.25, 0.25, 0, 0, 1,
	0.25, 0.25, 0.25, 0, 0, 1,
	-0.25, 0.25, 0.25, 0, 0, 1,

	// +x
	0.25, -0.25, 0.25, 1, 0, 0,
	0.25, -0.25, -0.25, 1, 0, 0,
	0.25, 0.25, -0.25, 1, 0, 0,
	0.25, -0.25, 0.25, 1, 0, 0,
	0.25, 0.25, -0.25, 1, 0, 0,
	0.25, 0.25, 0.25, 1, 0, 0,

	// -z
	0.25, -0.25, -0.25, 0, 0, -1,
	-0.25, -0.25, -0.25, 0, 0, -1,
	-0.25, 0.25, -0.25, 0, 0, -1,
	0.25, -0.25, -0.25, 0, 0, -1,
	-0.25, 0.25, -0.25, 0, 0, -1,
	0.25, 0.25, -0.25, 0, 0, -1,

	// -x
	-0.25, -0.25, -0.25, -1, 0, 0,
	-0.25, -0.25, 0.25, -1, 0, 0,
	-0.25, 0.25, 0.25, -1, 0, 0,
	-0.25, -0.25, -0.25, -1, 0, 0,
	-0.25, 0.25, 0.25, -1, 0, 0,
	-0.25, 0.25, -0.25, -1, 0, 0,

	// +y
	-0.25, 0.25, 0.25, 0, 1, 0,
	0.25, 0.25, 0.25, 0, 1, 0,
	0.25, 0.25, -0.25, 0, 1, 0,
	-0.25, 0.25, 0.25, 0, 1, 0,
	0.25, 0.25, -0.25, 0, 1, 0,
	-0.25, 0.25, -0.25, 0, 1, 0,

	// -y
	-0.25, -0.25, 0.25, 0, -1, 0,
	-0.25, -0.25, -0.25, 0, -1, 0,
	0.25, -0.25, 0.25, 0, -1, 0,
	-0.25, -0.25, -0.25, 0, -1, 0,
	0.25, -0.25, -0.25, 0, -1, 0,
	0.25, -0.25, 0.25, 0, -1, 0,
}

// CubeVertexCount is the number of vertices in CubeVertices.
var CubeVertexCount = int32(len(CubeVertices) / VertexStride)
