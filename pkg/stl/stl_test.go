package stl

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gorim/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tetra returns a closed, outward-wound tetrahedron with volume 1/6
func tetra() *Model {
	o := geometry.NewVector3(0, 0, 0)
	x := geometry.NewVector3(1, 0, 0)
	y := geometry.NewVector3(0, 1, 0)
	z := geometry.NewVector3(0, 0, 1)

	m := NewModel("tetra")
	for _, f := range [][3]geometry.Vector3{{o, y, x}, {o, x, z}, {o, z, y}, {x, y, z}} {
		t := geometry.NewTriangle(geometry.Vector3{}, f[0], f[1], f[2])
		t.Normal = t.CalculateNormal()
		m.AddTriangle(t)
	}
	return m
}

func TestModelMeasures(t *testing.T) {
	m := tetra()
	assert.Equal(t, 4, m.TriangleCount())
	assert.InDelta(t, 1.0/6, m.Volume(), 1e-12)
	assert.InDelta(t, 1.5+0.8660254037844386, m.SurfaceArea(), 1e-12)

	bbox := m.BoundingBox()
	assert.Equal(t, geometry.NewVector3(1, 1, 1), bbox.Max)
}

func assertSameModel(t *testing.T, want, got *Model) {
	t.Helper()
	assert.Equal(t, want.Name, got.Name)
	require.Equal(t, want.TriangleCount(), got.TriangleCount())
	for i := range want.Triangles {
		w, g := want.Triangles[i], got.Triangles[i]
		assert.True(t, w.V1.ApproxEqual(g.V1, 1e-6))
		assert.True(t, w.V2.ApproxEqual(g.V2, 1e-6))
		assert.True(t, w.V3.ApproxEqual(g.V3, 1e-6))
		assert.True(t, w.Normal.ApproxEqual(g.Normal, 1e-6))
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, tetra()))
	assert.True(t, strings.HasPrefix(buf.String(), "solid tetra\n"))

	got, err := Read(&buf)
	require.NoError(t, err)
	assertSameModel(t, tetra(), got)
}

func TestBinaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, tetra()))
	assert.Equal(t, 80+4+4*50, buf.Len())

	got, err := Read(&buf)
	require.NoError(t, err)
	assertSameModel(t, tetra(), got)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, asBinary := range []bool{false, true} {
		path := filepath.Join(dir, "tetra.stl")
		require.NoError(t, tetra().Write(path, asBinary))

		got, err := Parse(path)
		require.NoError(t, err)
		assert.InDelta(t, 1.0/6, got.Volume(), 1e-6)
	}
}

func TestWriteFillsMissingNormals(t *testing.T) {
	m := NewModel("n")
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0), geometry.NewVector3(0, 1, 0)))

	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, m))
	assert.Contains(t, buf.String(), "facet normal 0 0 1")
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("solid x\nfacet normal 0 0 a\n"))
	assert.Error(t, err)

	_, err = Read(strings.NewReader("solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nendloop\nendfacet\n"))
	assert.Error(t, err)

	_, err = Read(strings.NewReader("abc"))
	assert.Error(t, err)

	// binary header claiming a triangle that is not there
	data := make([]byte, 84)
	data[80] = 1
	_, err = Read(bytes.NewReader(data))
	assert.Error(t, err)
}
