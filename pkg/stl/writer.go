package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/gorim/pkg/geometry"
)

func f32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// WriteASCII writes the model in ASCII STL
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	name := strings.ReplaceAll(m.Name, "\n", " ")

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles {
		n := t.Normal
		if n.IsZero() {
			n = t.CalculateNormal()
		}
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

// WriteBinary writes the model in binary STL. The header carries the model
// name and never starts with "solid".
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], strings.TrimPrefix(m.Name, "solid"))
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return err
	}
	for _, t := range m.Triangles {
		n := t.Normal
		if n.IsZero() {
			n = t.CalculateNormal()
		}
		f := binaryFacet{Normal: f32(n), V1: f32(t.V1), V2: f32(t.V2), V3: f32(t.V3)}
		if err := binary.Write(bw, binary.LittleEndian, &f); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write stores the model at path, binary or ASCII
func (m *Model) Write(path string, asBinary bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if asBinary {
		err = WriteBinary(file, m)
	} else {
		err = WriteASCII(file, m)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
