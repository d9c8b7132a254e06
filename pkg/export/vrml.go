package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/gorim/pkg/geometry"
	"github.com/philipparndt/gorim/pkg/rim"
	"github.com/philipparndt/gorim/pkg/sphere"
)

// VRMLWriter writes a VRML97 document made of line sets and point sets.
// The first write error sticks; later calls become no-ops and Flush
// reports it.
type VRMLWriter struct {
	w         *bufio.Writer
	precision int
	header    bool
	err       error
}

// NewVRMLWriter creates a writer that prints coordinates with the given
// number of decimals.
func NewVRMLWriter(w io.Writer, precision int) *VRMLWriter {
	return &VRMLWriter{w: bufio.NewWriter(w), precision: precision}
}

func (v *VRMLWriter) printf(format string, args ...any) {
	if v.err != nil {
		return
	}
	_, v.err = fmt.Fprintf(v.w, format, args...)
}

func (v *VRMLWriter) writeHeader() {
	if !v.header {
		v.printf("#VRML V2.0 utf8\n")
		v.header = true
	}
}

func (v *VRMLWriter) coord(p geometry.Vector3) string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'f', v.precision, 64) }
	return f(p.X) + " " + f(p.Y) + " " + f(p.Z)
}

func colour(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("%.3f %.3f %.3f", float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
}

// Comment writes a comment block describing the sphere set
func (v *VRMLWriter) Comment(set *sphere.Set) {
	v.writeHeader()
	v.printf("# %s\n", set.Name)
	for i, s := range set.Spheres {
		v.printf("# sphere %d: center %s radius %s\n", i, v.coord(s.Center),
			strconv.FormatFloat(s.Radius, 'f', v.precision, 64))
	}
}

// LineSet writes one IndexedLineSet shape. Closed polylines repeat their
// first index before the -1 terminator. Empty input writes nothing.
func (v *VRMLWriter) LineSet(lines []rim.Polyline, c color.Color) {
	var count int
	for _, l := range lines {
		count += len(l.Points)
	}
	if count == 0 {
		return
	}

	v.writeHeader()
	v.printf("Shape {\n")
	v.printf("  appearance Appearance { material Material { emissiveColor %s } }\n", colour(c))
	v.printf("  geometry IndexedLineSet {\n")
	v.printf("    coord Coordinate { point [\n")
	for _, l := range lines {
		for _, p := range l.Points {
			v.printf("      %s,\n", v.coord(p))
		}
	}
	v.printf("    ] }\n")
	v.printf("    coordIndex [\n")
	base := 0
	for _, l := range lines {
		if len(l.Points) == 0 {
			continue
		}
		v.printf("     ")
		for i := range l.Points {
			v.printf(" %d", base+i)
		}
		if l.Closed {
			v.printf(" %d", base)
		}
		v.printf(" -1,\n")
		base += len(l.Points)
	}
	v.printf("    ]\n")
	v.printf("  }\n")
	v.printf("}\n")
}

// PointSet writes one PointSet shape
func (v *VRMLWriter) PointSet(points []geometry.Vector3, c color.Color) {
	if len(points) == 0 {
		return
	}
	v.writeHeader()
	v.printf("Shape {\n")
	v.printf("  appearance Appearance { material Material { emissiveColor %s } }\n", colour(c))
	v.printf("  geometry PointSet {\n")
	v.printf("    coord Coordinate { point [\n")
	for _, p := range points {
		v.printf("      %s,\n", v.coord(p))
	}
	v.printf("    ] }\n")
	v.printf("  }\n")
	v.printf("}\n")
}

// Flush writes buffered output and returns the first error encountered
func (v *VRMLWriter) Flush() error {
	v.writeHeader()
	if v.err != nil {
		return v.err
	}
	return v.w.Flush()
}

// Darker scales the colour channels by ratio
func Darker(c color.RGBA, ratio float64) color.RGBA {
	scale := func(x uint8) uint8 { return uint8(float64(x)*ratio + 0.5) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// VRMLOptions selects what WriteVRML puts into the document.
type VRMLOptions struct {
	Precision int
	Colour    color.RGBA
	// Rims adds the rim polylines, drawn in Colour darkened by half.
	Rims bool
	// Points adds the surface samples left after interior point removal.
	Points bool
}

// WriteVRML writes the rims and/or visible surface points of a sphere set.
// res may be nil when opts.Rims is false.
func WriteVRML(w io.Writer, set *sphere.Set, res *rim.Result, opts VRMLOptions) error {
	vw := NewVRMLWriter(w, opts.Precision)
	vw.Comment(set)

	if opts.Rims && res != nil {
		vw.LineSet(res.Polylines(), Darker(opts.Colour, 0.5))
	}
	if opts.Points {
		var points []geometry.Vector3
		for _, samples := range sphere.Visible(set) {
			for _, s := range samples {
				points = append(points, s.Position)
			}
		}
		vw.PointSet(points, opts.Colour)
	}
	return vw.Flush()
}

// WriteVRMLFile is WriteVRML into a newly created file
func WriteVRMLFile(path string, set *sphere.Set, res *rim.Result, opts VRMLOptions) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WriteVRML(file, set, res, opts); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
