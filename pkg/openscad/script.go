package openscad

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/philipparndt/gorim/pkg/sphere"
)

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WriteScript writes an OpenSCAD program modelling the union of all
// spheres of the set. segments sets $fn.
func WriteScript(w io.Writer, set *sphere.Set, segments int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// %s: %d spheres\n", set.Name, len(set.Spheres))
	fmt.Fprintf(bw, "$fn = %d;\n\n", segments)
	fmt.Fprintf(bw, "union() {\n")
	for _, s := range set.Spheres {
		fmt.Fprintf(bw, "    translate([%s, %s, %s]) sphere(r = %s);\n",
			num(s.Center.X), num(s.Center.Y), num(s.Center.Z), num(s.Radius))
	}
	fmt.Fprintf(bw, "}\n")

	return bw.Flush()
}
