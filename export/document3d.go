package export

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/plotf/core"
	"github.com/katalvlaran/plotf/prepare"
	"github.com/katalvlaran/plotf/surface"
	"github.com/katalvlaran/plotf/transpile"
)

// Document3D builds a surface-plot PGFPlots document from the visible
// entries over the given x and y domains.
//
// Symbolic surfaces become one formula directive each; everything else is
// meshed at SurfaceDensity and written as a grid coordinate matrix, with
// undefined points emitted as nan (the target treats them as jumps).
func Document3D(entries []prepare.RawEntry, xd, yd core.Range, opts *Options) string {
	var b strings.Builder
	b.WriteString("\\begin{tikzpicture}\n")
	fmt.Fprintf(&b, "\\begin{axis}[view={35}{30}, xmin=%s, xmax=%s, ymin=%s, ymax=%s, unbounded coords=jump]\n",
		num(xd.Min), num(xd.Max), num(yd.Min), num(yd.Max))

	for _, e := range entries {
		if !e.Visible {
			continue
		}
		writeEntry3D(&b, e, xd, yd, opts)
	}

	b.WriteString("\\end{axis}\n\\end{tikzpicture}\n")

	return b.String()
}

func writeEntry3D(b *strings.Builder, e prepare.RawEntry, xd, yd core.Range, opts *Options) {
	pe := prepare.Prepare3D(e.Text)
	if pe.Err != nil {
		fmt.Fprintf(b, "%% entry %s: %v\n", e.ID, pe.Err)

		return
	}

	if formula, err := transpile.To3D(pe.AST, "x", "y"); err == nil {
		fmt.Fprintf(b, "\\addplot3[surf, domain=%s:%s, y domain=%s:%s, samples=%d] {%s};\n",
			num(xd.Min), num(xd.Max), num(yd.Min), num(yd.Max),
			opts.formulaSamples(), formula)

		return
	}

	g, err := surface.Mesh(surface.Func2(pe.Func2()), xd, yd,
		&surface.Options{Density: SurfaceDensity})
	if err != nil {
		fmt.Fprintf(b, "%% entry %s: %v\n", e.ID, err)

		return
	}
	writeGrid(b, g)
}

// writeGrid emits the full mesh as a row-major coordinate matrix, one
// grid row per line.
func writeGrid(b *strings.Builder, g *surface.Grid) {
	fmt.Fprintf(b, "\\addplot3[surf, mesh/rows=%d] coordinates {\n", len(g.Ys))
	for j := range g.Ys {
		for i := range g.Xs {
			if !g.Def[j][i] {
				fmt.Fprintf(b, " (%s, %s, nan)", coord(g.Xs[i]), coord(g.Ys[j]))

				continue
			}
			fmt.Fprintf(b, " (%s, %s, %s)", coord(g.Xs[i]), coord(g.Ys[j]), coord(g.Z[j][i]))
		}
		b.WriteString("\n")
	}
	b.WriteString("};\n")
}
