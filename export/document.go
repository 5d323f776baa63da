package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/plotf/contour"
	"github.com/katalvlaran/plotf/core"
	"github.com/katalvlaran/plotf/prepare"
	"github.com/katalvlaran/plotf/sampler"
	"github.com/katalvlaran/plotf/transpile"
)

// Document builds a 2D PGFPlots document from the visible entries.
//
// Entries that fail preparation contribute a comment line naming the
// error; every other failure mode is local to its entry, so one broken
// entry never suppresses the rest.
func Document(entries []prepare.RawEntry, vp core.Viewport, opts *Options) string {
	var b strings.Builder
	b.WriteString("\\begin{tikzpicture}\n")
	fmt.Fprintf(&b, "\\begin{axis}[xmin=%s, xmax=%s, ymin=%s, ymax=%s]\n",
		num(vp.XMin), num(vp.XMax), num(vp.YMin), num(vp.YMax))

	for _, e := range entries {
		if !e.Visible {
			continue
		}
		writeEntry2D(&b, e, vp, opts)
	}

	b.WriteString("\\end{axis}\n\\end{tikzpicture}\n")

	return b.String()
}

func writeEntry2D(b *strings.Builder, e prepare.RawEntry, vp core.Viewport, opts *Options) {
	pe := prepare.Prepare2D(e.Text)
	if pe.Err != nil {
		fmt.Fprintf(b, "%% entry %s: %v\n", e.ID, pe.Err)

		return
	}
	style := styleOptions(e.Style)

	if pe.Mode == prepare.ModeExplicit {
		dom := prepare.EffectiveDomain(e, vp.XRange())
		if formula, err := transpile.To2D(pe.AST, "x"); err == nil {
			fmt.Fprintf(b, "\\addplot[%s, domain=%s:%s, samples=%d] {%s};\n",
				style, num(dom.Min), num(dom.Max), opts.formulaSamples(), formula)

			return
		}
		segs, err := sampler.Sample(sampler.Func(pe.Func()), dom, vp,
			&sampler.Options{Samples: e.SampleDensity})
		if err != nil {
			fmt.Fprintf(b, "%% entry %s: %v\n", e.ID, err)

			return
		}
		writeSegments(b, style, downsample(segs, opts.maxPoints()))

		return
	}

	// Implicit relations have no 2D formula form on the target; always
	// fall back to the extracted contour.
	segs, err := contour.March(contour.Func2(pe.Func2()), vp,
		&contour.Options{Density: e.SampleDensity})
	if err != nil {
		fmt.Fprintf(b, "%% entry %s: %v\n", e.ID, err)

		return
	}
	writeSegments(b, style, downsample(segs, opts.maxPoints()))
}

// downsample thins the entry's segments to at most budget points in
// total. Thinning keeps every stride-th point plus each segment's last
// point, so segment endpoints always survive.
func downsample(segs []core.Segment, budget int) []core.Segment {
	total := 0
	for _, s := range segs {
		total += len(s)
	}
	if total <= budget {
		return segs
	}
	stride := (total + budget - 1) / budget

	out := make([]core.Segment, 0, len(segs))
	for _, s := range segs {
		thin := make(core.Segment, 0, len(s)/stride+2)
		for i := 0; i < len(s); i += stride {
			thin = append(thin, s[i])
		}
		if last := s[len(s)-1]; thin[len(thin)-1] != last {
			thin = append(thin, last)
		}
		if len(thin) >= 2 {
			out = append(out, thin)
		}
	}

	return out
}

func writeSegments(b *strings.Builder, style string, segs []core.Segment) {
	for _, s := range segs {
		fmt.Fprintf(b, "\\addplot[%s] coordinates {", style)
		for _, p := range s {
			fmt.Fprintf(b, " (%s, %s)", coord(p.X), coord(p.Y))
		}
		b.WriteString(" };\n")
	}
}

// styleOptions renders an entry's stroke style as PGFPlots option text.
func styleOptions(s prepare.Style) string {
	color := s.Color
	if color == "" {
		color = "blue"
	}
	parts := []string{color}
	if s.Width > 0 {
		parts = append(parts, "line width="+num(s.Width)+"pt")
	}
	if s.Dash {
		parts = append(parts, "dashed")
	}

	return strings.Join(parts, ", ")
}

// num renders an exact option value (axis limits, domains, widths).
func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// coord renders a sampled coordinate with enough digits for plotting.
func coord(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }
