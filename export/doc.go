// Package export builds a PGFPlots-flavoured text document from a list of
// plot entries, preferring symbolic formulas over coordinate dumps.
//
// 🚀 Per visible entry the builder:
//
//  1. prepares the text (parse, validate, classify); a surfaced error
//     becomes a comment line and the entry contributes nothing else,
//  2. tries the symbolic transpiler; on success it emits one formula
//     plot directive over the entry's clamped domain,
//  3. on transpile failure it falls back to literal coordinates from the
//     numeric pipeline: adaptive samples for explicit curves, marching
//     squares for implicit ones, a fixed-density mesh for surfaces.
//
// ✨ Output size is bounded: 2D coordinate fallbacks are downsampled to a
// point budget (800 by default, segment endpoints always kept) and
// surfaces are meshed at a fixed export density well below the
// interactive one. The result is deterministic for fixed inputs.
//
// ⚙️ Usage:
//
//	doc := export.Document(entries, vp, nil)
//
// The builder never touches the filesystem; it returns the document as a
// string. No failure aborts processing of the remaining entries.
package export
