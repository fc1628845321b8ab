// Package render turns a laid-out grid into output formats.
//
// Drawing the practice sheet itself (fonts, tian-zi-ge guide lines, stroke
// animation) is the job of an external renderer. This package provides the
// handoff to it and a preview for humans:
//
//   - [FormatJSON]: the [Document] wire format consumed by renderers and
//     served by the HTTP API
//   - [FormatText]: a terminal table for eyeballing a layout
//
// # Document
//
// A document carries the grid row by row plus enough metadata to draw it
// without re-running the layout:
//
//	{
//	  "column": 10,
//	  "rows": 1,
//	  "kind": "multi-rows-one-word",
//	  "template": {"column": 10, "layoutType": "normal", ...},
//	  "grid": [[{"char": "人", "isStrokeOrderHint": false, ...}, ...]]
//	}
//
// Use [JSON] / [UnmarshalDocument] for round trips, e.g. through a cache.
package render
