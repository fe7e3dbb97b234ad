// Package graphio reads and writes edge-list graph documents.
//
// # Overview
//
// The core graph types carry no serialization of their own; this package is
// the file-loading layer the CLI and server use to get edges in and out.
// Two formats are supported:
//
// JSON:
//
//	{
//	  "name": "deps",
//	  "edges": [
//	    {"from": 0, "to": 1},
//	    {"from": 1, "to": 2}
//	  ]
//	}
//
// TOML:
//
//	name = "deps"
//
//	[[edge]]
//	from = 0
//	to = 1
//
// # Usage
//
// Use [Import] to dispatch on the file extension, or the format-specific
// [ImportJSON], [ImportTOML], [ReadJSON], and [ReadTOML]. A decoded
// [Document] converts to a mutable graph with [Document.Graph]:
//
//	doc, err := graphio.Import("deps.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c := doc.Graph().Compile()
//
// Node identifiers outside the uint16 range are decode errors. Duplicate
// edges are tolerated: the mutable graph's edge set absorbs them.
package graphio
