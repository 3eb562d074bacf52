// Package xit reads and writes the XIT (XML Isosurface Table) file
// format: a hand-rolled recursive descent over a small element alphabet,
// driven by a shared XML tokenizer, in both the current (v2) and legacy
// (v1) element orderings.
//
// Grounded on iso3D_MCtable_xitIO.h/.cpp. The tokenizer wraps the
// standard library's encoding/xml.Decoder.Token() stream rather than
// any hand-rolled XML lexer or expat-style callback dispatch (see
// SPEC_FULL.md for why no ecosystem XML library improves on the
// standard one for this job).
package xit
