package xit_test

import (
	"bytes"
	"fmt"

	"github.com/rafewenger/iso3D-sub000/mcprop"
	"github.com/rafewenger/iso3D-sub000/mctable"
	"github.com/rafewenger/iso3D-sub000/polytope"
	"github.com/rafewenger/iso3D-sub000/xit"
)

func ExampleWrite() {
	poly := polytope.GenCube3D()
	table := mctable.NewTable(poly, 2)
	table.Properties.TableType = mcprop.TableTypeIsosurface
	table.Properties.Encoding = mcprop.EncodingBinary
	if err := table.SetNumIsosurfaceVertices(0); err != nil {
		panic(err)
	}
	if err := table.SetNumTableEntries(0); err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	if err := xit.Write(&buf, table, xit.WithCreationDate("2026-01-01")); err != nil {
		panic(err)
	}

	got, err := xit.Read(&buf)
	if err != nil {
		panic(err)
	}
	fmt.Println(got.Properties.TableType, got.Poly.NumVertices(), got.NumTableEntries())
	// Output: ISOSURFACE 8 0
}
