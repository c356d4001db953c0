// Package render turns a canvas color grid into vector markup. It is a pure
// encoding step: no state, identical grids produce byte-identical output.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

const base64Scheme = "data:image/svg+xml;base64,"

// SVG renders a row-major color grid (colors[y][x], 24-bit RGB) as an SVG
// document with one unit rect per cell.
func SVG(colors [][]uint32) []byte {
	n := len(colors)
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, n, n)
	for y, row := range colors {
		for x, c := range row {
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="#%06x"/>`, x, y, c&0xFFFFFF)
		}
	}
	b.WriteString(`</svg>`)
	return b.Bytes()
}

// SVGBase64 wraps SVG in a transport-safe data URI.
func SVGBase64(colors [][]uint32) string {
	return base64Scheme + base64.StdEncoding.EncodeToString(SVG(colors))
}
