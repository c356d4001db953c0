package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pixelchain/x/canvas/render"
)

func TestSVGDeterministic(t *testing.T) {
	grid := [][]uint32{
		{0xFF0000, 0x00FF00},
		{0x0000FF, 0xFFFFFF},
	}

	first := render.SVG(grid)
	second := render.SVG(grid)
	require.Equal(t, first, second, "identical grids must produce byte-identical output")

	doc := string(first)
	require.True(t, strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 2 2"`))
	require.True(t, strings.HasSuffix(doc, `</svg>`))
	require.Contains(t, doc, `<rect x="0" y="0" width="1" height="1" fill="#ff0000"/>`)
	require.Contains(t, doc, `<rect x="1" y="0" width="1" height="1" fill="#00ff00"/>`)
	require.Contains(t, doc, `<rect x="0" y="1" width="1" height="1" fill="#0000ff"/>`)
	require.Contains(t, doc, `<rect x="1" y="1" width="1" height="1" fill="#ffffff"/>`)
}

func TestSVGZeroPadsColors(t *testing.T) {
	doc := string(render.SVG([][]uint32{{0x00000F}}))
	require.Contains(t, doc, `fill="#00000f"`)
}

func TestSVGBase64(t *testing.T) {
	grid := [][]uint32{{0x123456}}
	uri := render.SVGBase64(grid)
	require.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))
	require.Equal(t, uri, render.SVGBase64(grid))
}
