package tui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globeview/internal/globe"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

func TestBraille_Unavailable(t *testing.T) {
	_, err := newBrailleCanvas(0, 4, white)
	assert.ErrorIs(t, err, globe.ErrCanvasUnavailable)
}

func TestBraille_SetPixelBits(t *testing.T) {
	b, err := newBrailleCanvas(2, 1, white)
	require.NoError(t, err)
	w, h := b.Size()
	assert.Equal(t, 4.0, w)
	assert.Equal(t, 4.0, h)

	b.setPixel(0, 0, black)
	b.setPixel(1, 3, black)
	b.setPixel(9, 9, black) // out of range
	assert.Equal(t, uint8(0x81), b.m[0][0])
	assert.Equal(t, []string{"⢁ "}, b.toLines())

	b.Clear()
	assert.Equal(t, []string{"  "}, b.toLines())
}

func TestBraille_LineAndText(t *testing.T) {
	b, err := newBrailleCanvas(4, 2, white)
	require.NoError(t, err)
	b.Line(0, 0, 7, 0, globe.Paint{Color: black, Alpha: 1})
	for x := 0; x < 4; x++ {
		assert.Equal(t, uint8(0x09), b.m[0][x], "cell %d", x)
	}

	b.Text(4, 5, "ab", globe.Paint{Color: black, Alpha: 1})
	assert.Equal(t, "⠉⠉⠉⠉", b.toLines()[0])
	assert.Equal(t, " ab ", b.toLines()[1])
}

func TestBraille_TranslucentFillIsDithered(t *testing.T) {
	solid, _ := newBrailleCanvas(4, 2, white)
	faint, _ := newBrailleCanvas(4, 2, white)
	solid.FillCircle(4, 4, 3, globe.Paint{Color: black, Alpha: 1})
	faint.FillCircle(4, 4, 3, globe.Paint{Color: black, Alpha: 0.2})

	assert.Greater(t, bits(solid), bits(faint))
	assert.Positive(t, bits(faint))
}

func TestBraille_BlendTowardBackground(t *testing.T) {
	b, _ := newBrailleCanvas(1, 1, white)
	assert.Equal(t, black, b.blend(globe.Paint{Color: black, Alpha: 1}))
	mid := b.blend(globe.Paint{Color: black, Alpha: 0.5})
	assert.InDelta(t, 128, int(mid.R), 2)
	assert.Equal(t, uint8(255), mid.A)
}

func TestBraille_Render(t *testing.T) {
	b, _ := newBrailleCanvas(3, 1, white)
	b.setPixel(0, 0, black)
	out := b.render()
	assert.Contains(t, out, "⠁")
}

func bits(b *brailleCanvas) int {
	n := 0
	for _, row := range b.m {
		for _, mask := range row {
			for ; mask != 0; mask &= mask - 1 {
				n++
			}
		}
	}
	return n
}
