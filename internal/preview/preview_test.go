package preview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/th2fits/internal/fitsimg"
)

func sample() fitsimg.Image {
	return fitsimg.Image{NX: 2, NY: 2, Pixels: []float64{10, 20, 30, 40}}
}

func TestPixelGrid(t *testing.T) {
	g := pixelGrid{img: fitsimg.Image{NX: 3, NY: 2, Pixels: []float64{1, 2, 3, 4, 5, 6}}}

	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 6.0, g.Z(2, 1))
	assert.Equal(t, 2.0, g.Z(1, 0))
	assert.Equal(t, 1.0, g.X(0))
	assert.Equal(t, 2.0, g.Y(1))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, sample(), "h"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "expected PNG signature")
}

func TestWritePNG_FlatImage(t *testing.T) {
	var buf bytes.Buffer
	img := fitsimg.Image{NX: 2, NY: 1, Pixels: []float64{5, 5}}
	require.NoError(t, WritePNG(&buf, img, "flat"))
	assert.NotZero(t, buf.Len())
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, sample(), "counts"))

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "counts")
	assert.Contains(t, html, "2x2 pixels")
}

func TestPreview_RejectsShortBuffer(t *testing.T) {
	img := fitsimg.Image{NX: 3, NY: 3, Pixels: []float64{1}}

	var buf bytes.Buffer
	assert.Error(t, WritePNG(&buf, img, "bad"))
	assert.Error(t, WriteHTML(&buf, img, "bad"))
	assert.Zero(t, buf.Len())
}
