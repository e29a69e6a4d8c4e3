package visual

import (
	"fmt"
	"image/color"
	"image/png"
	"io"

	"github.com/psykhi/wordclouds"
)

var cloudColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// WordCloud lays the term counts out as a word cloud and writes it as PNG.
// fontFile must point at a TTF file on disk.
func WordCloud(counts map[string]int, fontFile string, w io.Writer) error {
	if len(counts) == 0 {
		return fmt.Errorf("word cloud: no terms to draw")
	}
	if fontFile == "" {
		return fmt.Errorf("word cloud: no font file configured")
	}

	cloud := wordclouds.NewWordcloud(counts,
		wordclouds.FontFile(fontFile),
		wordclouds.FontMaxSize(128),
		wordclouds.FontMinSize(12),
		wordclouds.Width(1024),
		wordclouds.Height(1024),
		wordclouds.Colors(cloudColors),
		wordclouds.BackgroundColor(color.White),
	)

	img := cloud.Draw()
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode word cloud: %w", err)
	}
	return nil
}
