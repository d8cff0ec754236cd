// Package icon rasterizes the embedded SVG icon set and renders icons as
// terminal thumbnails made of half-block glyphs.
package icon

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed svg/*.svg
var svgFS embed.FS

// ErrUnknownIcon is returned for names without an embedded SVG.
var ErrUnknownIcon = errors.New("icon: unknown icon")

var thumbnails = newThumbnailCache(defaultMaxCacheSize)

// Names lists the embedded icons, sorted.
func Names() []string {
	entries, err := svgFS.ReadDir("svg")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".svg"))
	}
	slices.Sort(names)
	return names
}

// Has reports whether name is an embedded icon.
func Has(name string) bool {
	_, err := svgFS.ReadFile(path.Join("svg", name+".svg"))
	return err == nil
}

// Rasterize draws the named icon scaled to w×h pixels.
func Rasterize(name string, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("icon %q: size %dx%d must be positive", name, w, h)
	}
	data, err := svgFS.ReadFile(path.Join("svg", name+".svg"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}

	svg, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("icon %q: parse svg: %w", name, err)
	}
	svg.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	svg.Draw(raster, 1.0)
	return img, nil
}

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// Thumbnail renders the named icon in cols×rows terminal cells. Each cell
// shows two vertically stacked pixels using the upper-half block: the
// foreground paints the top pixel and the background the bottom one.
// Results are cached.
func Thumbnail(name string, cols, rows int) (string, error) {
	key := fmt.Sprintf("%s@%dx%d", name, cols, rows)
	if s, ok := thumbnails.Get(key); ok {
		return s, nil
	}

	img, err := Rasterize(name, cols, rows*2)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			b.WriteString(cell(img.RGBAAt(col, row*2), img.RGBAAt(col, row*2+1)))
		}
	}

	s := b.String()
	thumbnails.Set(key, s)
	return s, nil
}

// ResetCache drops cached thumbnails.
func ResetCache() {
	thumbnails.Clear()
}

func cell(top, bottom color.RGBA) string {
	topOn, bottomOn := visible(top), visible(bottom)
	switch {
	case topOn && bottomOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render(upperHalf)
	case topOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Render(upperHalf)
	case bottomOn:
		return lipgloss.NewStyle().Foreground(hex(bottom)).Render(lowerHalf)
	default:
		return " "
	}
}

func visible(c color.RGBA) bool {
	return c.A >= 0x80
}

// hex undoes the premultiplied alpha of the rasterizer output.
func hex(c color.RGBA) lipgloss.Color {
	if c.A == 0 {
		return lipgloss.Color("#000000")
	}
	r := uint32(c.R) * 0xFF / uint32(c.A)
	g := uint32(c.G) * 0xFF / uint32(c.A)
	bl := uint32(c.B) * 0xFF / uint32(c.A)
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", min(r, 0xFF), min(g, 0xFF), min(bl, 0xFF)))
}
