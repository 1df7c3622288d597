// Package preview renders small raster thumbnails of recorded tracks.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/woozymasta/niu-cloud-cli/internal/geo"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"
)

const (
	// DefaultSize is the edge length of a thumbnail in pixels.
	DefaultSize = 512
	// MaxSize is the largest edge length Render accepts.
	MaxSize = 4096
	// DefaultQuality is the lossy WebP quality used by Encode.
	DefaultQuality = 85

	// supersample is the factor the track is drawn larger before scaling down.
	supersample = 4
	// maxMercatorLat is the latitude where Web-Mercator becomes square.
	maxMercatorLat = 85.05112878
)

var (
	// ErrEmptyTrack is returned by Render for a track without positions.
	ErrEmptyTrack = errors.New("track has no positions")
	// ErrSizeTooLarge is returned by Render for an edge length above MaxSize.
	ErrSizeTooLarge = errors.New("preview size too large")

	background = color.RGBA{R: 0xf8, G: 0xf8, B: 0xf4, A: 0xff}
	lineColor  = color.RGBA{R: 0x1e, G: 0x6f, B: 0xd9, A: 0xff}
	startColor = color.RGBA{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff}
	endColor   = color.RGBA{R: 0xd7, G: 0x3a, B: 0x31, A: 0xff}
)

type point struct {
	X, Y float64
}

// Render draws the track into a size x size image.
//
// Positions are projected with Web-Mercator and fitted into the image with a
// margin, keeping the aspect ratio. The start is marked green, the end red.
// A single position renders as a centred marker.
func Render(track []geo.NamedPosition, size int) (*image.RGBA, error) {
	if len(track) == 0 {
		return nil, ErrEmptyTrack
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrSizeTooLarge, size, MaxSize)
	}

	projected := make([]point, len(track))
	for i, p := range track {
		if !p.Position.IsFinite() {
			return nil, fmt.Errorf("position %d (%s): coordinates are not finite", i, p.Name)
		}
		projected[i] = project(p.Position)
	}

	big := size * supersample
	canvas := image.NewRGBA(image.Rect(0, 0, big, big))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	pixels := fit(projected, float64(big), float64(big)*0.08)

	lineRadius := math.Max(1, float64(big)/200)
	for i := 1; i < len(pixels); i++ {
		strokeSegment(canvas, pixels[i-1], pixels[i], lineRadius, lineColor)
	}

	markerRadius := lineRadius * 3
	fillDisc(canvas, pixels[0], markerRadius, startColor)
	fillDisc(canvas, pixels[len(pixels)-1], markerRadius, endColor)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)

	log.Debug().
		Int("positions", len(track)).
		Int("size", size).
		Msg("Track preview rendered")

	return dst, nil
}

// Encode writes img as lossy WebP. A quality outside (0, 100] selects DefaultQuality.
func Encode(w io.Writer, img image.Image, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	if err := webp.Encode(w, img, &webp.Options{Lossless: false, Quality: float32(quality)}); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}

	return nil
}

// project maps a position to Web-Mercator units with y growing southwards.
func project(p geo.GeoPoint) point {
	lat := math.Max(-maxMercatorLat, math.Min(maxMercatorLat, p.Latitude))
	return point{
		X: geo.Radians(p.Longitude),
		Y: -geo.MercatorY(geo.Radians(lat)),
	}
}

// fit scales projected points into a square of edge extent, leaving margin on every side.
func fit(pts []point, extent, margin float64) []point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	span := math.Max(maxX-minX, maxY-minY)
	inner := extent - 2*margin

	scale := 0.0
	if span > 0 {
		scale = inner / span
	}

	// centre the bounding box
	offX := margin + (inner-(maxX-minX)*scale)/2
	offY := margin + (inner-(maxY-minY)*scale)/2

	out := make([]point, len(pts))
	for i, p := range pts {
		out[i] = point{
			X: offX + (p.X-minX)*scale,
			Y: offY + (p.Y-minY)*scale,
		}
	}

	return out
}

// strokeSegment draws a thick line by stamping discs along it.
func strokeSegment(img *image.RGBA, a, b point, radius float64, c color.RGBA) {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	steps := int(math.Ceil(length/(radius/2))) + 1

	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		fillDisc(img, point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}, radius, c)
	}
}

func fillDisc(img *image.RGBA, center point, radius float64, c color.RGBA) {
	bounds := img.Bounds()
	x0 := max(bounds.Min.X, int(math.Floor(center.X-radius)))
	x1 := min(bounds.Max.X-1, int(math.Ceil(center.X+radius)))
	y0 := max(bounds.Min.Y, int(math.Floor(center.Y-radius)))
	y1 := min(bounds.Max.Y-1, int(math.Ceil(center.Y+radius)))

	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			dy := float64(y) + 0.5 - center.Y
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
