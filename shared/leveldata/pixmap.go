package leveldata

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	// Registers the PNG decoder for image.Decode.
	_ "image/png"
)

// Pixel colors of the color-coded level map.
var (
	PixelEmpty    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	PixelPlatform = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	PixelSpawn    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PixelFeather  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	PixelCoin     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// DecodePixmap turns a color-coded map into a description. Each pixel is one
// grid cell; horizontally adjacent platform pixels on the same row extend a
// single platform. Unknown colors are logged and skipped.
func DecodePixmap(name string, img image.Image) *Description {
	b := img.Bounds()
	desc := &Description{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
	}

	for py := b.Min.Y; py < b.Max.Y; py++ {
		baseHeight := float64(b.Max.Y - py)
		extending := false

		for px := b.Min.X; px < b.Max.X; px++ {
			c := color.RGBAModel.Convert(img.At(px, py)).(color.RGBA)
			x := float64(px - b.Min.X)

			if c.A == 0 || c == PixelEmpty {
				extending = false
				continue
			}

			switch c {
			case PixelPlatform:
				if extending {
					desc.Placements[len(desc.Placements)-1].Length++
				} else {
					desc.Placements = append(desc.Placements, Placement{Kind: KindPlatform, X: x, Y: baseHeight, Length: 1})
				}
				extending = true
				continue
			case PixelSpawn:
				desc.Placements = append(desc.Placements, Placement{Kind: KindSpawn, X: x, Y: baseHeight})
			case PixelFeather:
				desc.Placements = append(desc.Placements, Placement{Kind: KindFeather, X: x, Y: baseHeight})
			case PixelCoin:
				desc.Placements = append(desc.Placements, Placement{Kind: KindCoin, X: x, Y: baseHeight})
			default:
				log.Printf("level %s: unknown object at x<%d> y<%d>: r<%d> g<%d> b<%d> a<%d>",
					name, px, py, c.R, c.G, c.B, c.A)
			}
			extending = false
		}
	}

	return desc
}

// ReadPixmap decodes an encoded image (PNG) and converts it.
func ReadPixmap(name string, r io.Reader) (*Description, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode level image %s: %w", name, err)
	}
	return DecodePixmap(name, img), nil
}
