package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the built-in bitmap face under every name that has
// no face yet.
func LoadDefaults() {
	for _, name := range []FontName{HUD, Title} {
		if _, ok := fonts[name]; !ok {
			fonts[name] = basicfont.Face7x13
		}
	}
}

// LoadFontWithSize parses a TrueType font and registers it at the given size.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadFile registers the TrueType file at path for the HUD and title faces.
func LoadFile(path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font: %w", err)
	}
	if err := LoadFontWithSize(HUD, ttf, 14); err != nil {
		return err
	}
	return LoadFontWithSize(Title, ttf, 32)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
