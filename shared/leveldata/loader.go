package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// EntityLayer is the object group holding level placements in TMX files.
const EntityLayer = "entities"

// LoadTMX parses a TMX file and returns its placements. Objects are read from
// the "entities" object group; each object's name is its kind. Platforms take
// their length from a "length" property, falling back to the object width in
// tiles. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Description, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	desc := &Description{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != EntityLayer {
			continue
		}
		for _, o := range og.Objects {
			kind, err := ParseKind(strings.ToLower(o.Name))
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
			}

			p := Placement{
				Kind: kind,
				X:    o.X / tileW,
				Y:    float64(levelMap.Height) - o.Y/tileH,
			}
			if kind == KindPlatform {
				p.Length = o.Properties.GetInt("length")
				if p.Length <= 0 {
					p.Length = int(math.Max(1, math.Round(o.Width/tileW)))
				}
			}
			desc.Placements = append(desc.Placements, p)
		}
	}

	// Rows top to bottom, then left to right, matching the pixel map scan order
	sort.SliceStable(desc.Placements, func(i, j int) bool {
		a, b := desc.Placements[i], desc.Placements[j]
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X < b.X
	})

	return desc, nil
}

// LoadAllTMX discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllTMX(fsys fs.FS, levelsDir string) (map[string]*Description, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Description, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		desc, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[desc.Name] = desc
		names = append(names, desc.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
