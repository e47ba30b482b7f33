package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/canyon/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

const levelsDir = "levels"

var ErrLevelNotFound = errors.New("level not found")

// DefaultLevel is loaded when no level is named on the command line.
const DefaultLevel = "level-01"

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LevelNames lists the embedded levels, both pixel maps and TMX files.
func LevelNames() ([]string, error) {
	entries, err := fs.ReadDir(assetFS, levelsDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", levelsDir, err)
	}
	var names []string
	for _, e := range entries {
		switch ext := path.Ext(e.Name()); ext {
		case ".png", ".tmx":
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevel decodes an embedded level by name. A pixel map wins over a TMX
// file of the same name.
func LoadLevel(name string) (*leveldata.Description, error) {
	return LoadLevelFS(assetFS, levelsDir, name)
}

// LoadLevelFS is LoadLevel over any file system, so levels can also come from
// disk via os.DirFS.
func LoadLevelFS(fsys fs.FS, dir, name string) (*leveldata.Description, error) {
	pngPath := path.Join(dir, name+".png")
	if f, err := fsys.Open(pngPath); err == nil {
		defer f.Close()
		return leveldata.ReadPixmap(name, f)
	}

	tmxPath := path.Join(dir, name+".tmx")
	if _, err := fs.Stat(fsys, tmxPath); err != nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrLevelNotFound, name, dir)
	}
	return leveldata.LoadTMX(fsys, tmxPath)
}
