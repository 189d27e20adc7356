package texture

import (
	"os"
	"path/filepath"
	"strings"
)

// extRank orders formats when the same stem exists more than once;
// lower wins. PNG and TGA are lossless and preferred.
var extRank = map[string]int{
	".png":  0,
	".tga":  1,
	".jpg":  2,
	".jpeg": 2,
	".bmp":  3,
	".webp": 4,
}

// Index maps lowercase file stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex scans dir (non-recursively) for decodable image files.
func BuildIndex(dir string) (*Index, error) {
	idx := &Index{entries: make(map[string]string)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		rank, ok := extRank[ext]
		if !ok {
			continue
		}
		stem := strings.ToLower(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		path := filepath.Join(dir, e.Name())

		existing, exists := idx.entries[stem]
		if !exists || rank < extRank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
	}

	return idx, nil
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Directory prefixes, backslashes and extensions in name are ignored.
func (idx *Index) ResolvePath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
