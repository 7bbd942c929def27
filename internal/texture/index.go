package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths. Alpha-capable
// formats (PNG, TGA) take priority over JPEG for the same stem.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

var textureExts = map[string]bool{
	".png":  true,
	".tga":  true,
	".jpg":  true,
	".jpeg": true,
}

func hasAlphaExt(ext string) bool {
	return ext == ".png" || ext == ".tga"
}

// BuildIndex scans dir and its subdirectories for texture image files.
// Non-binary glTF documents reference textures by relative URI; the
// index lets the pipeline resolve those names regardless of which
// subfolder the export scattered them into.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !textureExts[ext] {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists {
			idx.entries[stem] = path
		} else if hasAlphaExt(ext) && !hasAlphaExt(strings.ToLower(filepath.Ext(existing))) {
			// Alpha-capable format wins
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for a texture reference, or
// ("", false). URI-style references keep only the base name, so
// "textures/marine_albedo.png" and "marine_albedo" resolve alike.
func (idx *Index) ResolvePath(ref string) (string, bool) {
	ref = strings.ReplaceAll(ref, "\\", "/")
	base := filepath.Base(ref)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
