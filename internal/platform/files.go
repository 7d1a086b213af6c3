package platform

import (
	"fmt"
	"image"
	"image/png"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Export naming
const (
	DefaultExportBaseName = "image"
	ExportExtension       = ".png"
	MaxFileNameLength     = 120
)

// CreateDirectoryIfNotExists creates the directory path if it is missing
func CreateDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, DefaultDirPermissions)
	}
	return nil
}

// GetHomePicturesDir returns the user's Pictures directory
func GetHomePicturesDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "Pictures"), nil
}

// SanitizeFileName replaces characters that are unsafe in file names across
// platforms and trims overly long names.
func SanitizeFileName(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, name)

	sanitized = strings.Trim(sanitized, " .")
	if sanitized == "" {
		sanitized = DefaultExportBaseName
	}
	if len(sanitized) > MaxFileNameLength {
		sanitized = sanitized[:MaxFileNameLength]
	}
	return sanitized
}

// FileNameFromURL derives an export file name from the image's source URL,
// falling back to fallback when the URL has no usable path component. The
// returned name always carries the PNG extension since exports re-encode.
func FileNameFromURL(rawURL, fallback string) string {
	base := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		base = path.Base(parsed.Path)
	}
	if base == "" || base == "." || base == "/" {
		base = fallback
	}
	if base == "" {
		base = DefaultExportBaseName
	}

	// Strip whatever extension the remote name had; we always write PNG.
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}

	return SanitizeFileName(base) + ExportExtension
}

// UniquePath returns p unchanged when nothing exists there, or a variant
// with a numeric suffix inserted before the extension otherwise.
func UniquePath(p string) string {
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return p
	}

	ext := filepath.Ext(p)
	stem := strings.TrimSuffix(p, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// SaveImagePNG writes img to path as PNG, creating parent directories as
// needed.
func SaveImagePNG(img image.Image, path string) error {
	if img == nil {
		return fmt.Errorf("no image to save")
	}

	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	return f.Close()
}
