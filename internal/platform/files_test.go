package platform

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Second call on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"a/b\\c:d", "a_b_c_d"},
		{"q?s*t\"u<v>w|x", "q_s_t_u_v_w_x"},
		{"  trimmed . ", "trimmed"},
		{"", DefaultExportBaseName},
		{"...", DefaultExportBaseName},
	}

	for _, test := range tests {
		result := SanitizeFileName(test.input)
		if result != test.expected {
			t.Errorf("SanitizeFileName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestFileNameFromURL(t *testing.T) {
	tests := []struct {
		url      string
		fallback string
		expected string
	}{
		{"https://example.com/pics/cat.jpg", "x", "cat.png"},
		{"https://example.com/", "fallback", "fallback.png"},
		{"", "fallback", "fallback.png"},
		{"", "", "image.png"},
		{"https://example.com/a%20b.png?sig=1", "x", "a b.png"},
	}

	for _, test := range tests {
		result := FileNameFromURL(test.url, test.fallback)
		if result != test.expected {
			t.Errorf("FileNameFromURL(%q, %q) = %q, expected %q", test.url, test.fallback, result, test.expected)
		}
	}
}

func TestUniquePath(t *testing.T) {
	base := t.TempDir()
	p := filepath.Join(base, "img.png")

	// Nothing there yet: unchanged
	if got := UniquePath(p); got != p {
		t.Errorf("Expected %s, got %s", p, got)
	}

	if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	first := UniquePath(p)
	if first != filepath.Join(base, "img (1).png") {
		t.Errorf("Expected suffixed path, got %s", first)
	}

	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	second := UniquePath(p)
	if second != filepath.Join(base, "img (2).png") {
		t.Errorf("Expected next suffix, got %s", second)
	}
}

func TestSaveImagePNG(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "sub", "out.png")

	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})

	if err := SaveImagePNG(img, target); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected file to exist, got %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty PNG file")
	}
}

func TestSaveImagePNG_NilImage(t *testing.T) {
	if err := SaveImagePNG(nil, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("Expected error for nil image")
	}
}
