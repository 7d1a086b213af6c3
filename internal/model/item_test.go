package model

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
)

// encodePNG returns a small solid-color PNG for decode tests.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestNewEmptyItem(t *testing.T) {
	item := NewEmptyItem()

	if item.Image == nil {
		t.Fatal("Expected non-nil image on empty item")
	}

	if !item.IsEmpty() {
		t.Error("Expected empty item to report IsEmpty")
	}

	if item.MIMEType != "" || item.SourceURL != "" {
		t.Errorf("Expected empty metadata, got mime=%q url=%q", item.MIMEType, item.SourceURL)
	}

	if item.ID == "" {
		t.Error("Expected non-empty item ID")
	}
}

func TestNewItemFromStream(t *testing.T) {
	data := encodePNG(t, 4, 3)

	item, err := NewItemFromStream(bytes.NewReader(data), "image/png", "https://example.com/a.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if item.IsEmpty() {
		t.Error("Expected decoded item to have content")
	}

	bounds := item.Image.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 3 {
		t.Errorf("Expected 4x3 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	if item.MIMEType != "image/png" {
		t.Errorf("Expected MIME type 'image/png', got %q", item.MIMEType)
	}

	if item.SourceURL != "https://example.com/a.png" {
		t.Errorf("Expected source URL to be preserved, got %q", item.SourceURL)
	}
}

func TestNewItemFromStream_NilReader(t *testing.T) {
	item, err := NewItemFromStream(nil, "image/jpeg", "https://example.com/b.jpg")
	if err != nil {
		t.Fatalf("Expected no error for nil reader, got %v", err)
	}

	if !item.IsEmpty() {
		t.Error("Expected empty image for nil reader")
	}

	if item.MIMEType != "image/jpeg" {
		t.Errorf("Expected metadata to be preserved, got %q", item.MIMEType)
	}

	if item.SourceURL != "https://example.com/b.jpg" {
		t.Errorf("Expected metadata to be preserved, got %q", item.SourceURL)
	}
}

func TestNewItemFromStream_DecodeError(t *testing.T) {
	_, err := NewItemFromStream(strings.NewReader("not an image"), "image/png", "https://example.com/bad")
	if err == nil {
		t.Fatal("Expected decode error for malformed content")
	}

	if !IsDecodeError(err) {
		t.Errorf("Expected a DecodeError, got %T: %v", err, err)
	}
}

func TestNewItemFromStream_RestoresSeekPosition(t *testing.T) {
	data := encodePNG(t, 2, 2)

	// Prefix the stream and advance past the prefix before decoding.
	prefixed := append([]byte("xx"), data...)
	reader := bytes.NewReader(prefixed)
	if _, err := reader.Seek(2, io.SeekStart); err != nil {
		t.Fatalf("Failed to position reader: %v", err)
	}

	if _, err := NewItemFromStream(reader, "image/png", ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	pos, err := reader.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("Failed to query position: %v", err)
	}
	if pos != 2 {
		t.Errorf("Expected read position restored to 2, got %d", pos)
	}
}

func TestNewItemFromStream_RestoresSeekPositionOnDecodeError(t *testing.T) {
	reader := bytes.NewReader([]byte("definitely not an image"))
	if _, err := reader.Seek(3, io.SeekStart); err != nil {
		t.Fatalf("Failed to position reader: %v", err)
	}

	if _, err := NewItemFromStream(reader, "", ""); err == nil {
		t.Fatal("Expected decode error")
	}

	pos, err := reader.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("Failed to query position: %v", err)
	}
	if pos != 3 {
		t.Errorf("Expected read position restored to 3, got %d", pos)
	}
}

func TestNewItemFromStream_NonSeekableReader(t *testing.T) {
	data := encodePNG(t, 2, 2)

	// strings/bytes readers are seekable; wrap to strip the Seeker.
	item, err := NewItemFromStream(io.LimitReader(bytes.NewReader(data), int64(len(data))), "image/png", "")
	if err != nil {
		t.Fatalf("Expected non-seekable streams to be tolerated, got %v", err)
	}

	if item.IsEmpty() {
		t.Error("Expected decoded item to have content")
	}
}

func TestImageItem_GetDisplayTitle(t *testing.T) {
	item := NewEmptyItem()
	if item.GetDisplayTitle() != item.ID {
		t.Errorf("Expected ID as title for item without URL, got %q", item.GetDisplayTitle())
	}

	item.SourceURL = "https://example.com/c.png"
	if item.GetDisplayTitle() != "https://example.com/c.png" {
		t.Errorf("Expected URL as title, got %q", item.GetDisplayTitle())
	}
}

func TestImageResult_HasStream(t *testing.T) {
	var result ImageResult
	if result.HasStream() {
		t.Error("Expected no stream on zero result")
	}

	result.Stream = bytes.NewReader([]byte{1})
	if !result.HasStream() {
		t.Error("Expected HasStream after assigning a reader")
	}
}
