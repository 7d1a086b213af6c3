package model

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/google/uuid"

	// Codecs registered for image.Decode; the format is detected from the
	// content itself, never from the declared MIME type.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError reports that image content could not be decoded by any
// registered codec.
type DecodeError struct {
	SourceURL string
	Err       error
}

// Error returns the string representation of the decode failure.
func (e *DecodeError) Error() string {
	if e.SourceURL != "" {
		return fmt.Sprintf("decode image from %s: %v", e.SourceURL, e.Err)
	}
	return fmt.Sprintf("decode image: %v", e.Err)
}

// Unwrap returns the underlying codec error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err is (or wraps) a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// ImageItem is one decoded gallery entry. Image is never nil: items built
// without content hold a valid zero-size image, so UI code can render any
// item without nil checks.
type ImageItem struct {
	ID        string
	Image     image.Image
	MIMEType  string
	SourceURL string
}

// NewEmptyItem creates an item with a valid zero-size image and no metadata.
func NewEmptyItem() *ImageItem {
	return &ImageItem{
		ID:    uuid.NewString(),
		Image: emptyImage(),
	}
}

// NewItemFromStream creates an item from the content of r, keeping mimeType
// and sourceURL as metadata. A nil r yields an item with an empty image and
// no error. Content that fails to decode is a *DecodeError.
//
// The caller keeps ownership of r. When r is seekable its read position is
// restored before returning; restore failures on oddball streams are
// tolerated silently.
func NewItemFromStream(r io.Reader, mimeType, sourceURL string) (*ImageItem, error) {
	item := &ImageItem{
		ID:        uuid.NewString(),
		MIMEType:  mimeType,
		SourceURL: sourceURL,
	}

	if r == nil {
		item.Image = emptyImage()
		return item, nil
	}

	entryPos := int64(-1)
	if s, ok := r.(io.Seeker); ok {
		if pos, err := s.Seek(0, io.SeekCurrent); err == nil {
			entryPos = pos
		}
	}

	img, _, err := image.Decode(r)

	if s, ok := r.(io.Seeker); ok && entryPos >= 0 {
		// Best-effort restore of the caller's read position.
		_, _ = s.Seek(entryPos, io.SeekStart)
	}

	if err != nil {
		return nil, &DecodeError{SourceURL: sourceURL, Err: err}
	}

	item.Image = img
	return item, nil
}

// IsEmpty reports whether the item holds a zero-size image.
func (it *ImageItem) IsEmpty() bool {
	return it.Image == nil || it.Image.Bounds().Empty()
}

// GetDisplayTitle returns the source URL, or the item ID for items with no
// recorded origin.
func (it *ImageItem) GetDisplayTitle() string {
	if it.SourceURL != "" {
		return it.SourceURL
	}
	return it.ID
}

func emptyImage() image.Image {
	return image.NewRGBA(image.Rectangle{})
}
