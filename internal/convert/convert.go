package convert

import (
	"io"

	"github.com/genview/genview/internal/download"
	"github.com/genview/genview/internal/model"
)

// Convert resolves one provider result into a gallery item.
//
// Inline bytes are decoded directly. Otherwise, when autoDownload is enabled
// and the result names a URL, content is obtained from hook when supplied or
// from fetcher, and the temporary buffer is dropped once decoding finishes.
// A download that yields nothing, and results with neither bytes nor a usable
// URL, produce an item with an empty image and the result's metadata.
//
// Fetch and decode errors propagate to the caller untouched; there are no
// retries and nothing is cached between calls.
func Convert(result model.ImageResult, autoDownload bool, hook download.StreamHook, fetcher download.Fetcher) (*model.ImageItem, error) {
	if result.HasStream() {
		return model.NewItemFromStream(result.Stream, result.MIMEType, result.URL)
	}

	if autoDownload && result.URL != "" {
		var stream io.Reader
		if hook != nil {
			stream = hook(result.URL)
		} else {
			buf, err := fetcher.Fetch(result.URL)
			if err != nil {
				return nil, err
			}
			if buf != nil {
				stream = buf
			}
		}
		return model.NewItemFromStream(stream, result.MIMEType, result.URL)
	}

	return model.NewItemFromStream(nil, result.MIMEType, result.URL)
}
