package gallery

import (
	"fmt"

	"fyne.io/fyne/v2/data/binding"

	"github.com/genview/genview/internal/convert"
	"github.com/genview/genview/internal/download"
	"github.com/genview/genview/internal/model"
)

// List is an ordered collection of decoded image items exposed to the UI
// through a fyne data binding. The list exclusively owns its items: every
// SetResults pass destroys the previous contents and builds new ones.
//
// List is not safe for concurrent use; callers invoking SetResults from
// multiple goroutines must serialize externally.
type List struct {
	// AutoDownloadFromURL enables fetching image bytes for results that
	// carry only a URL. Disabled by default. Read at the start of each
	// SetResults pass, so changes apply to the next call only.
	AutoDownloadFromURL bool

	// OnDownloadStream overrides the built-in downloader when set. Read at
	// the start of each SetResults pass.
	OnDownloadStream download.StreamHook

	items   binding.UntypedList
	fetcher download.Fetcher
	active  bool
	onReady func()
}

// NewList creates an empty gallery list backed by fetcher for auto-downloads.
func NewList(fetcher download.Fetcher) *List {
	return &List{
		items:   binding.NewUntypedList(),
		fetcher: fetcher,
	}
}

// Binding exposes the underlying data binding for list and grid widgets.
func (l *List) Binding() binding.UntypedList {
	return l.items
}

// SetOnReady registers a callback fired once after every fully completed
// SetResults pass.
func (l *List) SetOnReady(fn func()) {
	l.onReady = fn
}

// Active reports whether the list holds the outcome of a completed pass.
func (l *List) Active() bool {
	return l.active
}

// Len returns the number of items currently held.
func (l *List) Len() int {
	return l.items.Length()
}

// Item returns the item at index i.
func (l *List) Item(i int) (*model.ImageItem, error) {
	value, err := l.items.GetValue(i)
	if err != nil {
		return nil, err
	}
	item, ok := value.(*model.ImageItem)
	if !ok {
		return nil, fmt.Errorf("unexpected gallery entry type %T at index %d", value, i)
	}
	return item, nil
}

// Items returns the current items in order.
func (l *List) Items() []*model.ImageItem {
	values, err := l.items.Get()
	if err != nil {
		return nil
	}
	out := make([]*model.ImageItem, 0, len(values))
	for _, value := range values {
		if item, ok := value.(*model.ImageItem); ok {
			out = append(out, item)
		}
	}
	return out
}

// SetResults replaces the list contents with items converted from results,
// preserving input order 1:1. The pass runs synchronously on the calling
// thread, including any downloads, and returns only when every result has
// been handled.
//
// On a conversion failure the items converted before the failing result stay
// in the list, the ready signal is not fired, and the error is returned; the
// failing result and everything after it are never added.
func (l *List) SetResults(results []model.ImageResult) error {
	l.active = false

	autoDownload := l.AutoDownloadFromURL
	hook := l.OnDownloadStream

	converted := make([]interface{}, 0, len(results))
	for _, result := range results {
		item, err := convert.Convert(result, autoDownload, hook, l.fetcher)
		if err != nil {
			// Publish the partial pass; the failure surfaces to the caller.
			_ = l.items.Set(converted)
			return err
		}
		converted = append(converted, item)
	}

	if err := l.items.Set(converted); err != nil {
		return err
	}

	l.active = true
	if l.onReady != nil {
		l.onReady()
	}
	return nil
}
