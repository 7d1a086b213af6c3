package ui

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/genview/genview/internal/config"
	"github.com/genview/genview/internal/gallery"
	"github.com/genview/genview/internal/model"
	"github.com/genview/genview/internal/platform"
	"github.com/genview/genview/internal/provider"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	gallery  *gallery.List
	provider provider.Provider

	// UI components
	promptEntry *widget.Entry
	generateBtn *widget.Button
	settingsBtn *widget.Button
	statusLabel *widget.Label
	grid        *widget.GridWrap

	settingsDialog *SettingsDialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, prov provider.Provider, list *gallery.List) *RootUI {
	settings := config.NewSettings(app)

	ui := &RootUI{
		window:   window,
		settings: settings,
		gallery:  list,
		provider: prov,
	}

	list.SetOnReady(ui.onGalleryReady)

	ui.createUI()
	window.SetContent(ui.makeMainLayout())

	return ui
}

// createUI creates the main UI components
func (ui *RootUI) createUI() {
	ui.promptEntry = widget.NewEntry()
	ui.promptEntry.SetPlaceHolder("Describe the image to generate...")
	ui.promptEntry.OnSubmitted = func(string) { ui.onGenerate() }

	ui.generateBtn = widget.NewButton("Generate", ui.onGenerate)
	ui.generateBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)

	ui.statusLabel = widget.NewLabel("")

	ui.grid = widget.NewGridWrap(
		func() int {
			return ui.gallery.Len()
		},
		func() fyne.CanvasObject {
			img := canvas.NewImageFromImage(nil)
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(CellWidth, CellHeight))
			return img
		},
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) {
			item, err := ui.gallery.Item(int(id))
			if err != nil {
				log.Printf("Failed to get gallery item %d: %v", id, err)
				return
			}
			img := obj.(*canvas.Image)
			img.Image = item.Image
			img.Refresh()
		},
	)
	ui.grid.OnSelected = ui.onItemSelected
}

// makeMainLayout assembles the window content
func (ui *RootUI) makeMainLayout() fyne.CanvasObject {
	topBar := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.generateBtn, ui.settingsBtn),
		ui.promptEntry,
	)

	return container.NewBorder(topBar, ui.statusLabel, nil, nil, ui.grid)
}

// onGenerate requests images for the current prompt and rebuilds the gallery
func (ui *RootUI) onGenerate() {
	prompt := strings.TrimSpace(ui.promptEntry.Text)
	if prompt == "" {
		ui.setStatus("Enter a prompt first")
		return
	}

	ui.generateBtn.Disable()
	defer ui.generateBtn.Enable()

	ui.setStatus("Generating...")

	ctx, cancel := context.WithTimeout(context.Background(), ui.settings.GetHTTPTimeout())
	defer cancel()

	results, err := ui.provider.Generate(ctx, prompt, ui.settings.GetImageCount())
	if err != nil {
		log.Printf("Generation failed: %v", err)
		dialog.ShowError(err, ui.window)
		ui.setStatus("Generation failed")
		return
	}

	// The whole pass, downloads included, runs on this thread; the window
	// stays busy until the gallery is rebuilt.
	ui.gallery.AutoDownloadFromURL = ui.settings.GetAutoDownloadFromURL()
	if err := ui.gallery.SetResults(results); err != nil {
		log.Printf("Gallery update failed: %v", err)
		ui.grid.Refresh()
		dialog.ShowError(err, ui.window)
		ui.setStatus("Some images failed to load")
	}
}

// onGalleryReady refreshes the grid after a completed gallery pass
func (ui *RootUI) onGalleryReady() {
	ui.grid.Refresh()
	ui.setStatus(fmt.Sprintf(StatusReadyFormat, ui.gallery.Len()))
}

// onItemSelected opens a preview dialog with an export action
func (ui *RootUI) onItemSelected(id widget.GridWrapItemID) {
	ui.grid.UnselectAll()

	item, err := ui.gallery.Item(int(id))
	if err != nil {
		log.Printf("Failed to get gallery item %d: %v", id, err)
		return
	}

	preview := canvas.NewImageFromImage(item.Image)
	preview.FillMode = canvas.ImageFillContain
	preview.SetMinSize(fyne.NewSize(PreviewWidth, PreviewHeight))

	source := item.SourceURL
	if source == "" {
		source = DashPlaceholder
	}
	mime := item.MIMEType
	if mime == "" {
		mime = DashPlaceholder
	}
	info := widget.NewLabel(fmt.Sprintf("Type: %s\nSource: %s", mime, source))
	info.Wrapping = fyne.TextWrapBreak

	content := container.NewBorder(nil, info, nil, nil, preview)

	dialog.NewCustomConfirm("Image", "Export", "Close", content, func(export bool) {
		if export {
			ui.exportItem(item)
		}
	}, ui.window).Show()
}

// exportItem saves a decoded item to the configured export directory
func (ui *RootUI) exportItem(item *model.ImageItem) {
	if item.IsEmpty() {
		dialog.ShowInformation("Export", "This item has no image content to save.", ui.window)
		return
	}

	dir := ui.settings.GetExportDirectory()
	name := platform.FileNameFromURL(item.SourceURL, item.ID)
	path := platform.UniquePath(filepath.Join(dir, name))

	if err := platform.SaveImagePNG(item.Image, path); err != nil {
		log.Printf("Export failed: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.setStatus(fmt.Sprintf("Exported to %s", path))
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.settingsDialog == nil {
		ui.settingsDialog = NewSettingsDialog(ui.settings, ui.window)
	}
	ui.settingsDialog.Show()
}

// setStatus updates the status line
func (ui *RootUI) setStatus(text string) {
	ui.statusLabel.SetText(text)
}
