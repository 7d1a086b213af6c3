package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/genview/genview/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   dialog.Dialog

	// UI components
	baseURLEntry      *widget.Entry
	modelEntry        *widget.Entry
	countEntry        *widget.Entry
	autoDownloadCheck *widget.Check
	timeoutEntry      *widget.Entry
	tlsSkipCheck      *widget.Check
	exportDirEntry    *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder("https://api.openai.com/v1")

	sd.modelEntry = widget.NewEntry()
	sd.modelEntry.SetPlaceHolder("dall-e-3")

	sd.countEntry = widget.NewEntry()
	sd.countEntry.SetPlaceHolder("1-10")

	sd.autoDownloadCheck = widget.NewCheck("Download images referenced by URL", nil)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("1-300")

	sd.tlsSkipCheck = widget.NewCheck("Skip TLS certificate verification", nil)

	sd.exportDirEntry = widget.NewEntry()
	sd.exportDirEntry.SetPlaceHolder("Export directory path")

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Generation Settings"),
		widget.NewSeparator(),

		widget.NewLabel("API Base URL:"),
		sd.baseURLEntry,

		widget.NewLabel("Model:"),
		sd.modelEntry,

		widget.NewLabel("Images per Prompt:"),
		sd.countEntry,

		widget.NewLabel("Download Settings"),
		widget.NewSeparator(),

		sd.autoDownloadCheck,

		widget.NewLabel("HTTP Timeout (seconds):"),
		sd.timeoutEntry,

		sd.tlsSkipCheck,

		widget.NewLabel("Export Directory:"),
		sd.exportDirEntry,
	)

	sd.dialog = dialog.NewCustomConfirm("Settings", "Save", "Cancel", form, func(save bool) {
		if save {
			sd.saveSettings()
		}
	}, sd.window)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings populates the dialog from stored preferences
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetProviderBaseURL())
	sd.modelEntry.SetText(sd.settings.GetProviderModel())
	sd.countEntry.SetText(strconv.Itoa(sd.settings.GetImageCount()))
	sd.autoDownloadCheck.SetChecked(sd.settings.GetAutoDownloadFromURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetHTTPTimeout().Seconds())))
	sd.tlsSkipCheck.SetChecked(sd.settings.GetTLSSkipVerify())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
}

// saveSettings writes the dialog values back to preferences
func (sd *SettingsDialog) saveSettings() {
	if url := strings.TrimSpace(sd.baseURLEntry.Text); url != "" {
		sd.settings.SetProviderBaseURL(url)
	}
	if model := strings.TrimSpace(sd.modelEntry.Text); model != "" {
		sd.settings.SetProviderModel(model)
	}
	if count, err := strconv.Atoi(strings.TrimSpace(sd.countEntry.Text)); err == nil {
		sd.settings.SetImageCount(count)
	}

	sd.settings.SetAutoDownloadFromURL(sd.autoDownloadCheck.Checked)

	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetHTTPTimeout(seconds)
	}

	sd.settings.SetTLSSkipVerify(sd.tlsSkipCheck.Checked)

	if dir := strings.TrimSpace(sd.exportDirEntry.Text); dir != "" {
		sd.settings.SetExportDirectory(dir)
	}
}
