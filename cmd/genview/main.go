package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/genview/genview/internal/config"
	"github.com/genview/genview/internal/download"
	"github.com/genview/genview/internal/gallery"
	"github.com/genview/genview/internal/provider"
	"github.com/genview/genview/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.genview.app")
	myWindow := myApp.NewWindow("GenView")
	myWindow.Resize(fyne.NewSize(900, 640))

	settings := config.NewSettings(myApp)
	fetcher := download.NewService(settings)
	list := gallery.NewList(fetcher)
	prov := provider.NewClient(
		settings.GetProviderBaseURL(),
		settings.GetAPIKey(),
		settings.GetProviderModel(),
		settings,
	)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, prov, list)

	// Show and run
	myWindow.ShowAndRun()
}
