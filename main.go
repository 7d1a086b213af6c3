package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/genview/genview/internal/config"
	"github.com/genview/genview/internal/download"
	"github.com/genview/genview/internal/gallery"
	"github.com/genview/genview/internal/platform"
	"github.com/genview/genview/internal/provider"
	"github.com/genview/genview/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.genview.app"
	AppName = "GenView"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("GenView v%s starting...\n", version)

	// Optional .env carrying the provider API key
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		fmt.Printf("failed to ensure export dir: %v\n", err)
	}

	fetcher := download.NewService(settings)

	list := gallery.NewList(fetcher)
	list.AutoDownloadFromURL = settings.GetAutoDownloadFromURL()

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
