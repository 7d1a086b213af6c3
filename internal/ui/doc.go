package ui

// Package ui contains the Fyne-based desktop user interface. It wires the
// prompt entry to the image provider, renders the gallery grid from the
// bound item list, and hosts the settings and export dialogs.
