package model

// Package model defines domain data structures used across the app: provider
// image results and decoded gallery items. Structures are designed for
// direct binding in the UI and explicit ownership transfer at construction.
