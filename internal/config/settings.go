package config

import (
	"crypto/tls"
	"net/http"
	"os"
	"time"

	"fyne.io/fyne/v2"

	"github.com/genview/genview/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAutoDownload  = "auto_download_from_url"
	KeyHTTPTimeout   = "http_timeout_seconds"
	KeyTLSSkipVerify = "tls_skip_verify"
	KeyExportDir     = "export_directory"
	KeyProviderURL   = "provider_base_url"
	KeyProviderModel = "provider_model"
	KeyImageCount    = "images_per_prompt"
)

// Default values
const (
	DefaultAutoDownload   = false
	DefaultHTTPTimeoutSec = 30
	DefaultTLSSkipVerify  = false
	DefaultProviderURL    = "https://api.openai.com/v1"
	DefaultProviderModel  = "dall-e-3"
	DefaultImageCount     = 1
)

// Timeout bounds in seconds
const (
	MinHTTPTimeoutSec = 1
	MaxHTTPTimeoutSec = 300
)

// Image count bounds
const (
	MinImageCount = 1
	MaxImageCount = 10
)

// APIKeyEnvVar names the environment variable consulted for the provider
// API key. Keys are deliberately kept out of Fyne preferences.
const APIKeyEnvVar = "GENVIEW_API_KEY"

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAutoDownloadFromURL returns whether URL-only results are fetched
func (s *Settings) GetAutoDownloadFromURL() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoDownload, DefaultAutoDownload)
}

// SetAutoDownloadFromURL sets whether URL-only results are fetched
func (s *Settings) SetAutoDownloadFromURL(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoDownload, enabled)
}

// GetHTTPTimeout returns the per-request HTTP timeout
func (s *Settings) GetHTTPTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyHTTPTimeout)
	if seconds <= 0 {
		s.SetHTTPTimeout(DefaultHTTPTimeoutSec)
		return DefaultHTTPTimeoutSec * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// SetHTTPTimeout sets the per-request HTTP timeout in seconds
func (s *Settings) SetHTTPTimeout(seconds int) {
	if seconds < MinHTTPTimeoutSec {
		seconds = MinHTTPTimeoutSec
	}
	if seconds > MaxHTTPTimeoutSec {
		seconds = MaxHTTPTimeoutSec
	}
	s.app.Preferences().SetInt(KeyHTTPTimeout, seconds)
}

// GetTLSSkipVerify returns whether server certificate checks are skipped
func (s *Settings) GetTLSSkipVerify() bool {
	return s.app.Preferences().BoolWithFallback(KeyTLSSkipVerify, DefaultTLSSkipVerify)
}

// SetTLSSkipVerify sets whether server certificate checks are skipped
func (s *Settings) SetTLSSkipVerify(skip bool) {
	s.app.Preferences().SetBool(KeyTLSSkipVerify, skip)
}

// GetExportDirectory returns the directory images are exported to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = os.TempDir()
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the directory images are exported to
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetProviderBaseURL returns the image-generation API base URL
func (s *Settings) GetProviderBaseURL() string {
	url := s.app.Preferences().String(KeyProviderURL)
	if url == "" {
		s.SetProviderBaseURL(DefaultProviderURL)
		return DefaultProviderURL
	}
	return url
}

// SetProviderBaseURL sets the image-generation API base URL
func (s *Settings) SetProviderBaseURL(url string) {
	s.app.Preferences().SetString(KeyProviderURL, url)
}

// GetProviderModel returns the image-generation model name
func (s *Settings) GetProviderModel() string {
	model := s.app.Preferences().String(KeyProviderModel)
	if model == "" {
		s.SetProviderModel(DefaultProviderModel)
		return DefaultProviderModel
	}
	return model
}

// SetProviderModel sets the image-generation model name
func (s *Settings) SetProviderModel(model string) {
	s.app.Preferences().SetString(KeyProviderModel, model)
}

// GetImageCount returns how many images are requested per prompt
func (s *Settings) GetImageCount() int {
	count := s.app.Preferences().Int(KeyImageCount)
	if count <= 0 {
		s.SetImageCount(DefaultImageCount)
		return DefaultImageCount
	}
	return count
}

// SetImageCount sets how many images are requested per prompt
func (s *Settings) SetImageCount(count int) {
	if count < MinImageCount {
		count = MinImageCount
	}
	if count > MaxImageCount {
		count = MaxImageCount
	}
	s.app.Preferences().SetInt(KeyImageCount, count)
}

// GetAPIKey returns the provider API key from the environment
func (s *Settings) GetAPIKey() string {
	return os.Getenv(APIKeyEnvVar)
}

// NewHTTPClient builds a fresh HTTP client from the stored transport
// options. Satisfies the download service's client factory.
func (s *Settings) NewHTTPClient() *http.Client {
	client := &http.Client{Timeout: s.GetHTTPTimeout()}
	if s.GetTLSSkipVerify() {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return client
}
