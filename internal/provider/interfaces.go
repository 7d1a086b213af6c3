package provider

import (
	"context"

	"github.com/genview/genview/internal/model"
)

// Provider defines the interface for an image-generation service.
type Provider interface {
	// Generate produces n images for prompt and returns them in the order
	// the service emitted them.
	Generate(ctx context.Context, prompt string, n int) ([]model.ImageResult, error)
}
