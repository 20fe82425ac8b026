package render

import (
	"context"
	"errors"
	"fmt"
)

// ErrRenderFailed is returned when the badge service does not return an image
var ErrRenderFailed = errors.New("badge render failed")

// RateLimitMessage is shown on badges refused by the rate limiter
const RateLimitMessage = "Rate Limit Exceeded"

// BadgeParams describes one badge image
type BadgeParams struct {
	Label      string
	Text       string
	Color      string
	LabelColor string
	Style      string
	Logo       string
	LogoColor  string
}

// WithDefaults fills unset fields
func (p BadgeParams) WithDefaults() BadgeParams {
	if p.Label == "" {
		p.Label = "Visitors"
	}
	if p.Color == "" {
		p.Color = "blue"
	}
	if p.LabelColor == "" {
		p.LabelColor = "grey"
	}
	if p.Style == "" {
		p.Style = "flat"
	}
	if p.LogoColor == "" {
		p.LogoColor = "white"
	}
	return p
}

// RendererInterface defines the interface for badge rendering (for testing)
type RendererInterface interface {
	Render(ctx context.Context, p BadgeParams) ([]byte, error)
}

const errorBadgeTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="150" height="20">
  <rect width="150" height="20" fill="#e05d44"/>
  <text x="75" y="14" font-family="Verdana" font-size="11" fill="#fff" text-anchor="middle">%s</text>
</svg>`

// ErrorBadge renders a plain red badge locally
func ErrorBadge(message string) []byte {
	return []byte(fmt.Sprintf(errorBadgeTemplate, escapeXML(message)))
}
