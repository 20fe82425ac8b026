package render

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"visitorbadge/internal/config"

	"github.com/allegro/bigcache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const maxBadgeSize = 64 << 10

// ShieldsRenderer fetches badges from a shields.io compatible service.
// Outbound calls are throttled and rendered images are cached by URL.
type ShieldsRenderer struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	cache   *bigcache.BigCache
}

// NewShieldsRenderer creates a new shields.io renderer
func NewShieldsRenderer(cfg *config.ShieldsConfig) (*ShieldsRenderer, error) {
	var cache *bigcache.BigCache
	if cfg.CacheTTL > 0 {
		c, err := bigcache.NewBigCache(bigcache.Config{
			Shards:             256,
			LifeWindow:         cfg.CacheTTL,
			CleanWindow:        time.Minute,
			MaxEntriesInWindow: 10000,
			MaxEntrySize:       2048,
			HardMaxCacheSize:   256,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create badge cache: %w", err)
		}
		cache = c
	}

	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &ShieldsRenderer{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		cache:   cache,
	}, nil
}

// Render returns the SVG for p
func (r *ShieldsRenderer) Render(ctx context.Context, p BadgeParams) ([]byte, error) {
	target := r.BadgeURL(p)

	if r.cache != nil {
		if svg, err := r.cache.Get(target); err == nil {
			return svg, nil
		}
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for render slot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build badge request: %w", err)
	}
	req.Header.Set("Accept", "image/svg+xml")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch badge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("url", target).Msg("Badge service returned an error")
		return nil, fmt.Errorf("%w: status %d", ErrRenderFailed, resp.StatusCode)
	}

	svg, err := io.ReadAll(io.LimitReader(resp.Body, maxBadgeSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read badge: %w", err)
	}
	if len(svg) > maxBadgeSize {
		return nil, fmt.Errorf("%w: badge larger than %d bytes", ErrRenderFailed, maxBadgeSize)
	}

	if r.cache != nil {
		if err := r.cache.Set(target, svg); err != nil {
			log.Warn().Err(err).Msg("Failed to cache badge")
		}
	}

	return svg, nil
}

// BadgeURL builds the static badge URL for p
func (r *ShieldsRenderer) BadgeURL(p BadgeParams) string {
	p = p.WithDefaults()

	path := fmt.Sprintf("/badge/%s-%s-%s",
		escapeSegment(p.Label), escapeSegment(p.Text), escapeSegment(p.Color))

	q := url.Values{}
	q.Set("labelColor", p.LabelColor)
	q.Set("style", p.Style)
	q.Set("logo", p.Logo)
	q.Set("logoColor", p.LogoColor)

	return r.baseURL + path + "?" + q.Encode()
}

// escapeSegment applies the badge path escaping: dashes and underscores are doubled
func escapeSegment(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	return url.PathEscape(s)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return ""
	}
	return buf.String()
}
