package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"visitorbadge/internal/model"
	"visitorbadge/internal/render"
	"visitorbadge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	svgContentType = "image/svg+xml"
	unknownValue   = "unknown"
	cacheSkew      = 10 * time.Minute
)

// BadgeHandler serves badge images
type BadgeHandler struct {
	service  service.BadgeServiceInterface
	renderer render.RendererInterface
	now      func() time.Time
}

// NewBadgeHandler creates a new BadgeHandler
func NewBadgeHandler(service service.BadgeServiceInterface, renderer render.RendererInterface) *BadgeHandler {
	return &BadgeHandler{
		service:  service,
		renderer: renderer,
		now:      time.Now,
	}
}

// Badge handles GET /badge
// @Summary Render a visitor badge
// @Description Counts a hit (unless hit=false) and returns the badge as SVG
// @Tags badge
// @Produce image/svg+xml
// @Param page_id query string true "Page id"
// @Param hit query string false "Count this request (default true)"
// @Param color query string false "Message color"
// @Param lcolor query string false "Label color"
// @Param style query string false "Badge style"
// @Param text query string false "Label text"
// @Param logo query string false "Logo slug"
// @Param logoColor query string false "Logo color"
// @Param custom query string false "Message template, CNT is replaced by the count"
// @Param unique query string false "Allow caches to keep the badge for ten minutes"
// @Success 200
// @Failure 429
// @Router /badge [get]
func (h *BadgeHandler) Badge(c *gin.Context) {
	ctx := c.Request.Context()
	pageID := c.Query("page_id")
	if pageID == "" {
		abortWithError(c, http.StatusBadRequest, "page_id is required")
		return
	}

	limit, err := h.service.CheckRateLimit(ctx, pageID, model.LimitBadge)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	setRateLimitHeaders(c, limit)

	now := h.now()
	if !limit.Allowed {
		c.Header("Retry-After", strconv.FormatInt(retryAfterSeconds(limit.ResetAt, now), 10))
		c.Data(http.StatusTooManyRequests, svgContentType, render.ErrorBadge(render.RateLimitMessage))
		return
	}

	var count int64
	if countHit(c) {
		count, err = h.service.FetchAndIncrement(ctx, pageID, hitInput(c))
	} else {
		count, err = h.service.FetchCount(ctx, pageID)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}

	text := strconv.FormatInt(count, 10)
	if custom := c.Query("custom"); custom != "" {
		text = strings.Replace(custom, "CNT", text, 1)
	}

	svg, err := h.renderer.Render(ctx, render.BadgeParams{
		Label:      c.Query("text"),
		Text:       text,
		Color:      c.Query("color"),
		LabelColor: c.Query("lcolor"),
		Style:      c.Query("style"),
		Logo:       c.Query("logo"),
		LogoColor:  c.Query("logoColor"),
	}.WithDefaults())
	if err != nil {
		log.Error().Err(err).Str("page_id", pageID).Msg("Failed to render badge")
		abortWithError(c, http.StatusInternalServerError, "Failed to create badge")
		return
	}

	setCacheHeaders(c, now, c.Query("unique") != "")
	c.Data(http.StatusOK, svgContentType, svg)
}

// countHit is true unless hit is present and neither "true" nor "yes"
func countHit(c *gin.Context) bool {
	v, ok := c.GetQuery("hit")
	return !ok || strings.EqualFold(v, "true") || v == "yes"
}

// hitInput collects requester metadata from the edge headers
func hitInput(c *gin.Context) model.HitInput {
	ip := c.GetHeader("CF-Connecting-IP")
	if ip == "" {
		ip = c.ClientIP()
	}
	return model.HitInput{
		IP:        orDefault(ip, unknownValue),
		Referrer:  orDefault(c.GetHeader("Referer"), "direct"),
		Country:   orDefault(c.GetHeader("CF-IPCountry"), unknownValue),
		UserAgent: orDefault(c.GetHeader("User-Agent"), unknownValue),
	}
}

// setCacheHeaders backdates Date so proxies treat the badge as stale.
// Unique badges may be cached for cacheSkew.
func setCacheHeaders(c *gin.Context, now time.Time, unique bool) {
	date := now.Add(-cacheSkew).UTC().Format(http.TimeFormat)
	expires := date
	if unique {
		expires = now.Add(cacheSkew).UTC().Format(http.TimeFormat)
	} else {
		c.Header("Cache-Control", "no-cache,max-age=0")
	}
	c.Header("Date", date)
	c.Header("Expires", expires)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
