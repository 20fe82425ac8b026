package service

import (
	"net/url"
	"strings"
)

// DirectReferrer labels hits without a usable referrer
const DirectReferrer = "Direct"

type uaRule struct {
	match string
	label string
}

// Bots are checked before browsers
var botAgents = []uaRule{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"slackbot", "Slackbot"},
	{"twitterbot", "Twitterbot"},
	{"facebookexternalhit", "Facebook Bot"},
	{"linkedinbot", "LinkedIn Bot"},
	{"discordbot", "Discord Bot"},
	{"whatsapp", "WhatsApp"},
}

// ClassifyReferrer returns the referrer hostname, or Direct
func ClassifyReferrer(referrer string) string {
	if referrer == "" || strings.EqualFold(referrer, "direct") {
		return DirectReferrer
	}
	u, err := url.Parse(referrer)
	if err != nil || u.Hostname() == "" {
		return DirectReferrer
	}
	return u.Hostname()
}

// SimplifyUserAgent maps a user agent string to a short label
func SimplifyUserAgent(userAgent string) string {
	ua := strings.ToLower(userAgent)

	for _, rule := range botAgents {
		if strings.Contains(ua, rule.match) {
			return rule.label
		}
	}

	switch {
	case strings.Contains(ua, "edg/"):
		return "Edge"
	case strings.Contains(ua, "chrome/") && !strings.Contains(ua, "edg"):
		return "Chrome"
	case strings.Contains(ua, "firefox/"):
		return "Firefox"
	case strings.Contains(ua, "safari/") && !strings.Contains(ua, "chrome"):
		return "Safari"
	case strings.Contains(ua, "github-camo"):
		return "GitHub Camo"
	}
	return "Other"
}

// DetectPlatform maps a user agent string to a platform label
func DetectPlatform(userAgent string) string {
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "bot"), strings.Contains(ua, "crawler"), strings.Contains(ua, "spider"):
		return "Bot"
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ipod"):
		return "iOS"
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	case strings.Contains(ua, "cros"):
		return "Chrome OS"
	}
	return "Other"
}
