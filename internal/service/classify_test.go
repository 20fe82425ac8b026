package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyReferrer(t *testing.T) {
	tests := []struct {
		referrer string
		expected string
	}{
		{"https://github.com/user/repo", "github.com"},
		{"http://www.example.org:8080/path?q=1", "www.example.org"},
		{"direct", "Direct"},
		{"", "Direct"},
		{"not a url", "Direct"},
		{"http://[::1", "Direct"},
		{"/relative/path", "Direct"},
	}

	for _, tt := range tests {
		t.Run(tt.referrer, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyReferrer(tt.referrer))
		})
	}
}

func TestSimplifyUserAgent(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{"googlebot", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", "Googlebot"},
		{"bingbot", "Mozilla/5.0 (compatible; bingbot/2.0)", "Bingbot"},
		{"slackbot", "Slackbot-LinkExpanding 1.0", "Slackbot"},
		{"twitterbot", "Twitterbot/1.0", "Twitterbot"},
		{"facebook", "facebookexternalhit/1.1", "Facebook Bot"},
		{"linkedin", "LinkedInBot/1.0", "LinkedIn Bot"},
		{"discord", "Mozilla/5.0 (compatible; Discordbot/2.0)", "Discord Bot"},
		{"whatsapp", "WhatsApp/2.23.20.0", "WhatsApp"},
		{"bot wins over browser", "Mozilla/5.0 Chrome/120.0 Googlebot", "Googlebot"},
		{"edge", "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0 Safari/537.36 Edg/120.0", "Edge"},
		{"chrome", "Mozilla/5.0 (X11; Linux x86_64) Chrome/120.0 Safari/537.36", "Chrome"},
		{"firefox", "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", "Firefox"},
		{"safari", "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) Version/17.0 Safari/605.1.15", "Safari"},
		{"camo", "github-camo (4b2e4f6b)", "GitHub Camo"},
		{"unknown", "curl/8.0", "Other"},
		{"empty", "", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SimplifyUserAgent(tt.ua))
		})
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{"bot before os", "Mozilla/5.0 (Linux; Android 6.0) Googlebot", "Bot"},
		{"crawler", "SomeCrawler/1.0", "Bot"},
		{"spider", "Baiduspider", "Bot"},
		{"android", "Mozilla/5.0 (Linux; Android 14; Pixel 8)", "Android"},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", "iOS"},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", "iOS"},
		{"windows", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", "Windows"},
		{"macos", "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0)", "macOS"},
		{"linux", "Mozilla/5.0 (X11; Linux x86_64)", "Linux"},
		{"chrome os", "Mozilla/5.0 (X11; CrOS x86_64 14541.0.0)", "Chrome OS"},
		{"unknown", "github-camo (4b2e4f6b)", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.ua))
		})
	}
}
