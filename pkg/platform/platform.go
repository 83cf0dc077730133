// Package platform classifies social-media URLs against the fixed set of
// platforms the service recognizes.
package platform

import "strings"

// Platform identifies a social-media platform. The numeric values line up
// with the rows seeded into the social_media_platforms table by migrate.
type Platform uint

const (
	None Platform = iota
	Twitter
	Facebook
	Instagram
	Untappd
)

func (p Platform) String() string {
	switch p {
	case Twitter:
		return "Twitter/X"
	case Facebook:
		return "Facebook"
	case Instagram:
		return "Instagram"
	case Untappd:
		return "Untappd"
	default:
		return "none"
	}
}

// All lists the recognized platforms in seed order.
func All() []Platform {
	return []Platform{Twitter, Facebook, Instagram, Untappd}
}

// Classify maps a URL to a platform by case-insensitive substring match,
// checked in fixed priority order. Malformed or unrecognized URLs report
// ok=false; no validation of the URL itself is performed.
func Classify(url string) (Platform, bool) {
	lowered := strings.ToLower(url)

	switch {
	case strings.Contains(lowered, "twitter.com") || strings.Contains(lowered, "x.com"):
		return Twitter, true
	case strings.Contains(lowered, "facebook.com"):
		return Facebook, true
	case strings.Contains(lowered, "instagram.com"):
		return Instagram, true
	case strings.Contains(lowered, "untappd.com"):
		return Untappd, true
	}

	return None, false
}
