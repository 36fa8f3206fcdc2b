package render

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

var rejectedImagePatterns = []string{"placeholder", "thumb.jpg", "no-image", "default", "/templates/"}

// ValidMediaURL reports whether s is an absolute URL a media element may load.
func ValidMediaURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	case "data", "blob":
		return u.Opaque != "" || u.Path != ""
	}
	return false
}

// ValidImageURL additionally rejects the stock placeholder paths older
// layouts were seeded with.
func ValidImageURL(s string) bool {
	if !ValidMediaURL(s) {
		return false
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "data:") {
		return true
	}
	lower := strings.ToLower(s)
	for _, pattern := range rejectedImagePatterns {
		if strings.Contains(lower, pattern) {
			return false
		}
	}
	return true
}

var svgEscaper = strings.NewReplacer(
	"%", "%25",
	"<", "%3C",
	">", "%3E",
	"#", "%23",
	`"`, "%22",
	"'", "%27",
	" ", "%20",
)

// PlaceholderSVG returns an inline data URI of a grey box with a label.
func PlaceholderSVG(width, height int, label string) string {
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d"><rect width="%d" height="%d" fill="#f3f4f6"/><text x="%d" y="%d" text-anchor="middle" fill="#6b7280" font-size="16">%s</text></svg>`,
		width, height, width, height, width, height, width/2, height/2, html.EscapeString(label),
	)
	return "data:image/svg+xml," + svgEscaper.Replace(svg)
}

// mediaSource picks the source an element may load for an asset in this mode.
// Pending uploads only exist in the editor, so public pages never load them.
func mediaSource(a blocks.Asset, mode Mode) string {
	if a.IsPending() {
		if mode != ModeEditPreview {
			return ""
		}
		return a.PreviewSource()
	}
	return a.URL()
}

type imageSpec struct {
	src         string
	alt         string
	width       int
	height      int
	placeholder string
	class       string
}

// image renders an <img>. Invalid sources are swapped for the placeholder up
// front, and load failures swap to it at runtime through onerror.
func image(spec imageSpec) *html.Node {
	placeholder := PlaceholderSVG(orInt(spec.width, 400), orInt(spec.height, 300), or(spec.placeholder, "Image"))
	if !ValidImageURL(spec.src) {
		return el("img", attrs(
			"src", placeholder,
			"alt", spec.alt,
			"class", strings.TrimSpace(spec.class+" media-placeholder"),
			"data-placeholder", "true",
		))
	}
	return el("img", attrs(
		"src", strings.TrimSpace(spec.src),
		"alt", spec.alt,
		"class", spec.class,
		"loading", "lazy",
		"onerror", "this.onerror=null;this.src='"+placeholder+"'",
	))
}

// placeholderBox is the non-image empty state for media slots.
func placeholderBox(label string) *html.Node {
	return el("div", attrs("class", "media-placeholder", "data-placeholder", "true"), tag("span", nil, label))
}

type videoSpec struct {
	src      string
	autoplay bool
	muted    bool
	loop     bool
	controls bool
	class    string
	label    string
}

func video(spec videoSpec) *html.Node {
	if !ValidMediaURL(spec.src) {
		return placeholderBox(or(spec.label, "Video Preview"))
	}
	kv := attrs("class", spec.class, "playsinline", "playsinline", "preload", "metadata")
	for _, flag := range []struct {
		on   bool
		name string
	}{{spec.autoplay, "autoplay"}, {spec.muted, "muted"}, {spec.loop, "loop"}, {spec.controls, "controls"}} {
		if flag.on {
			kv = append(kv, flag.name, flag.name)
		}
	}
	fallback := el("div", attrs("class", "media-placeholder", "data-placeholder", "true", "hidden", "hidden"), tag("span", nil, or(spec.label, "Video Preview")))
	kv = append(kv, "src", strings.TrimSpace(spec.src), "onerror", "this.hidden=true;this.nextElementSibling.hidden=false")
	return el("div", attrs("class", "video-frame"), el("video", kv), fallback)
}
