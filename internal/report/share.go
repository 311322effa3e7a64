package report

import (
	"fmt"
	"net/url"

	"github.com/HendryAvila/facilistyles/internal/quiz"
)

// ShareText is the one-line message posted when sharing a result.
func ShareText(t *quiz.FacilitatorType) string {
	return fmt.Sprintf("My FacilitatorStyles result: %s! %s", t.Name, t.Tagline)
}

// ClipboardText is the share text followed by the link on its own line.
func ClipboardText(t *quiz.FacilitatorType, shareURL string) string {
	if shareURL == "" {
		return ShareText(t)
	}
	return ShareText(t) + "\n" + shareURL
}

// ShareLink is a prefilled post on a social network.
type ShareLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ShareLinks returns intent URLs for the supported networks.
func ShareLinks(text, shareURL string) []ShareLink {
	t := url.QueryEscape(text)
	u := url.QueryEscape(shareURL)
	return []ShareLink{
		{Name: "X", URL: "https://twitter.com/intent/tweet?text=" + t + "&url=" + u},
		{Name: "Facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + u + "&quote=" + t},
		{Name: "LINE", URL: "https://social-plugins.line.me/lineit/share?url=" + u + "&text=" + t},
	}
}
