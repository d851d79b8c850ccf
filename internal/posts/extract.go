package posts

import (
	"strings"

	"notionblog/internal/notion"
)

// titleText returns the first rich-text segment of a title property, or ""
// when the property is absent, not a title, or empty.
func titleText(page notion.Page, name string) string {
	prop, ok := page.Properties[name]
	if !ok || prop.Type != "title" {
		return ""
	}

	return firstPlainText(prop.Title)
}

// richTextValue is titleText for rich_text properties.
func richTextValue(page notion.Page, name string) string {
	prop, ok := page.Properties[name]
	if !ok || prop.Type != "rich_text" {
		return ""
	}

	return firstPlainText(prop.RichText)
}

func firstPlainText(segments []notion.RichText) string {
	if len(segments) == 0 {
		return ""
	}

	return segments[0].PlainText
}

var slugReplacer = strings.NewReplacer(" ", "-", "_", "-")

// safeSlug reduces a raw slug to file-path-safe characters. Anything that
// reduces to nothing makes the caller fall back to the page ID.
func safeSlug(raw string) string {
	lowered := strings.ToLower(slugReplacer.Replace(strings.TrimSpace(raw)))

	var out strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			out.WriteRune(r)
		}
	}

	return strings.Trim(out.String(), "-")
}
