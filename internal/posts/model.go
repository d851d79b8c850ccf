package posts

// ContentType tags the variants of a flattened content record.
type ContentType string

const (
	ContentParagraph ContentType = "paragraph"
	ContentHeading2  ContentType = "heading_2"
	ContentHeading3  ContentType = "heading_3"
	ContentQuote     ContentType = "quote"
	ContentCode      ContentType = "code"
)

// Content is one flattened block. Language is set for code only.
type Content struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text"`
	Language string      `json:"language,omitempty"`
}

// Summary is the list-view shape of a post. Title may be empty when the page
// carries no usable title property; Slug always holds something addressable.
type Summary struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	EditedAt  string `json:"edited_at"`
}

type Post struct {
	Summary
	Content []Content `json:"content"`
}
