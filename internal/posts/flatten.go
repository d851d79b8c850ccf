package posts

import "notionblog/internal/notion"

// Flatten maps recognized blocks into Content records, preserving source
// order and dropping everything else. Each block yields at most one record,
// reading only its first rich-text run; a recognized block with no text
// flattens to an empty record rather than an error.
func Flatten(blocks []notion.Block) []Content {
	content := make([]Content, 0, len(blocks))
	for _, block := range blocks {
		record, ok := flattenBlock(block)
		if !ok {
			continue
		}
		content = append(content, record)
	}

	return content
}

func flattenBlock(block notion.Block) (Content, bool) {
	switch block.Type {
	case "paragraph":
		return Content{Type: ContentParagraph, Text: valueText(block.Paragraph)}, true
	case "heading_2":
		return Content{Type: ContentHeading2, Text: valueText(block.Heading2)}, true
	case "heading_3":
		return Content{Type: ContentHeading3, Text: valueText(block.Heading3)}, true
	case "quote":
		return Content{Type: ContentQuote, Text: valueText(block.Quote)}, true
	case "code":
		if block.Code == nil {
			return Content{Type: ContentCode}, true
		}
		return Content{
			Type:     ContentCode,
			Text:     firstPlainText(block.Code.RichText),
			Language: block.Code.Language,
		}, true
	default:
		return Content{}, false
	}
}

func valueText(value *notion.RichTextValue) string {
	if value == nil {
		return ""
	}

	return firstPlainText(value.RichText)
}
