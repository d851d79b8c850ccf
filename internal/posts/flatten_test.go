package posts

import (
	"testing"

	"notionblog/internal/notion"
)

func richText(text string) []notion.RichText {
	return []notion.RichText{{Type: "text", PlainText: text}}
}

func TestFlatten_PreservesOrderAndDropsUnrecognized(t *testing.T) {
	blocks := []notion.Block{
		{Type: "paragraph", Paragraph: &notion.RichTextValue{RichText: richText("one")}},
		{Type: "image"},
		{Type: "heading_2", Heading2: &notion.RichTextValue{RichText: richText("two")}},
		{Type: "toggle"},
		{Type: "quote", Quote: &notion.RichTextValue{RichText: richText("three")}},
		{Type: "heading_3", Heading3: &notion.RichTextValue{RichText: richText("four")}},
	}

	content := Flatten(blocks)
	if len(content) != 4 {
		t.Fatalf("expected 4 records, got %d: %+v", len(content), content)
	}

	wantTypes := []ContentType{ContentParagraph, ContentHeading2, ContentQuote, ContentHeading3}
	wantTexts := []string{"one", "two", "three", "four"}
	for i, record := range content {
		if record.Type != wantTypes[i] {
			t.Fatalf("record %d: expected type %s, got %s", i, wantTypes[i], record.Type)
		}
		if record.Text != wantTexts[i] {
			t.Fatalf("record %d: expected text %q, got %q", i, wantTexts[i], record.Text)
		}
	}
}

func TestFlatten_OneRecordPerBlock(t *testing.T) {
	blocks := []notion.Block{
		{Type: "heading_2", Heading2: &notion.RichTextValue{RichText: richText("heading")}},
	}

	content := Flatten(blocks)
	if len(content) != 1 {
		t.Fatalf("expected exactly one record per recognized block, got %d", len(content))
	}
}

func TestFlatten_CodeKeepsLanguage(t *testing.T) {
	blocks := []notion.Block{
		{Type: "code", Code: &notion.CodeValue{
			RichText: richText("fmt.Println(\"hi\")"),
			Language: "go",
		}},
	}

	content := Flatten(blocks)
	if len(content) != 1 {
		t.Fatalf("expected one record, got %d", len(content))
	}
	if content[0].Language != "go" {
		t.Fatalf("expected language to round-trip unchanged, got %q", content[0].Language)
	}
	if content[0].Text != "fmt.Println(\"hi\")" {
		t.Fatalf("unexpected code text %q", content[0].Text)
	}
}

func TestFlatten_EmptyInput(t *testing.T) {
	content := Flatten(nil)
	if len(content) != 0 {
		t.Fatalf("expected empty content sequence, got %d records", len(content))
	}
}

func TestFlatten_MalformedBlocksCoerceToEmptyText(t *testing.T) {
	blocks := []notion.Block{
		{Type: "paragraph"},
		{Type: "code"},
		{Type: "quote", Quote: &notion.RichTextValue{}},
	}

	content := Flatten(blocks)
	if len(content) != 3 {
		t.Fatalf("expected 3 records, got %d", len(content))
	}
	for i, record := range content {
		if record.Text != "" {
			t.Fatalf("record %d: expected empty text, got %q", i, record.Text)
		}
	}
}

func TestFlatten_ReadsFirstRichTextRunOnly(t *testing.T) {
	blocks := []notion.Block{
		{Type: "paragraph", Paragraph: &notion.RichTextValue{RichText: []notion.RichText{
			{PlainText: "first"},
			{PlainText: " second"},
		}}},
	}

	content := Flatten(blocks)
	if content[0].Text != "first" {
		t.Fatalf("expected first run only, got %q", content[0].Text)
	}
}
