package notion

// RichText is a single segment of styled text inside a property or block.
type RichText struct {
	Type      string  `json:"type,omitempty"`
	PlainText string  `json:"plain_text"`
	Href      *string `json:"href,omitempty"`
}

// Property is the typed property bag entry of a page. Only the variants this
// blog reads are bound; everything else stays untouched on the wire.
type Property struct {
	ID       string     `json:"id,omitempty"`
	Type     string     `json:"type"`
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	Checkbox *bool      `json:"checkbox,omitempty"`
}

type Page struct {
	ID             string              `json:"id"`
	CreatedTime    string              `json:"created_time"`
	LastEditedTime string              `json:"last_edited_time"`
	URL            string              `json:"url,omitempty"`
	Properties     map[string]Property `json:"properties"`
}

type RichTextValue struct {
	RichText []RichText `json:"rich_text"`
}

type CodeValue struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language,omitempty"`
}

// Block carries the type tag plus one populated payload matching it.
type Block struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	HasChildren bool           `json:"has_children,omitempty"`
	Paragraph   *RichTextValue `json:"paragraph,omitempty"`
	Heading1    *RichTextValue `json:"heading_1,omitempty"`
	Heading2    *RichTextValue `json:"heading_2,omitempty"`
	Heading3    *RichTextValue `json:"heading_3,omitempty"`
	Quote       *RichTextValue `json:"quote,omitempty"`
	Code        *CodeValue     `json:"code,omitempty"`
}

type CheckboxFilter struct {
	Equals bool `json:"equals"`
}

type Filter struct {
	Property string          `json:"property"`
	Checkbox *CheckboxFilter `json:"checkbox,omitempty"`
}

type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

type DatabaseQuery struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

type PageList struct {
	Results    []Page  `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

type BlockList struct {
	Results    []Block `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}
