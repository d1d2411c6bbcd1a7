package generator

// SpreadsheetOptions is the customization input for one spreadsheet tool.
// It is snapshotted verbatim onto the generated tool record.
type SpreadsheetOptions struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	TargetAudience       string `json:"target_audience"`
	Complexity           string `json:"complexity"`
	IncludeBranding      bool   `json:"include_branding"`
	IncludeResourceLinks bool   `json:"include_resource_links"`
	TemplateID           string `json:"template_id"`

	// Extra rows appended to generic spreadsheets. Known templates keep
	// their fixed layout and ignore these.
	Columns []string `json:"columns,omitempty"`
	Rows    [][]any  `json:"rows,omitempty"`
}

// DocumentOptions is the customization input for one document tool.
type DocumentOptions struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	TargetAudience       string `json:"target_audience"`
	Complexity           string `json:"complexity"`
	IncludeBranding      bool   `json:"include_branding"`
	IncludeResourceLinks bool   `json:"include_resource_links"`
	TemplateID           string `json:"template_id"`

	Content    string  `json:"content,omitempty"`
	HeaderText string  `json:"header_text,omitempty"`
	FooterText string  `json:"footer_text,omitempty"`
	FontSize   float64 `json:"font_size,omitempty"`
	// Letter date rendered into letter templates. Left empty, a [Date]
	// placeholder is emitted so output stays reproducible.
	LetterDate string `json:"letter_date,omitempty"`
}
