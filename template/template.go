// Package template holds the fixed recipes behind each tool template id.
// Recipes are pure data; the generator package turns them into workbooks
// and documents. Unknown ids resolve to a generic recipe, never an error.
package template

// SpreadsheetRecipe describes the fixed grid of one spreadsheet template.
// Cell values are strings, numbers, or formula strings prefixed with '='.
type SpreadsheetRecipe struct {
	ID        string
	SheetName string
	Rows      [][]any
	// Optional second sheet of usage guidance, emitted only when the
	// caller asks for resource links. Nil means the template has none.
	Instructions *ExtraSheet
	// Optional breakdown sheet emitted for detailed/comprehensive
	// complexity. Nil means the template has none.
	Breakdown *ExtraSheet
	// Generic recipes carry no fixed rows: the generator echoes the
	// caller's title and description instead.
	Generic bool
}

type ExtraSheet struct {
	Name string
	Rows [][]any
}

// DocumentRecipe describes the fixed layout of one document template.
// Coordinates are millimetres on an A4 page, matching the generator's
// page setup. Bracketed placeholders are filled in by the end user.
type DocumentRecipe struct {
	ID             string
	SenderLines    []string
	RecipientLines []string
	Subject        string
	Salutation     string
	// Body paragraphs, wrapped by the generator at the content width.
	Body    []string
	Generic bool
}

const (
	ComplexityBasic         = "basic"
	ComplexityDetailed      = "detailed"
	ComplexityComprehensive = "comprehensive"
)

var spreadsheetRecipes = map[string]SpreadsheetRecipe{
	savingsTracker.ID: savingsTracker,
	budgetTemplate.ID: budgetTemplate,
}

var documentRecipes = map[string]DocumentRecipe{
	mortgageLetter.ID: mortgageLetter,
}

// ResolveSpreadsheet returns the recipe for id, or the generic fallback.
func ResolveSpreadsheet(id string) SpreadsheetRecipe {
	if r, ok := spreadsheetRecipes[id]; ok {
		return r
	}
	return SpreadsheetRecipe{ID: id, SheetName: "Sheet1", Generic: true}
}

// ResolveDocument returns the recipe for id, or the generic fallback.
func ResolveDocument(id string) DocumentRecipe {
	if r, ok := documentRecipes[id]; ok {
		return r
	}
	return DocumentRecipe{ID: id, Generic: true}
}

// CatalogEntry is one known template as listed by the catalog endpoint.
type CatalogEntry struct {
	ID       string `json:"id"`
	FileType string `json:"file_type"`
}

// Catalog lists every registered template id, spreadsheets first.
func Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(spreadsheetRecipes)+len(documentRecipes))
	for _, r := range []SpreadsheetRecipe{savingsTracker, budgetTemplate} {
		entries = append(entries, CatalogEntry{ID: r.ID, FileType: "spreadsheet"})
	}
	for _, r := range []DocumentRecipe{mortgageLetter} {
		entries = append(entries, CatalogEntry{ID: r.ID, FileType: "document"})
	}
	return entries
}
