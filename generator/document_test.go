package generator

import (
	"strings"
	"testing"

	"github.com/moneygate/tool-service/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapText_NoLineExceedsWidth(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta epsilon ", 20)
	lines := WrapText(text, 40)

	require.Greater(t, len(lines), 1)
	for i, line := range lines {
		assert.LessOrEqual(t, len(line), 40, "line %d too long: %q", i, line)
	}
}

func TestWrapText_NeverSplitsWords(t *testing.T) {
	text := "supercalifragilistic expialidocious words stay whole"
	joined := strings.Join(WrapText(text, 25), " ")
	for _, w := range strings.Fields(text) {
		assert.Contains(t, strings.Fields(joined), w)
	}
}

func TestWrapText_KeepsExplicitNewlines(t *testing.T) {
	lines := WrapText("one\ntwo\n\nthree", 80)
	assert.Equal(t, []string{"one", "two", "", "three"}, lines)
}

func TestBuildDocument_MortgageLetterBody(t *testing.T) {
	doc, err := BuildDocument(DocumentOptions{
		Title:      "Hardship Letter",
		TemplateID: "mortgage-letter",
	})
	require.NoError(t, err)

	var all []string
	for _, b := range doc.Blocks {
		all = append(all, b.Lines...)
	}
	body := strings.Join(all, "\n")
	assert.Contains(t, body, "Re: Mortgage Hardship Request")
	assert.Contains(t, body, "Dear [Lender Name],")
	assert.Contains(t, body, "Date: [Date]")
}

func TestBuildDocument_LetterDateFromOptions(t *testing.T) {
	doc, err := BuildDocument(DocumentOptions{
		Title:      "Letter",
		TemplateID: "mortgage-letter",
		LetterDate: "2025-03-01",
	})
	require.NoError(t, err)

	var all []string
	for _, b := range doc.Blocks {
		all = append(all, b.Lines...)
	}
	assert.Contains(t, strings.Join(all, "\n"), "Date: 2025-03-01")
}

func TestBuildDocument_BrandingFixedPosition(t *testing.T) {
	short := DocumentOptions{Title: "A", TemplateID: "x", IncludeBranding: true, Content: "short"}
	long := DocumentOptions{Title: "B", TemplateID: "x", IncludeBranding: true,
		Content: strings.Repeat("a very long body that keeps going ", 50)}

	for _, opts := range []DocumentOptions{short, long} {
		doc, err := BuildDocument(opts)
		require.NoError(t, err)

		var branding *TextBlock
		for i := range doc.Blocks {
			if len(doc.Blocks[i].Lines) == 1 && doc.Blocks[i].Lines[0] == template.BrandingLine {
				require.Nil(t, branding, "exactly one branding block expected")
				branding = &doc.Blocks[i]
			}
		}
		require.NotNil(t, branding)
		assert.Equal(t, brandingY, branding.Y)
		assert.Equal(t, smallFontSize, branding.FontSize)
		assert.True(t, branding.Gray)
	}
}

func TestBuildDocument_ResourceLinks(t *testing.T) {
	doc, err := BuildDocument(DocumentOptions{Title: "T", TemplateID: "x", IncludeResourceLinks: true})
	require.NoError(t, err)

	found := false
	for _, b := range doc.Blocks {
		if len(b.Lines) > 0 && b.Lines[0] == template.ResourcesHeading {
			found = true
			assert.Equal(t, resourcesY, b.Y)
			assert.Contains(t, b.Lines, template.ResourceCFPB)
		}
	}
	assert.True(t, found)

	doc, err = BuildDocument(DocumentOptions{Title: "T", TemplateID: "x"})
	require.NoError(t, err)
	for _, b := range doc.Blocks {
		if len(b.Lines) > 0 {
			assert.NotEqual(t, template.ResourcesHeading, b.Lines[0])
		}
	}
}

func TestBuildDocument_GenericEchoesDescription(t *testing.T) {
	doc, err := BuildDocument(DocumentOptions{
		Title:       "Custom Doc",
		Description: "my description",
		TemplateID:  "unknown-template",
	})
	require.NoError(t, err)

	var all []string
	for _, b := range doc.Blocks {
		all = append(all, b.Lines...)
	}
	body := strings.Join(all, "\n")
	assert.Contains(t, body, "my description")
	assert.Contains(t, body, "visit www.moneygate.com")
}

func TestBuildDocument_NegativeFontSizeFails(t *testing.T) {
	_, err := BuildDocument(DocumentOptions{Title: "T", FontSize: -4})
	require.Error(t, err)
}

func TestBuildDocument_Deterministic(t *testing.T) {
	opts := DocumentOptions{Title: "Letter", TemplateID: "mortgage-letter", IncludeBranding: true}
	a, err := BuildDocument(opts)
	require.NoError(t, err)
	b, err := BuildDocument(opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncodePDF_ProducesPDF(t *testing.T) {
	doc, err := BuildDocument(DocumentOptions{
		Title:                "Hardship Letter",
		TemplateID:           "mortgage-letter",
		IncludeBranding:      true,
		IncludeResourceLinks: true,
	})
	require.NoError(t, err)

	data, err := EncodePDF(doc)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data[:8]), "%PDF-"))
}
