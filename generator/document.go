package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/moneygate/tool-service/template"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimetres (A4 portrait) and the character width body
// text is wrapped at. Positions are fixed per template, there is no layout
// engine.
const (
	pageWidth        = 210.0
	pageBreakY       = 280.0
	marginLeft       = 20.0
	titleY           = 20.0
	resourcesY       = 270.0
	brandingY        = 285.0
	footerOverrideY  = 262.0
	bodyLineHeight   = 5.0
	smallLineHeight  = 5.0
	defaultFontSize  = 12.0
	titleFontSize    = 16.0
	smallFontSize    = 8.0
	ContentWidthCols = 90
)

// Document is the in-memory paginated document: a sequence of positioned
// text blocks, drawn in order.
type Document struct {
	Title  string
	Blocks []TextBlock
}

type TextBlock struct {
	X          float64
	Y          float64
	FontSize   float64
	LineHeight float64
	Lines      []string
	Centered   bool
	Gray       bool
}

// BuildDocument synthesizes the document for the options' template.
// Deterministic: the letter date comes from the options, never the clock.
func BuildDocument(opts DocumentOptions) (*Document, error) {
	if opts.FontSize < 0 {
		return nil, fmt.Errorf("font_size must not be negative, got %v", opts.FontSize)
	}
	bodySize := opts.FontSize
	if bodySize == 0 {
		bodySize = defaultFontSize
	}

	recipe := template.ResolveDocument(opts.TemplateID)

	doc := &Document{Title: opts.Title}
	doc.Blocks = append(doc.Blocks, TextBlock{
		X: pageWidth / 2, Y: titleY,
		FontSize: titleFontSize, LineHeight: bodyLineHeight + 2,
		Lines:    []string{opts.Title},
		Centered: true,
	})

	if opts.HeaderText != "" {
		doc.Blocks = append(doc.Blocks, TextBlock{
			X: marginLeft, Y: 12,
			FontSize: smallFontSize + 1, LineHeight: smallLineHeight,
			Lines: []string{opts.HeaderText},
		})
	}

	if recipe.Generic {
		doc.Blocks = append(doc.Blocks, TextBlock{
			X: marginLeft, Y: 40,
			FontSize: bodySize, LineHeight: bodyLineHeight,
			Lines: WrapText(opts.Description, ContentWidthCols),
		})
		body := opts.Content
		if body == "" {
			body = template.GenericDocumentBody
		}
		doc.Blocks = append(doc.Blocks, TextBlock{
			X: marginLeft, Y: 60,
			FontSize: bodySize, LineHeight: bodyLineHeight,
			Lines: WrapText(body, ContentWidthCols),
		})
	} else {
		date := opts.LetterDate
		if date == "" {
			date = "[Date]"
		}
		sender := append(append([]string{}, recipe.SenderLines...), "Date: "+date)
		doc.Blocks = append(doc.Blocks,
			TextBlock{X: marginLeft, Y: 40, FontSize: bodySize, LineHeight: smallLineHeight, Lines: sender},
			TextBlock{X: marginLeft, Y: 80, FontSize: bodySize, LineHeight: smallLineHeight, Lines: recipe.RecipientLines},
			TextBlock{X: marginLeft, Y: 105, FontSize: bodySize, LineHeight: bodyLineHeight, Lines: []string{recipe.Subject}},
			TextBlock{X: marginLeft, Y: 120, FontSize: bodySize, LineHeight: bodyLineHeight, Lines: []string{recipe.Salutation}},
		)
		body := strings.Join(recipe.Body, "\n\n")
		if opts.Content != "" {
			body = opts.Content
		}
		doc.Blocks = append(doc.Blocks, TextBlock{
			X: marginLeft, Y: 130,
			FontSize: bodySize, LineHeight: bodyLineHeight,
			Lines: WrapText(body, ContentWidthCols),
		})
	}

	if opts.FooterText != "" {
		doc.Blocks = append(doc.Blocks, TextBlock{
			X: marginLeft, Y: footerOverrideY,
			FontSize: smallFontSize, LineHeight: smallLineHeight,
			Lines: []string{opts.FooterText},
		})
	}

	if opts.IncludeResourceLinks {
		doc.Blocks = append(doc.Blocks, TextBlock{
			X: marginLeft, Y: resourcesY,
			FontSize: smallFontSize, LineHeight: smallLineHeight,
			Lines: []string{
				template.ResourcesHeading,
				template.ResourceMoneyGate,
				template.ResourceCFPB,
			},
		})
	}

	if opts.IncludeBranding {
		doc.Blocks = append(doc.Blocks, TextBlock{
			X: pageWidth / 2, Y: brandingY,
			FontSize: smallFontSize, LineHeight: smallLineHeight,
			Lines:    []string{template.BrandingLine},
			Centered: true,
			Gray:     true,
		})
	}

	return doc, nil
}

// EncodePDF serializes the document to PDF bytes, breaking to a new page
// when a flowing block runs past the bottom of the content area.
func EncodePDF(doc *Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	for _, block := range doc.Blocks {
		pdf.SetFont("Helvetica", "", block.FontSize)
		if block.Gray {
			pdf.SetTextColor(100, 100, 100)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		y := block.Y
		for _, line := range block.Lines {
			if y > pageBreakY {
				pdf.AddPage()
				y = titleY
			}
			x := block.X
			if block.Centered {
				x = (pageWidth - pdf.GetStringWidth(line)) / 2
			}
			pdf.Text(x, y, line)
			y += block.LineHeight
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// WrapText greedily wraps s at width columns. Explicit newlines are kept
// and words are never split; a single word longer than width gets its own
// line.
func WrapText(s string, width int) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return out
}
