package clipnote

import (
	"fmt"
	"html"
	"strings"
)

// Part is one block of extracted content. The sequence of parts produced
// by a parser is reading order and must be preserved.
//
// Part is a closed sum type: the set of implementations is fixed in this
// package so consumers can type-switch exhaustively.
type Part interface {
	// Markdown renders the part as markdown.
	Markdown() string

	isPart()
}

// TextPart is a paragraph or heading.
type TextPart struct {
	Text string

	// Level is the heading level (1-6), or 0 for a plain paragraph.
	Level int

	// Bold marks a paragraph whose entire text was wrapped in emphasis
	// markup by the editor.
	Bold bool
}

func (p TextPart) isPart() {}

// Markdown renders the text as a heading, bold paragraph, or plain
// paragraph.
func (p TextPart) Markdown() string {
	switch {
	case p.Level > 0:
		return strings.Repeat("#", p.Level) + " " + p.Text
	case p.Bold:
		return "**" + p.Text + "**"
	default:
		return p.Text
	}
}

// ImagePart references an image by its resolved local path or its
// original remote URL.
type ImagePart struct {
	Ref string
	Alt string
}

func (p ImagePart) isPart() {}

// Markdown renders the image reference.
func (p ImagePart) Markdown() string {
	return fmt.Sprintf("![%s](%s)", p.Alt, p.Ref)
}

// TablePart preserves raw table markup verbatim.
type TablePart struct {
	HTML string
}

func (p TablePart) isPart() {}

// Markdown returns the raw table markup.
func (p TablePart) Markdown() string { return p.HTML }

// QuotePart preserves quote markup, or plain text wrapped as a block
// quote when no structured quote container existed.
type QuotePart struct {
	HTML string
	Text string
}

func (p QuotePart) isPart() {}

// Markdown returns the quote markup, or the plain text as a markdown
// block quote.
func (p QuotePart) Markdown() string {
	if p.HTML != "" {
		return p.HTML
	}
	return "> " + p.Text
}

// DividerPart is a horizontal rule.
type DividerPart struct{}

func (p DividerPart) isPart() {}

// Markdown renders the divider.
func (p DividerPart) Markdown() string { return "---" }

// LinkCardPart is a self-contained preview card for an external link.
type LinkCardPart struct {
	URL         string
	Title       string
	Description string
	Domain      string

	// ThumbnailRef is the resolved thumbnail reference, or empty when
	// thumbnail resolution failed or no thumbnail existed.
	ThumbnailRef string
}

func (p LinkCardPart) isPart() {}

// Markdown renders the card as embedded HTML, with or without the
// thumbnail depending on whether one was resolved.
func (p LinkCardPart) Markdown() string {
	title := p.Title
	if title == "" {
		title = "Link"
	}
	var b strings.Builder
	if p.ThumbnailRef != "" {
		b.WriteString(`<div class="link-card link-card-thumb">` + "\n")
		fmt.Fprintf(&b, `<img src=%q alt=%q />`+"\n", p.ThumbnailRef, title)
	} else {
		b.WriteString(`<div class="link-card">` + "\n")
	}
	fmt.Fprintf(&b, `<a href=%q target="_blank">%s</a>`+"\n", p.URL, html.EscapeString(title))
	if p.Description != "" {
		fmt.Fprintf(&b, `<p>%s</p>`+"\n", html.EscapeString(p.Description))
	}
	if p.Domain != "" {
		fmt.Fprintf(&b, `<span>%s</span>`+"\n", html.EscapeString(p.Domain))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// RawPart keeps unrecognized block markup with scripts and styles
// stripped.
type RawPart struct {
	HTML string
}

func (p RawPart) isPart() {}

// Markdown returns the raw markup.
func (p RawPart) Markdown() string { return p.HTML }

// RenderParts renders a part sequence to a markdown body, preserving
// order. Empty parts are skipped so the result never contains empty
// blocks.
func RenderParts(parts []Part) string {
	blocks := make([]string, 0, len(parts))
	for _, part := range parts {
		md := strings.TrimSpace(part.Markdown())
		if md == "" {
			continue
		}
		blocks = append(blocks, md)
	}
	return strings.Join(blocks, "\n\n")
}
