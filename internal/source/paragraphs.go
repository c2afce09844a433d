package source

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultMinParagraphLength = 100
	previewWidth              = 100
	previewPlaceholder        = "..."
)

// Paragraphs splits text on newlines and keeps lines longer than minLen runes.
func Paragraphs(text string, minLen int) []Paragraph {
	if minLen <= 0 {
		minLen = DefaultMinParagraphLength
	}

	var out []Paragraph
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if utf8.RuneCountInString(trimmed) <= minLen {
			continue
		}
		out = append(out, Paragraph{
			Index:   len(out),
			Text:    line,
			Preview: Shorten(trimmed, previewWidth),
		})
	}
	return out
}

// Shorten collapses whitespace and cuts at a word boundary so the result,
// placeholder included, fits in width runes.
func Shorten(text string, width int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(collapsed) <= width {
		return collapsed
	}

	limit := width - utf8.RuneCountInString(previewPlaceholder)
	if limit <= 0 {
		return previewPlaceholder
	}

	var sb strings.Builder
	count := 0
	for _, word := range strings.Fields(collapsed) {
		n := utf8.RuneCountInString(word)
		extra := n
		if count > 0 {
			extra++
		}
		if count+extra > limit {
			break
		}
		if count > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(word)
		count += extra
	}
	if count == 0 {
		return previewPlaceholder
	}
	return sb.String() + previewPlaceholder
}

// SelectExcerpt joins the chosen paragraphs with blank lines. With nothing
// selected, or an out-of-range selection only, the whole text is used.
func SelectExcerpt(text string, paragraphs []Paragraph, selected []int) (string, bool) {
	var chosen []string
	for _, idx := range selected {
		if idx < 0 || idx >= len(paragraphs) {
			continue
		}
		chosen = append(chosen, paragraphs[idx].Text)
	}
	if len(chosen) == 0 {
		return text, true
	}
	return strings.Join(chosen, "\n\n"), false
}
