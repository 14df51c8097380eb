package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/idilsaglam/packlist/internal/model"
)

const summaryWidth = 80

// markdownEscaper backslash-escapes everything CommonMark treats as markup,
// so descriptions print as typed.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`, `{`, `\{`, `}`, `\}`,
	`[`, `\[`, `]`, `\]`, `(`, `\(`, `)`, `\)`, `#`, `\#`, `+`, `\+`,
	`-`, `\-`, `.`, `\.`, `!`, `\!`, `|`, `\|`, `<`, `\<`, `>`, `\>`, `~`, `\~`,
)

// summaryMarkdown lists items in input order as a task list.
func summaryMarkdown(items model.List) string {
	var b strings.Builder
	b.WriteString("# Packing list\n\n")
	for _, it := range items {
		box := " "
		if it.Packed {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s × %d\n", box, markdownEscaper.Replace(it.Description), it.Quantity)
	}
	if len(items) > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "_%s_\n", model.StatsMessage(items))
	return b.String()
}

func renderSummary(items model.List, plain bool) (string, error) {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(summaryWidth))
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(summaryMarkdown(items))
	if err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return out, nil
}
