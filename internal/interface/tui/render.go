package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/collections"
)

// RenderMarkdown renders markdown with the glamour style matching theme.
func RenderMarkdown(content string, width int, theme collections.Theme) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	style := "light"
	if theme == collections.ThemeDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// recommendationsMarkdown lists the tips for tag as a markdown section.
func recommendationsMarkdown(title string, tag catalog.ClimateTag, lang collections.Language) string {
	tips := catalog.Recommendations(tag, catalog.Language(lang))
	if len(tips) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("### " + title + "\n\n")
	for _, tip := range tips {
		b.WriteString("- " + tip + "\n")
	}
	return b.String()
}
