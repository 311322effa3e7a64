package report

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/facilistyles/internal/catalog"
	"github.com/HendryAvila/facilistyles/internal/quiz"
)

// Overview lists every type grouped by family, as on the top screen.
// The type named by highlight, if any, is marked.
func Overview(c *catalog.Catalog, highlight string) string {
	var b strings.Builder
	b.WriteString("# FacilitatorStyles\n\n")
	fmt.Fprintf(&b, "%d questions, four axes, sixteen facilitator types.\n\n", quiz.TotalQuestions)
	for _, f := range c.Families() {
		fmt.Fprintf(&b, "## %s\n\n_%s_\n\n", f.Name, f.Description)
		for _, t := range c.Group(f) {
			mark := ""
			if t.ID == highlight {
				mark = " (your last result)"
			}
			fmt.Fprintf(&b, "- **%s** `%s`%s: %s\n", t.Name, t.ID, mark, t.Tagline)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// TypeDetail renders a single type with its tendencies and compatibility.
func TypeDetail(c *catalog.Catalog, t *quiz.FacilitatorType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", t.Name, t.Tagline)
	if f, ok := c.FamilyOf(t); ok {
		fmt.Fprintf(&b, "**Family:** %s\n\n", f.Name)
	}
	fmt.Fprintf(&b, "%s\n\n", t.Summary)
	for _, p := range t.Description {
		fmt.Fprintf(&b, "%s\n\n", p)
	}

	b.WriteString("## Tendencies\n\n")
	for _, a := range quiz.AxisOrder {
		tend := t.Profile.Get(a)
		label := string(tend)
		if ac, ok := c.AxisContent(a, tend); ok {
			label = ac.Label
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", axisName(c, a), label)
	}
	b.WriteString("\n")

	if len(t.GoodScenes) > 0 {
		b.WriteString("## Where this type shines\n\n")
		for _, s := range t.GoodScenes {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}
	writeCompatibility(&b, c, t.ID)
	return b.String()
}
