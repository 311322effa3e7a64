// Package report renders diagnosis results and catalog pages as Markdown.
// The same text is returned by the MCP tools and shown, rendered through
// glamour, in the terminal UI.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/HendryAvila/facilistyles/internal/catalog"
	"github.com/HendryAvila/facilistyles/internal/quiz"
)

// barCells is the width of the score scale drawn for each axis.
const barCells = 20

// Options tunes result rendering.
type Options struct {
	// ShareURL is appended to the share text when set.
	ShareURL string
}

// Result renders a full diagnosis page.
func Result(res *quiz.Result, c *catalog.Catalog, opts Options) string {
	var b strings.Builder
	t := res.Type

	fmt.Fprintf(&b, "# %s\n\n", t.Name)
	fmt.Fprintf(&b, "_%s_\n\n", t.Tagline)
	if f, ok := c.FamilyOf(t); ok {
		fmt.Fprintf(&b, "**Family:** %s (%s)\n\n", f.Name, f.Description)
	}
	fmt.Fprintf(&b, "%s\n\n", t.Summary)
	for _, p := range t.Description {
		fmt.Fprintf(&b, "%s\n\n", p)
	}
	if t.Influence != "" {
		fmt.Fprintf(&b, "**Your influence:** %s\n\n", t.Influence)
	}

	if len(t.GoodScenes) > 0 {
		b.WriteString("## Where you shine\n\n")
		for _, s := range t.GoodScenes {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Your strengths at a glance\n\n")
	for _, q := range c.Quadrants(res.Profile) {
		fmt.Fprintf(&b, "- **%s: %s**: %s\n", q.AxisName, q.Label, strings.Join(q.Keywords, ", "))
	}
	b.WriteString("\n")

	b.WriteString("## Scores\n\n")
	b.WriteString("| Axis | Score | Tendency | Strength | Scale |\n")
	b.WriteString("|------|-------|----------|----------|-------|\n")
	for _, r := range res.Readings {
		fmt.Fprintf(&b, "| %s | %d | %s | %s (%d%%) | `%s` |\n",
			axisName(c, r.Axis), r.Score, TendencyLabel(r), r.Strength.Label(), r.Percent, ScoreBar(r.Axis, r.Score))
	}
	b.WriteString("\n")

	b.WriteString("## Axis details\n\n")
	for _, r := range res.Readings {
		writeReading(&b, c, r)
	}

	writeCofacilitation(&b, c, res)
	writeCompatibility(&b, c, t.ID)

	b.WriteString("## Share\n\n")
	fmt.Fprintf(&b, "> %s\n", ShareText(t))
	if opts.ShareURL != "" {
		fmt.Fprintf(&b, ">\n> %s\n", opts.ShareURL)
		b.WriteString("\n")
		for _, l := range ShareLinks(ShareText(t), opts.ShareURL) {
			fmt.Fprintf(&b, "- [%s](%s)\n", l.Name, l.URL)
		}
	}
	return b.String()
}

func writeReading(b *strings.Builder, c *catalog.Catalog, r quiz.AxisReading) {
	ac := r.Content
	if ac == nil {
		return
	}
	fmt.Fprintf(b, "### %s: %s\n\n", axisName(c, r.Axis), ac.Label)
	fmt.Fprintf(b, "%s\n\n%s\n\n", ac.Summary, ac.Detail)
	if len(ac.Strengths) > 0 {
		b.WriteString("**Strengths**\n\n")
		for _, p := range ac.Strengths {
			fmt.Fprintf(b, "- **%s**: %s\n", p.Title, p.Description)
		}
		b.WriteString("\n")
	}
	if len(ac.Weaknesses) > 0 {
		b.WriteString("**Watch out for**\n\n")
		for _, p := range ac.Weaknesses {
			fmt.Fprintf(b, "- **%s**: %s\n", p.Title, p.Description)
		}
		b.WriteString("\n")
	}
	if len(ac.GrowthHints) > 0 {
		b.WriteString("**Growth hints**\n\n")
		for _, h := range ac.GrowthHints {
			fmt.Fprintf(b, "- %s\n", h)
		}
		b.WriteString("\n")
	}
}

func writeCofacilitation(b *strings.Builder, c *catalog.Catalog, res *quiz.Result) {
	b.WriteString("## Co-facilitation\n\n")
	b.WriteString("### As the main facilitator\n\n")
	for _, r := range res.Readings {
		if r.Hint == nil {
			continue
		}
		fmt.Fprintf(b, "- **%s**: %s %s\n", r.Hint.Label, r.Hint.AsMain.Benefit, r.Hint.AsMain.Focus)
	}
	b.WriteString("\n### As the sub facilitator\n\n")
	for _, r := range res.Readings {
		if r.Hint == nil {
			continue
		}
		fmt.Fprintf(b, "- **%s** with the same tendency: %s\n", r.Hint.Label, r.Hint.AsSub.WithSame)
		fmt.Fprintf(b, "- **%s** with the opposite tendency: %s\n", r.Hint.Label, r.Hint.AsSub.WithOpposite)
	}
	if list := c.Checklist(); len(list) > 0 {
		b.WriteString("\n### Before you co-facilitate\n\n")
		for _, item := range list {
			fmt.Fprintf(b, "- [ ] %s\n", item)
		}
	}
	b.WriteString("\n")
}

func writeCompatibility(b *strings.Builder, c *catalog.Catalog, id string) {
	comp, ok := c.Compatibility(id)
	if !ok {
		return
	}
	b.WriteString("## Compatibility\n\n")
	writePairings(b, c, "Works well with", comp.Good)
	writePairings(b, c, "Needs care with", comp.Difficult)
}

func writePairings(b *strings.Builder, c *catalog.Catalog, title string, ps []catalog.Pairing) {
	if len(ps) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", title)
	for _, p := range ps {
		name := p.TypeID
		if t, ok := c.TypeByID(p.TypeID); ok {
			name = t.Name
		}
		fmt.Fprintf(b, "- **%s**: %s\n", name, p.Hint)
	}
	b.WriteString("\n")
}

// TendencyLabel is the tendency label, suffixed when the score is balanced.
func TendencyLabel(r quiz.AxisReading) string {
	label := string(r.Tendency)
	if r.Content != nil {
		label = r.Content.Label
	}
	if r.Strength == quiz.StrengthBalanced {
		label += " (balanced)"
	}
	return label
}

// ScoreBar draws the position of an axis score between its two poles,
// e.g. "trigger [-----o---------------] watch".
func ScoreBar(a quiz.Axis, score int) string {
	pa, pb, err := quiz.Poles(a)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s [%s] %s", pa, Marker(score, barCells), pb)
}

// Marker draws a track of width cells with an "o" at the score's position.
func Marker(score, width int) string {
	if width < 1 {
		return ""
	}
	pos := int(math.Round(float64(score-quiz.AxisMin) / float64(quiz.AxisMax-quiz.AxisMin) * float64(width-1)))
	pos = max(0, min(width-1, pos))
	return strings.Repeat("-", pos) + "o" + strings.Repeat("-", width-1-pos)
}

func axisName(c *catalog.Catalog, a quiz.Axis) string {
	if info, ok := c.Axis(a); ok {
		return info.Name
	}
	return string(a)
}
