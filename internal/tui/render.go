package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/RAAHUL-tech/portfolio/internal/content"
	"github.com/RAAHUL-tech/portfolio/internal/section"
)

// span is the line range [start, end) a section occupies in the page.
type span struct {
	ID    section.ID
	Start int
	End   int
}

var titles = map[section.ID]string{
	section.Home:       "Home",
	section.About:      "About",
	section.Experience: "Experience",
	section.Skills:     "Skills",
	section.Projects:   "Projects",
	section.Blogs:      "Blogs",
	section.Contact:    "Contact",
}

// renderPage lays out every section in order and records where each one
// starts and ends. Sections not yet revealed are drawn faint.
func renderPage(order []section.ID, width int, st styles, revealed func(section.ID) bool) (string, []span) {
	width = max(width, 20)

	var (
		lines []string
		spans []span
	)
	for _, id := range order {
		block := renderSection(id, width, st)
		if !revealed(id) {
			block = st.Hidden.Render(ansi.Strip(block))
		}

		blockLines := strings.Split(block, "\n")
		spans = append(spans, span{ID: id, Start: len(lines), End: len(lines) + len(blockLines)})
		lines = append(lines, blockLines...)
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), spans
}

func renderSection(id section.ID, width int, st styles) string {
	wrap := st.Body.Width(width)
	chips := func(items []string) string {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, st.Chip.Render(item))
		}
		return wrap.Render(strings.Join(out, " "))
	}

	var b strings.Builder
	heading := func(s string) {
		b.WriteString(st.Title.Render(strings.ToUpper(s)))
		b.WriteString("\n\n")
	}

	p := content.Owner
	switch id {
	case section.Home:
		b.WriteString(st.Title.Render(p.Name))
		b.WriteString("\n")
		b.WriteString(st.Heading.Render(p.Headline))
		b.WriteString("\n\n")
		b.WriteString(wrap.Render(p.Summary))
		b.WriteString("\n\n")
		b.WriteString(st.Muted.Render("Resume: " + p.ResumeURL))
	case section.About:
		heading(titles[id])
		for _, para := range p.About {
			b.WriteString(wrap.Render(para))
			b.WriteString("\n\n")
		}
		for _, s := range p.Stats {
			b.WriteString(st.Heading.Render(s.Value) + " " + st.Muted.Render(s.Label) + "   ")
		}
		b.WriteString("\n\n")
		b.WriteString(st.Heading.Render("Education"))
		for _, e := range p.Education {
			b.WriteString("\n")
			b.WriteString(wrap.Render(fmt.Sprintf("%s, %s (%s)", e.Degree, e.Institution, e.Period)))
		}
		b.WriteString("\n\n")
		b.WriteString(st.Heading.Render("Certifications"))
		for _, c := range p.Certifications {
			b.WriteString("\n• " + c)
		}
	case section.Experience:
		heading(titles[id])
		for i, e := range content.Experiences {
			if i > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(st.Heading.Render(e.Title) + " · " + e.Company)
			b.WriteString("\n")
			b.WriteString(st.Muted.Render(e.Location + " · " + e.Duration))
			for _, a := range e.Achievements {
				b.WriteString("\n")
				b.WriteString(wrap.Render("• " + a))
			}
			b.WriteString("\n")
			b.WriteString(chips(e.Skills))
		}
	case section.Skills:
		heading(titles[id])
		for i, c := range content.SkillCategories {
			if i > 0 {
				b.WriteString("\n\n")
			}
			names := make([]string, 0, len(c.Skills))
			for _, s := range c.Skills {
				names = append(names, s.Name)
			}
			b.WriteString(st.Heading.Render(c.Title))
			b.WriteString("\n")
			b.WriteString(chips(names))
		}
	case section.Projects:
		heading(titles[id])
		project := func(pr content.Project) {
			b.WriteString(st.Heading.Render(pr.Title) + " " + st.Muted.Render("["+pr.Category+"]"))
			b.WriteString("\n")
			b.WriteString(wrap.Render(pr.Description))
			b.WriteString("\n")
			b.WriteString(chips(pr.Tech))
			if pr.GithubLink != "" {
				b.WriteString("\n")
				b.WriteString(st.Muted.Render(pr.GithubLink))
			}
			b.WriteString("\n\n")
		}
		b.WriteString(st.Heading.Render("Featured"))
		b.WriteString("\n\n")
		for _, pr := range content.Featured(content.Projects) {
			project(pr)
		}
		b.WriteString(st.Heading.Render("More projects"))
		b.WriteString("\n\n")
		for _, pr := range content.Others(content.Projects) {
			project(pr)
		}
	case section.Blogs:
		heading(titles[id])
		for i, post := range content.Blogs {
			if i > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(wrap.Render(st.Heading.Render(post.Title)))
			b.WriteString("\n")
			b.WriteString(st.Muted.Render(post.Date + " · " + post.ReadTime))
			b.WriteString("\n")
			b.WriteString(wrap.Render(post.Excerpt))
		}
		b.WriteString("\n\n")
		b.WriteString(st.Muted.Render("More posts: " + content.BlogIndexURL))
	case section.Contact:
		heading(titles[id])
		for _, l := range content.ContactLinks {
			b.WriteString(fmt.Sprintf("%-9s %s\n", l.Label, st.Muted.Render(l.URL)))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
