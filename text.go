package main

import (
	"github.com/RAAHUL-tech/portfolio/internal/content"
	"github.com/RAAHUL-tech/portfolio/internal/section"
	"github.com/RAAHUL-tech/portfolio/internal/theme"
)

var (
	sectionTitles = map[section.ID]string{
		section.Home:       "Home",
		section.About:      "About",
		section.Experience: "Experience",
		section.Skills:     "Skills & Technologies",
		section.Projects:   "Projects",
		section.Blogs:      "Latest Blogs",
		section.Contact:    "Get In Touch",
	}

	ContactIntro = `I'm always open to discussing new opportunities, interesting projects,
	or collaborations in AI, MLOps, and real-time systems. Drop a message and I'll get back to you.`

	ContactSuccess = "Thank you for your message! I'll get back to you soon."
	ContactFailure = "Sorry, there was an error sending your message. Please try again later."
)

type navItem struct {
	ID    section.ID
	Title string
}

// pageData feeds every page template and section fragment.
type pageData struct {
	Theme theme.Attributes
	State theme.State
	// Next is the appearance the toggle button switches to.
	Next theme.Appearance

	Profile     content.Profile
	Experiences []content.Experience
	Featured    []content.Project
	Others      []content.Project
	Skills      []content.SkillCategory
	SkillCount  int
	Blogs       []content.Blog
	BlogIndex   string
	Contacts    []content.ContactLink
	Intro       string

	Sections       []navItem
	Active         section.ID
	Threshold      int
	RevealFraction float64
}

func newPageData(state theme.State, attrs theme.Attributes) pageData {
	nav := make([]navItem, 0, len(section.DefaultOrder))
	for _, id := range section.DefaultOrder {
		nav = append(nav, navItem{ID: id, Title: sectionTitles[id]})
	}

	return pageData{
		Theme:          attrs,
		State:          state,
		Next:           state.Effective.Opposite(),
		Profile:        content.Owner,
		Experiences:    content.Experiences,
		Featured:       content.Featured(content.Projects),
		Others:         content.Others(content.Projects),
		Skills:         content.SkillCategories,
		SkillCount:     len(content.AllSkills(content.SkillCategories)),
		Blogs:          content.Blogs,
		BlogIndex:      content.BlogIndexURL,
		Contacts:       content.ContactLinks,
		Intro:          ContactIntro,
		Sections:       nav,
		Active:         section.DefaultOrder[0],
		Threshold:      section.DefaultThreshold,
		RevealFraction: section.DefaultRevealFraction,
	}
}
