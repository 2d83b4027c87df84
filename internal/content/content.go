// Package content holds the portfolio's static datasets.
package content

type Profile struct {
	Name           string
	Headline       string
	Summary        string
	ResumeURL      string
	About          []string
	Education      []Education
	Certifications []string
	Stats          []Stat
}

type Education struct {
	Degree      string
	Institution string
	Period      string
}

type Stat struct {
	Value string
	Label string
}

type Experience struct {
	Title        string
	Company      string
	Location     string
	Duration     string
	Achievements []string
	Skills       []string
}

type Project struct {
	Title       string
	Category    string
	Description string
	Tech        []string
	GithubLink  string
	Featured    bool
}

type SkillCategory struct {
	Title  string
	Skills []Skill
}

type Skill struct {
	Name  string
	Color string
}

type Blog struct {
	Title    string
	Excerpt  string
	Date     string
	ReadTime string
	Tags     []string
}

type ContactLink struct {
	Label string
	Value string
	URL   string
}

// Featured returns the featured projects in declared order.
func Featured(projects []Project) []Project {
	var out []Project
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Others returns the non-featured projects in declared order.
func Others(projects []Project) []Project {
	var out []Project
	for _, p := range projects {
		if !p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// AllSkills flattens the categories into one list.
func AllSkills(categories []SkillCategory) []Skill {
	var out []Skill
	for _, c := range categories {
		out = append(out, c.Skills...)
	}
	return out
}
