package profile

import "strings"

// Profile is the structured site data the offline responder answers
// from. It mirrors the portfolio's public sections; nothing here is
// sensitive.
type Profile struct {
	Hero       Hero             `yaml:"hero"`
	About      About            `yaml:"about"`
	Tech       Tech             `yaml:"tech"`
	Experience []ExperienceItem `yaml:"experience"`
	Projects   []ProjectItem    `yaml:"projects"`
	Contact    Contact          `yaml:"contact"`
}

type Hero struct {
	Headline string   `yaml:"headline"`
	Subline  string   `yaml:"subline"`
	Pills    []string `yaml:"pills"`
	Email    string   `yaml:"email"`
	Links    []Link   `yaml:"links"`
	Note     string   `yaml:"note"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type About struct {
	Paragraphs []string `yaml:"paragraphs"`
	FocusAreas []string `yaml:"focusAreas"`
}

type Tech struct {
	Faces []TechFace `yaml:"faces"`
}

type TechFace struct {
	Title string   `yaml:"title"`
	Badge string   `yaml:"badge"`
	Items []string `yaml:"items"`
}

type ExperienceItem struct {
	Title   string   `yaml:"title"`
	When    string   `yaml:"when"`
	Bullets []string `yaml:"bullets"`
}

type ProjectItem struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
	Meta  string `yaml:"meta"`
	URL   string `yaml:"url,omitempty"`
}

type Contact struct {
	Email string `yaml:"email"`
	Links []Link `yaml:"links"`
}

// FindLink looks up a hero link by label, case-insensitively.
func (p *Profile) FindLink(label string) (Link, bool) {
	for _, l := range p.Hero.Links {
		if strings.EqualFold(l.Label, label) {
			return l, true
		}
	}
	return Link{}, false
}
