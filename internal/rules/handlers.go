package rules

import (
	"fmt"
	"strings"

	"github.com/sunzid02/portfolio-chat-api/internal/api"
	"github.com/sunzid02/portfolio-chat-api/internal/profile"
)

var quickDefaults = []api.QuickAction{
	{Label: "Summary", Message: "Summarise your profile"},
	{Label: "Skills", Message: "What are your skills?"},
	{Label: "Experience", Message: "Show your experience"},
	{Label: "Projects", Message: "Show your projects"},
	{Label: "GitHub", Message: "Share your GitHub"},
}

func summaryReply(p *profile.Profile) api.ChatReply {
	firstParagraph := ""
	if len(p.About.Paragraphs) > 0 {
		firstParagraph = p.About.Paragraphs[0]
	}
	answer := strings.TrimSpace(fmt.Sprintf("%s\n%s\n\n%s", p.Hero.Headline, p.Hero.Subline, firstParagraph))
	return api.ChatReply{
		Answer: answer,
		QuickActions: []api.QuickAction{
			{Label: "More details", Message: "Give me a longer summary"},
			{Label: "Skills", Message: "What are your skills?"},
			{Label: "Projects", Message: "Show your top projects"},
		},
	}
}

func longerSummaryReply(p *profile.Profile) api.ChatReply {
	text := strings.TrimSpace(strings.Join(p.About.Paragraphs, "\n\n"))
	if text == "" {
		text = p.Hero.Headline + "\n" + p.Hero.Subline
	}
	return api.ChatReply{Answer: text}
}

func skillsReply(p *profile.Profile) api.ChatReply {
	var sections []string

	if len(p.Hero.Pills) > 0 {
		sections = append(sections, "Core: "+strings.Join(p.Hero.Pills, " | "))
	}

	var faces []string
	for i, f := range p.Tech.Faces {
		if i == 6 {
			break
		}
		items := f.Items
		if len(items) > 8 {
			items = items[:8]
		}
		faces = append(faces, f.Title+": "+strings.Join(items, ", "))
	}
	if len(faces) > 0 {
		sections = append(sections, strings.Join(faces, "\n"))
	}

	answer := strings.TrimSpace(strings.Join(sections, "\n\n"))
	if answer == "" {
		answer = "Tech stack info is not set yet."
	}
	return api.ChatReply{Answer: answer}
}

func experienceReply(p *profile.Profile) api.ChatReply {
	top := p.Experience
	if len(top) > 4 {
		top = top[:4]
	}
	if len(top) == 0 {
		return api.ChatReply{Answer: "Experience section is not set yet."}
	}

	entries := make([]string, 0, len(top))
	for _, e := range top {
		entries = append(entries, fmt.Sprintf("• %s (%s)\n  - %s", e.Title, e.When, strings.Join(e.Bullets, "\n  - ")))
	}
	return api.ChatReply{Answer: strings.Join(entries, "\n\n")}
}

func projectsReply(p *profile.Profile) api.ChatReply {
	top := p.Projects
	if len(top) > 6 {
		top = top[:6]
	}
	if len(top) == 0 {
		return api.ChatReply{Answer: "Projects section is not set yet."}
	}

	entries := make([]string, 0, len(top))
	for _, pr := range top {
		entry := fmt.Sprintf("• %s\n  %s", pr.Title, pr.Desc)
		if pr.URL != "" {
			entry += "\n  " + pr.URL
		}
		entries = append(entries, strings.TrimSpace(entry))
	}
	return api.ChatReply{Answer: strings.Join(entries, "\n\n")}
}

func linkReply(label string) func(p *profile.Profile) api.ChatReply {
	return func(p *profile.Profile) api.ChatReply {
		if link, ok := p.FindLink(label); ok {
			return api.ChatReply{Answer: label + ": " + link.URL}
		}
		return api.ChatReply{Answer: label + " link is not set yet."}
	}
}

func contactReply(p *profile.Profile) api.ChatReply {
	return api.ChatReply{Answer: "Email: " + p.Hero.Email}
}

func fallbackReply(p *profile.Profile, message string) api.ChatReply {
	if scoreMatch(message, buildSearchCorpus(p)) >= 3 {
		return api.ChatReply{
			Answer: "I found related info in my portfolio. Try asking more specifically, like:\n" +
				"- “Summarise your profile”\n" +
				"- “Show your experience”\n" +
				"- “Show your projects”\n" +
				"- “What is your stack?”",
			QuickActions: quickDefaults,
		}
	}
	return api.ChatReply{
		Answer:       "Ask me about my summary, skills, experience, projects, or contact info. Try one of the buttons below.",
		QuickActions: quickDefaults,
	}
}

// buildSearchCorpus concatenates every profile section into one
// searchable blob for the fallback scorer.
func buildSearchCorpus(p *profile.Profile) string {
	var parts []string

	parts = append(parts, strings.Join([]string{
		p.Hero.Headline, p.Hero.Subline, strings.Join(p.Hero.Pills, " | "), p.Hero.Note,
	}, "\n"))

	parts = append(parts, strings.Join(p.About.Paragraphs, "\n")+"\nFocus: "+strings.Join(p.About.FocusAreas, ", "))

	var tech []string
	for _, f := range p.Tech.Faces {
		tech = append(tech, f.Title+" "+f.Badge+" "+strings.Join(f.Items, " "))
	}
	parts = append(parts, strings.Join(tech, "\n"))

	var exp []string
	for _, e := range p.Experience {
		exp = append(exp, e.Title+" "+e.When+" "+strings.Join(e.Bullets, " "))
	}
	parts = append(parts, strings.Join(exp, "\n"))

	var projects []string
	for _, pr := range p.Projects {
		projects = append(projects, strings.TrimSpace(pr.Title+" "+pr.Desc+" "+pr.Meta+" "+pr.URL))
	}
	parts = append(parts, strings.Join(projects, "\n"))

	var contact []string
	contact = append(contact, "email: "+p.Hero.Email)
	for _, l := range p.Hero.Links {
		contact = append(contact, l.Label+": "+l.URL)
	}
	for _, l := range p.Contact.Links {
		contact = append(contact, l.Label+": "+l.URL)
	}
	parts = append(parts, strings.Join(contact, "\n"))

	return strings.Join(parts, "\n\n")
}
