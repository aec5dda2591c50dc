package rules

import (
	"strings"

	"github.com/sunzid02/portfolio-chat-api/internal/api"
	"github.com/sunzid02/portfolio-chat-api/internal/profile"
)

// Engine is the offline responder: a deterministic, ordered intent
// table over structured profile data. No network, no state.
type Engine struct {
	profiles profile.Source
	rules    []intentRule
}

// intentRule pairs a predicate over the normalized message with its
// reply builder. Rules are evaluated top to bottom; the first match
// wins, so priority lives in the order of the table itself.
type intentRule struct {
	name   string
	match  func(normalized string) bool
	handle func(p *profile.Profile) api.ChatReply
}

func NewEngine(src profile.Source) *Engine {
	e := &Engine{profiles: src}
	e.rules = []intentRule{
		{
			name:   "summary",
			match:  containsAny("summary", "summarise", "summarize", "introduce", "profile", "about you"),
			handle: summaryReply,
		},
		{
			name:   "longer_summary",
			match:  containsAny("longer", "detailed"),
			handle: longerSummaryReply,
		},
		{
			name:   "skills",
			match:  containsAny("skill", "stack", "tech", "tools"),
			handle: skillsReply,
		},
		{
			name:   "experience",
			match:  containsAny("experience", "job", "work"),
			handle: experienceReply,
		},
		{
			name:   "projects",
			match:  containsAny("project", "portfolio"),
			handle: projectsReply,
		},
		{
			name:   "github",
			match:  containsAny("github"),
			handle: linkReply("GitHub"),
		},
		{
			name:   "linkedin",
			match:  containsAny("linkedin"),
			handle: linkReply("LinkedIn"),
		},
		{
			name:   "contact",
			match:  containsAny("email", "contact"),
			handle: contactReply,
		},
	}
	return e
}

// Answer runs the intent table and falls back to a keyword-overlap
// search over the whole profile corpus.
func (e *Engine) Answer(message string) api.ChatReply {
	p := e.profiles.Current()
	msg := normalize(message)

	for _, rule := range e.rules {
		if rule.match(msg) {
			return rule.handle(p)
		}
	}
	return fallbackReply(p, message)
}

// Rules exposes the intent names in evaluation order.
func (e *Engine) Rules() []string {
	names := make([]string, 0, len(e.rules))
	for _, r := range e.rules {
		names = append(names, r.name)
	}
	return names
}

// normalize lowercases, strips non-alphanumerics and collapses
// whitespace, so matching is insensitive to punctuation and casing.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func containsAny(keywords ...string) func(string) bool {
	return func(normalized string) bool {
		for _, kw := range keywords {
			if strings.Contains(normalized, kw) {
				return true
			}
		}
		return false
	}
}

// scoreMatch counts how many query words of length >= 3 appear as
// substrings of the corpus.
func scoreMatch(query string, corpus string) int {
	q := normalize(query)
	t := normalize(corpus)
	if q == "" || t == "" {
		return 0
	}

	score := 0
	for _, w := range strings.Split(q, " ") {
		if len(w) < 3 {
			continue
		}
		if strings.Contains(t, w) {
			score++
		}
	}
	return score
}
