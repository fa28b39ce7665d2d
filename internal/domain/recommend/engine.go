// Package recommend turns a profile into a short ranked list of job suggestions
// using an ordered table of keyword and education rules.
package recommend

import (
	"sort"
	"strings"

	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/resume"
)

const DefaultLimit = 6

type Record struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Score       string   `json:"score"`
	Tags        []string `json:"tags"`
	Icon        string   `json:"icon"`
	Salary      string   `json:"salary,omitempty"`
}

// ScoreValue is the leading integer of Score ("92%" is 92). Non-numeric scores rank as 0.
func (r Record) ScoreValue() int {
	s := strings.TrimSpace(r.Score)
	v := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			break
		}
		v = v*10 + int(ch-'0')
	}
	return v
}

func (r Record) clone() Record {
	r.Tags = append([]string(nil), r.Tags...)
	return r
}

// Subject is the lowercased view of a profile the predicates run against.
type Subject struct {
	Education profile.Education
	Skills    string
	Interests string
}

func NewSubject(p profile.Profile) Subject {
	return Subject{
		Education: p.Education,
		Skills:    strings.ToLower(strings.TrimSpace(p.Skills)),
		Interests: strings.ToLower(strings.TrimSpace(p.Interests)),
	}
}

type Predicate func(Subject) bool

type Rule struct {
	Name      string
	Match     Predicate
	Templates []Record
}

func educationIn(levels ...profile.Education) Predicate {
	return func(s Subject) bool { return s.Education.In(levels...) }
}

func skillsContain(keywords ...string) Predicate {
	return func(s Subject) bool { return containsAny(s.Skills, keywords) }
}

func interestsContain(keywords ...string) Predicate {
	return func(s Subject) bool { return containsAny(s.Interests, keywords) }
}

func anyOf(ps ...Predicate) Predicate {
	return func(s Subject) bool {
		for _, p := range ps {
			if p(s) {
				return true
			}
		}
		return false
	}
}

func allOf(ps ...Predicate) Predicate {
	return func(s Subject) bool {
		for _, p := range ps {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

type Engine struct {
	rules    []Rule
	fallback []Record
	limit    int
}

func NewEngine() *Engine {
	return NewEngineWithRules(DefaultRules(), DefaultFallback(), DefaultLimit)
}

func NewEngineWithRules(rules []Rule, fallback []Record, limit int) *Engine {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Engine{rules: rules, fallback: fallback, limit: limit}
}

// Matched returns the names of the rules the profile satisfies, in table order.
func (e *Engine) Matched(p profile.Profile, _ *resume.Result) []string {
	s := NewSubject(p)
	var names []string
	for _, r := range e.rules {
		if r.Match != nil && r.Match(s) {
			names = append(names, r.Name)
		}
	}
	return names
}

// Candidates is the unsorted, untruncated list in rule order, with the fallback
// applied when nothing matched. The resume result is accepted for callers that
// carry one but never changes what the rules see.
func (e *Engine) Candidates(p profile.Profile, _ *resume.Result) []Record {
	s := NewSubject(p)
	out := make([]Record, 0, 16)
	for _, r := range e.rules {
		if r.Match == nil || !r.Match(s) {
			continue
		}
		for _, t := range r.Templates {
			out = append(out, t.clone())
		}
	}
	if len(out) == 0 {
		for _, t := range e.fallback {
			out = append(out, t.clone())
		}
	}
	return out
}

// Recommend ranks candidates by score, keeps the first record per title and
// returns at most the engine limit.
func (e *Engine) Recommend(p profile.Profile, res *resume.Result) []Record {
	cands := e.Candidates(p, res)
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].ScoreValue() > cands[j].ScoreValue()
	})

	out := make([]Record, 0, e.limit)
	seen := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		if _, dup := seen[c.Title]; dup {
			continue
		}
		seen[c.Title] = struct{}{}
		out = append(out, c)
		if len(out) == e.limit {
			break
		}
	}
	return out
}
