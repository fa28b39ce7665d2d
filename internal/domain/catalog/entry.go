package catalog

import (
	"errors"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown catalog category")

type Category string

const (
	CategoryTenthPass          Category = "10th Pass"
	CategoryTwelfthPass        Category = "12th Pass"
	CategoryITIDiploma         Category = "ITI/Diploma"
	CategoryGraduation         Category = "Graduation"
	CategoryProfessionalDegree Category = "Professional Degree"
	CategoryCreativeFreelance  Category = "Creative & Freelance"
)

var categories = []Category{
	CategoryTenthPass,
	CategoryTwelfthPass,
	CategoryITIDiploma,
	CategoryGraduation,
	CategoryProfessionalDegree,
	CategoryCreativeFreelance,
}

// Categories returns the six categories in fixture order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches case-insensitively against the known literals.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

type Entry struct {
	Title       string   `json:"title"`
	Salary      string   `json:"salary"`
	Description string   `json:"desc"`
	Category    Category `json:"category"`
	Company     string   `json:"company"`
}

func FindByTitle(entries []Entry, title string) (Entry, bool) {
	for _, e := range entries {
		if e.Title == title {
			return e, true
		}
	}
	return Entry{}, false
}

func ByCategory(entries []Entry, c Category) []Entry {
	out := make([]Entry, 0, 10)
	for _, e := range entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}
