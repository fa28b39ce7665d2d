package profile

import (
	"errors"
	"strings"
	"time"
)

var ErrUnknownEducation = errors.New("unknown education level")

// Education is the self-reported qualification. Unset is distinct from None:
// an unset level is treated as satisfying the two lowest tiers.
type Education string

const (
	EducationUnset       Education = ""
	EducationNone        Education = "None"
	EducationHighSchool  Education = "High School"
	EducationTenthPass   Education = "10th Pass"
	EducationTwelfthPass Education = "12th Pass"
	EducationDiploma     Education = "Diploma"
	EducationITI         Education = "ITI"
	EducationBachelors   Education = "Bachelor's"
	EducationMasters     Education = "Master's"
)

var educations = []Education{
	EducationNone,
	EducationHighSchool,
	EducationTenthPass,
	EducationTwelfthPass,
	EducationDiploma,
	EducationITI,
	EducationBachelors,
	EducationMasters,
}

func ParseEducation(s string) (Education, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EducationUnset, nil
	}
	s = strings.NewReplacer("’", "'", "`", "'").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	for _, e := range educations {
		if strings.EqualFold(s, string(e)) {
			return e, nil
		}
	}
	return EducationUnset, ErrUnknownEducation
}

func (e Education) IsSet() bool { return e != EducationUnset }

// In reports whether e equals any of the given levels.
func (e Education) In(levels ...Education) bool {
	for _, l := range levels {
		if e == l {
			return true
		}
	}
	return false
}

const DefaultLanguage = "English"

type Profile struct {
	Name      string    `json:"name"`
	Age       string    `json:"age"`
	Education Education `json:"edu"`
	Skills    string    `json:"skills"`
	Interests string    `json:"interests"`
	Language  string    `json:"lang"`
	UpdatedAt time.Time `json:"updated"`
}

// IsEmpty reports whether the profile carries nothing a recommendation can use.
func (p Profile) IsEmpty() bool {
	return strings.TrimSpace(p.Skills) == "" &&
		strings.TrimSpace(p.Interests) == "" &&
		!p.Education.IsSet()
}

// HasAnyField reports whether at least one form field was filled in.
func (p Profile) HasAnyField() bool {
	return strings.TrimSpace(p.Name) != "" ||
		strings.TrimSpace(p.Age) != "" ||
		p.Education.IsSet() ||
		strings.TrimSpace(p.Skills) != "" ||
		strings.TrimSpace(p.Interests) != ""
}
