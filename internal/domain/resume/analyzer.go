package resume

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"time"

	"career-guide/internal/pkg/randsrc"
)

const MaxFileBytes = 5 * 1024 * 1024

var (
	ErrNoFile            = errors.New("no resume file provided")
	ErrFileTooLarge      = errors.New("resume file exceeds 5MB")
	ErrUnsupportedFormat = errors.New("resume must be PDF, DOC or DOCX")
)

// SkillPool is ordered; detection always returns a prefix of it.
var SkillPool = []string{
	"Communication",
	"Teamwork",
	"Problem Solving",
	"Leadership",
	"Time Management",
	"JavaScript",
	"Python",
	"Data Analysis",
}

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

func ValidateFile(fileName string, size int64) error {
	if strings.TrimSpace(fileName) == "" {
		return ErrNoFile
	}
	if size > MaxFileBytes {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := allowedExtensions[ext]; !ok {
		return ErrUnsupportedFormat
	}
	return nil
}

// Result is what gets stored per account.
type Result struct {
	Skills     []string  `json:"skills"`
	AnalyzedAt time.Time `json:"analyzedDate"`
	FileName   string    `json:"fileName"`
}

func (r Result) SkillsText() string {
	return strings.Join(r.Skills, ", ")
}

// Analysis adds the display-only metrics of a single run.
type Analysis struct {
	Result
	MatchScore     int
	Confidence     int
	ProcessingTime time.Duration
}

type Analyzer struct {
	rnd randsrc.Source
	now func() time.Time
}

func NewAnalyzer(rnd randsrc.Source) *Analyzer {
	if rnd == nil {
		rnd = randsrc.Default()
	}
	return &Analyzer{rnd: rnd, now: time.Now}
}

// Analyze simulates skill detection. Nothing in the file is read.
func (a *Analyzer) Analyze(fileName string, size int64) (Analysis, error) {
	if err := ValidateFile(fileName, size); err != nil {
		return Analysis{}, err
	}

	n := 3 + a.rnd.IntN(3)
	skills := make([]string, n)
	copy(skills, SkillPool[:n])

	match := 85 + a.rnd.IntN(10)
	confidence := 90 + a.rnd.IntN(8)
	secs := a.rnd.Float64()*0.5 + 0.5
	centis := math.Round(secs * 100)

	return Analysis{
		Result: Result{
			Skills:     skills,
			AnalyzedAt: a.now().UTC(),
			FileName:   fileName,
		},
		MatchScore:     match,
		Confidence:     confidence,
		ProcessingTime: time.Duration(centis) * 10 * time.Millisecond,
	}, nil
}
