package resume

import (
	"testing"
	"time"

	"career-guide/internal/pkg/randsrc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile(t *testing.T) {
	assert.NoError(t, ValidateFile("cv.pdf", 1024))
	assert.NoError(t, ValidateFile("CV.DOCX", MaxFileBytes))
	assert.NoError(t, ValidateFile("old.doc", 0))

	assert.ErrorIs(t, ValidateFile("", 10), ErrNoFile)
	assert.ErrorIs(t, ValidateFile("cv.pdf", MaxFileBytes+1), ErrFileTooLarge)
	assert.ErrorIs(t, ValidateFile("cv.txt", 10), ErrUnsupportedFormat)
	assert.ErrorIs(t, ValidateFile("pdf", 10), ErrUnsupportedFormat)
}

func TestAnalyze_MinimumDraws(t *testing.T) {
	a := NewAnalyzer(randsrc.Fixed{N: 0, F: 0})
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	a.now = func() time.Time { return fixed }

	got, err := a.Analyze("resume.pdf", 2048)
	require.NoError(t, err)

	assert.Equal(t, []string{"Communication", "Teamwork", "Problem Solving"}, got.Skills)
	assert.Equal(t, 85, got.MatchScore)
	assert.Equal(t, 90, got.Confidence)
	assert.Equal(t, 500*time.Millisecond, got.ProcessingTime)
	assert.Equal(t, "resume.pdf", got.FileName)
	assert.Equal(t, fixed, got.AnalyzedAt)
	assert.Equal(t, "Communication, Teamwork, Problem Solving", got.SkillsText())
}

func TestAnalyze_BoundsHoldForManySeeds(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		got, err := NewAnalyzer(randsrc.Seeded(seed)).Analyze("cv.docx", 10)
		require.NoError(t, err)

		require.GreaterOrEqual(t, len(got.Skills), 3)
		require.LessOrEqual(t, len(got.Skills), 5)
		assert.Equal(t, SkillPool[:len(got.Skills)], got.Skills)
		assert.GreaterOrEqual(t, got.MatchScore, 85)
		assert.LessOrEqual(t, got.MatchScore, 94)
		assert.GreaterOrEqual(t, got.Confidence, 90)
		assert.LessOrEqual(t, got.Confidence, 97)
		assert.GreaterOrEqual(t, got.ProcessingTime, 500*time.Millisecond)
		assert.LessOrEqual(t, got.ProcessingTime, time.Second)
	}
}

func TestAnalyze_RejectsBeforeDrawing(t *testing.T) {
	_, err := NewAnalyzer(randsrc.Fixed{}).Analyze("cv.png", 10)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestAnalyze_DetectedSkillsDoNotAliasPool(t *testing.T) {
	got, err := NewAnalyzer(randsrc.Fixed{N: 2}).Analyze("cv.pdf", 1)
	require.NoError(t, err)
	require.Len(t, got.Skills, 5)

	got.Skills[0] = "changed"
	assert.Equal(t, "Communication", SkillPool[0])
}
