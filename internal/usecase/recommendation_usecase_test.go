package usecase

import (
	"context"
	"testing"

	"career-guide/internal/domain/catalog"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/recommend"
	"career-guide/internal/domain/resume"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titlesOf(recs []Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Title)
	}
	return out
}

type recommendationFixture struct {
	uc       *RecommendationService
	profiles *memProfiles
	resumes  *memResumes
}

func newRecommendationFixture() recommendationFixture {
	profiles := newMemProfiles()
	resumes := newMemResumes()
	accounts := newMemAccounts("a@b.c")
	uc := NewRecommendationUsecase(
		recommend.NewEngine(),
		NewProfileUsecase(accounts, profiles, zerolog.Nop()),
		resumes,
		&memCatalog{entries: catalog.Fixture()},
	)
	return recommendationFixture{uc: uc, profiles: profiles, resumes: resumes}
}

func TestRecommendation_EmptyProfileIsIncomplete(t *testing.T) {
	f := newRecommendationFixture()

	_, err := f.uc.Generate(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, ErrProfileIncomplete)

	// a stored resume does not stand in for the profile
	f.resumes.byEmail["a@b.c"] = resume.Result{Skills: []string{"Python"}}
	_, err = f.uc.Generate(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}

func TestRecommendation_GenerateDecoratesCompanies(t *testing.T) {
	f := newRecommendationFixture()
	f.profiles.profiles["a@b.c"] = profile.Profile{
		Education: profile.EducationBachelors,
		Skills:    "python, cloud, devops",
	}

	recs, err := f.uc.Generate(context.Background(), "A@B.C")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Data Scientist",
		"Cybersecurity Analyst",
		"Software Developer",
		"Product Manager",
		"Cloud Engineer",
		"DevOps Engineer",
	}, titlesOf(recs))
	for _, r := range recs {
		assert.Equal(t, catalog.CompanyName(r.Title), r.Company, r.Title)
		assert.NotEmpty(t, r.Company)
	}
}

func TestRecommendation_StoredResumeLeavesRankingAlone(t *testing.T) {
	f := newRecommendationFixture()
	p := profile.Profile{Education: profile.EducationNone}
	f.profiles.profiles["a@b.c"] = p

	without, err := f.uc.Generate(context.Background(), "a@b.c")
	require.NoError(t, err)

	f.resumes.byEmail["a@b.c"] = resume.Result{Skills: []string{"Communication", "Teamwork", "Problem Solving"}}
	with, err := f.uc.Generate(context.Background(), "a@b.c")
	require.NoError(t, err)

	assert.Equal(t, without, with)
	assert.Equal(t, []string{
		"Customer Service Associate",
		"Office Clerk",
		"Administrative Assistant",
	}, titlesOf(with))
}

func TestRecommendation_UnknownAccount(t *testing.T) {
	f := newRecommendationFixture()
	_, err := f.uc.Generate(context.Background(), "nobody@b.c")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRecommendation_CatalogCard(t *testing.T) {
	f := newRecommendationFixture()

	card, err := f.uc.CatalogCard(context.Background(), " Photographer ")
	require.NoError(t, err)
	assert.Equal(t, "Photographer", card.Title)
	assert.Equal(t, "Match", card.Score)
	assert.Equal(t, "💼", card.Icon)
	assert.Equal(t, []string{"Creative & Freelance", "₹15,000 – ₹50,000"}, card.Tags)
	assert.Equal(t, "Picture Perfect Studios", card.Company)

	_, err = f.uc.CatalogCard(context.Background(), "Astronaut")
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = f.uc.CatalogCard(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
