package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-guide/internal/domain/account"
	"career-guide/internal/domain/catalog"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/recommend"
	"career-guide/internal/domain/resume"
	"career-guide/internal/repository"
)

const (
	catalogCardIcon  = "💼"
	catalogCardScore = "Match"
)

// Recommendation is an engine record with the employer resolved for display.
type Recommendation struct {
	recommend.Record
	Company string `json:"company"`
}

type RecommendationUsecase interface {
	Generate(ctx context.Context, email string) ([]Recommendation, error)
	ForProfile(p profile.Profile, res *resume.Result) []Recommendation
	CatalogCard(ctx context.Context, title string) (Recommendation, error)
}

type RecommendationService struct {
	engine   *recommend.Engine
	profiles ProfileUsecase
	resumes  resume.Repository
	catalog  repository.JobCatalogRepository
}

func NewRecommendationUsecase(engine *recommend.Engine, profiles ProfileUsecase, resumes resume.Repository, jobs repository.JobCatalogRepository) *RecommendationService {
	if engine == nil {
		engine = recommend.NewEngine()
	}
	return &RecommendationService{engine: engine, profiles: profiles, resumes: resumes, catalog: jobs}
}

// Generate ranks suggestions for the stored profile. The stored resume analysis
// is loaded and handed to the engine, which ranks on the profile alone.
func (u *RecommendationService) Generate(ctx context.Context, email string) ([]Recommendation, error) {
	p, err := u.profiles.GetProfile(ctx, email)
	if err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, ErrProfileIncomplete
	}

	var res *resume.Result
	stored, err := u.resumes.Get(ctx, account.NormalizeEmail(email))
	switch {
	case err == nil:
		res = &stored
	case errors.Is(err, resume.ErrNotFound):
	default:
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return u.ForProfile(p, res), nil
}

func (u *RecommendationService) ForProfile(p profile.Profile, res *resume.Result) []Recommendation {
	records := u.engine.Recommend(p, res)
	out := make([]Recommendation, 0, len(records))
	for _, r := range records {
		out = append(out, Recommendation{Record: r, Company: catalog.CompanyName(r.Title)})
	}
	return out
}

// CatalogCard turns a catalog entry into a card that can be added to the
// displayed recommendations.
func (u *RecommendationService) CatalogCard(ctx context.Context, title string) (Recommendation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Recommendation{}, ErrInvalidInput
	}

	e, err := u.catalog.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogEntryNotFound) {
			return Recommendation{}, ErrJobNotFound
		}
		return Recommendation{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return CatalogCardFor(e), nil
}

func CatalogCardFor(e catalog.Entry) Recommendation {
	return Recommendation{
		Record: recommend.Record{
			Title:       e.Title,
			Description: e.Description,
			Score:       catalogCardScore,
			Tags:        []string{string(e.Category), e.Salary},
			Icon:        catalogCardIcon,
			Salary:      e.Salary,
		},
		Company: e.Company,
	}
}
