package usecase

import (
	"context"
	"errors"
	"fmt"

	"career-guide/internal/domain/account"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/resume"
)

type ResumeReport struct {
	resume.Analysis
	Recommendations []Recommendation
}

type ResumeUsecase interface {
	Analyze(ctx context.Context, email, fileName string, size int64) (ResumeReport, error)
	Latest(ctx context.Context, email string) (resume.Result, error)
}

type Resume struct {
	accounts account.Repository
	resumes  resume.Repository
	analyzer *resume.Analyzer
	recs     RecommendationUsecase
}

func NewResumeUsecase(accounts account.Repository, resumes resume.Repository, analyzer *resume.Analyzer, recs RecommendationUsecase) *Resume {
	if analyzer == nil {
		analyzer = resume.NewAnalyzer(nil)
	}
	return &Resume{accounts: accounts, resumes: resumes, analyzer: analyzer, recs: recs}
}

// Analyze validates the upload, stores the detected skills (replacing any
// earlier result) and recommends for a profile built from those skills alone.
func (u *Resume) Analyze(ctx context.Context, email, fileName string, size int64) (ResumeReport, error) {
	email, err := u.requireAccount(ctx, email)
	if err != nil {
		return ResumeReport{}, err
	}

	a, err := u.analyzer.Analyze(fileName, size)
	if err != nil {
		return ResumeReport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := u.resumes.Upsert(ctx, email, a.Result); err != nil {
		return ResumeReport{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	derived := profile.Profile{Skills: a.SkillsText()}
	return ResumeReport{Analysis: a, Recommendations: u.recs.ForProfile(derived, nil)}, nil
}

func (u *Resume) Latest(ctx context.Context, email string) (resume.Result, error) {
	email, err := u.requireAccount(ctx, email)
	if err != nil {
		return resume.Result{}, err
	}
	r, err := u.resumes.Get(ctx, email)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return resume.Result{}, ErrResumeNotFound
		}
		return resume.Result{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return r, nil
}

func (u *Resume) requireAccount(ctx context.Context, email string) (string, error) {
	return requireAccount(ctx, u.accounts, email)
}
