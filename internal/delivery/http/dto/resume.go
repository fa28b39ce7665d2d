package dto

import (
	"fmt"
	"time"

	"career-guide/internal/domain/resume"
	"career-guide/internal/usecase"
)

type ResumeResultResponse struct {
	FileName   string    `json:"file_name"`
	Skills     []string  `json:"skills"`
	AnalyzedAt time.Time `json:"analyzed_date"`
}

func NewResumeResultResponse(r resume.Result) ResumeResultResponse {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return ResumeResultResponse{FileName: r.FileName, Skills: skills, AnalyzedAt: r.AnalyzedAt}
}

type ResumeReportResponse struct {
	ResumeResultResponse
	MatchScore      int                      `json:"match_score"`
	Confidence      int                      `json:"confidence"`
	ProcessingTime  string                   `json:"processing_time"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

func NewResumeReportResponse(r usecase.ResumeReport) ResumeReportResponse {
	return ResumeReportResponse{
		ResumeResultResponse: NewResumeResultResponse(r.Result),
		MatchScore:           r.MatchScore,
		Confidence:           r.Confidence,
		ProcessingTime:       fmt.Sprintf("%.2fs", r.ProcessingTime.Seconds()),
		Recommendations:      NewRecommendationList(r.Recommendations),
	}
}
