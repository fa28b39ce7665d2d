package dto

import "career-guide/internal/usecase"

type RecommendationResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Score       string   `json:"score"`
	Tags        []string `json:"tags"`
	Icon        string   `json:"icon"`
	Salary      string   `json:"salary,omitempty"`
	Company     string   `json:"company"`
}

func NewRecommendationResponse(r usecase.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		Title:       r.Title,
		Description: r.Description,
		Score:       r.Score,
		Tags:        r.Tags,
		Icon:        r.Icon,
		Salary:      r.Salary,
		Company:     r.Company,
	}
}

func NewRecommendationList(recs []usecase.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, NewRecommendationResponse(r))
	}
	return out
}
