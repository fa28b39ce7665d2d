package dto

import "career-guide/internal/domain/catalog"

type CatalogEntryResponse struct {
	Title       string `json:"title"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Company     string `json:"company"`
}

func NewCatalogList(entries []catalog.Entry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CatalogEntryResponse{
			Title:       e.Title,
			Salary:      e.Salary,
			Description: e.Description,
			Category:    string(e.Category),
			Company:     e.Company,
		})
	}
	return out
}

type CatalogSearchResponse struct {
	Query   string                 `json:"query"`
	Count   int                    `json:"count"`
	Results []CatalogEntryResponse `json:"results"`
}
