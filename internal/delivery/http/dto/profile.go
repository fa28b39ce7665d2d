package dto

import (
	"encoding/base64"
	"time"

	"career-guide/internal/domain/profile"
)

type SaveProfileRequest struct {
	Name      string `json:"name"`
	Age       string `json:"age"`
	Education string `json:"edu"`
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
	Language  string `json:"lang"`
}

type ProfileResponse struct {
	Name      string     `json:"name"`
	Age       string     `json:"age"`
	Education string     `json:"edu"`
	Skills    string     `json:"skills"`
	Interests string     `json:"interests"`
	Language  string     `json:"lang"`
	Complete  bool       `json:"complete"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	lang := p.Language
	if lang == "" {
		lang = profile.DefaultLanguage
	}
	out := ProfileResponse{
		Name:      p.Name,
		Age:       p.Age,
		Education: string(p.Education),
		Skills:    p.Skills,
		Interests: p.Interests,
		Language:  lang,
		Complete:  !p.IsEmpty(),
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

// PictureResponse carries the image as a data URL so it can be dropped into an img tag.
type PictureResponse struct {
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	DataURL     string    `json:"data_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPictureResponse(p profile.Picture) PictureResponse {
	return PictureResponse{
		FileName:    p.FileName,
		ContentType: p.ContentType,
		Size:        len(p.Data),
		DataURL:     "data:" + p.ContentType + ";base64," + base64.StdEncoding.EncodeToString(p.Data),
		UpdatedAt:   p.UpdatedAt,
	}
}
