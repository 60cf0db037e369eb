package response

import (
	"tour-booking/internal/data/entity"
)

type FAQResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
	IsActive bool   `json:"is_active"`
}

// Helper converter

func FAQToResponse(faq *entity.FAQ) FAQResponse {
	return FAQResponse{
		ID:       faq.ID.String(),
		Question: faq.Question,
		Answer:   faq.Answer,
		Position: faq.Position,
		IsActive: faq.IsActive,
	}
}
