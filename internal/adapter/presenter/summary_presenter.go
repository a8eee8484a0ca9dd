package presenter

import (
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/summary"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	summaryUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
)

// ToSummaryResponse converts a Summary entity to SummaryResponse DTO
func ToSummaryResponse(s *entities.Summary) *summary.SummaryResponse {
	if s == nil {
		return nil
	}

	sharedWith := make([]summary.RecipientResponse, len(s.SharedWith))
	for i, r := range s.SharedWith {
		sharedWith[i] = summary.RecipientResponse{Email: r.Email, SentAt: r.SentAt}
	}

	return &summary.SummaryResponse{
		ID:            s.ID.String(),
		OriginalText:  s.OriginalText,
		Prompt:        s.Prompt,
		Summary:       s.Summary,
		EditedSummary: s.EditedSummary,
		SharedWith:    sharedWith,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSummaryListResponse converts a page of summaries to SummaryListResponse
func ToSummaryListResponse(out *summaryUsecase.ListOutput) *summary.SummaryListResponse {
	data := make([]*summary.SummaryResponse, len(out.Items))
	for i, s := range out.Items {
		data[i] = ToSummaryResponse(s)
	}

	return &summary.SummaryListResponse{
		Success: true,
		Count:   len(data),
		Total:   out.Total,
		Page:    out.Page,
		Limit:   out.Limit,
		Data:    data,
	}
}

// ToArchivedEmailResponses converts archived emails to their DTOs
func ToArchivedEmailResponses(emails []summaryUsecase.ArchivedEmail) []summary.ArchivedEmailResponse {
	out := make([]summary.ArchivedEmailResponse, len(emails))
	for i, e := range emails {
		out[i] = summary.ArchivedEmailResponse{Key: e.Key, URL: e.URL}
	}
	return out
}
