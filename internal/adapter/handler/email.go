package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/summary"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/presenter"
	summaryUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
	"github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

const recipientsRequiredMessage = "Recipients list is required and must be an array with at least one email"

// Email handles summary sharing over email
type Email struct {
	svc    summaryUsecase.Service
	logger *zap.Logger
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(svc summaryUsecase.Service, logger *zap.Logger) *Email {
	return &Email{svc: svc, logger: logger}
}

// Send handles POST /api/email/:id
// @Summary      Email a summary
// @Description  Sends the edited summary (or the generated one) to the recipients and records the share
// @Tags         Email
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Summary ID (UUID)"
// @Param        request  body      summary.SendEmailRequest  true  "Recipients and optional subject"
// @Success      200      {object}  summary.SendEmailResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid recipients"
// @Failure      404      {object}  common.ErrorResponse  "Summary not found"
// @Failure      500      {object}  common.ErrorResponse  "Failed to send email"
// @Router       /api/email/{id} [post]
func (h *Email) Send(c echo.Context) error {
	id, err := parseSummaryID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req summary.SendEmailRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidRecipients(recipientsRequiredMessage))
	}

	if err := c.Validate(&req); err != nil {
		appErr := errors.ErrValidation("Invalid email request", err)
		for field, msg := range validator.FormatErrors(err) {
			appErr = appErr.WithDetail(field, msg)
		}
		return HandleError(h.logger, c, appErr)
	}

	out, err := h.svc.Share(c.Request().Context(), id, req.Recipients, req.Subject)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, summary.SendEmailResponse{
		Success:     true,
		Message:     "Email sent successfully",
		EmailResult: out.Email,
	})
}

// SentEmails handles GET /api/email/:id/archive
// @Summary      List archived emails
// @Description  Lists archived copies of the emails sent for a summary with temporary download links
// @Tags         Email
// @Produce      json
// @Param        id   path      string  true  "Summary ID (UUID)"
// @Success      200  {object}  common.SuccessResponse{data=[]summary.ArchivedEmailResponse}
// @Failure      404  {object}  common.ErrorResponse  "Summary not found"
// @Failure      503  {object}  common.ErrorResponse  "Email archive is not enabled"
// @Router       /api/email/{id}/archive [get]
func (h *Email) SentEmails(c echo.Context) error {
	id, err := parseSummaryID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	emails, err := h.svc.SentEmails(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleData(h.logger, c, http.StatusOK, presenter.ToArchivedEmailResponses(emails))
}
