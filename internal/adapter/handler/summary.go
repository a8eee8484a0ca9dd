package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/summary"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/presenter"
	summaryUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
)

// Summary handles summary-related HTTP requests
type Summary struct {
	svc    summaryUsecase.Service
	logger *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(svc summaryUsecase.Service, logger *zap.Logger) *Summary {
	return &Summary{svc: svc, logger: logger}
}

// parseSummaryID reads the :id path parameter
func parseSummaryID(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidSummaryID(raw)
	}
	return id, nil
}

// Create handles POST /api/summarize
// @Summary      Summarize a transcript
// @Description  Generates a summary of the transcript following the prompt and stores it
// @Tags         Summaries
// @Accept       json
// @Produce      json
// @Param        request  body      summary.CreateSummaryRequest  true  "Transcript and instruction"
// @Success      201      {object}  summary.CreateSummaryResponse
// @Failure      400      {object}  common.ErrorResponse  "Text and prompt are required"
// @Failure      500      {object}  common.ErrorResponse
// @Router       /api/summarize [post]
func (h *Summary) Create(c echo.Context) error {
	var req summary.CreateSummaryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	out, err := h.svc.Create(c.Request().Context(), req.Text, req.Prompt)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, summary.CreateSummaryResponse{
		Success: true,
		Data:    presenter.ToSummaryResponse(out.Summary),
		Source:  string(out.Source),
	})
}

// List handles GET /api/summarize
// @Summary      List summaries
// @Description  Lists stored summaries, newest first
// @Tags         Summaries
// @Produce      json
// @Param        page   query     int  false  "Page number"     default(1)
// @Param        limit  query     int  false  "Items per page"  default(10)
// @Success      200    {object}  summary.SummaryListResponse
// @Failure      500    {object}  common.ErrorResponse
// @Router       /api/summarize [get]
func (h *Summary) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToSummaryListResponse(out))
}

// Get handles GET /api/summarize/:id
// @Summary      Get a summary
// @Tags         Summaries
// @Produce      json
// @Param        id   path      string  true  "Summary ID (UUID)"
// @Success      200  {object}  common.SuccessResponse{data=summary.SummaryResponse}
// @Failure      400  {object}  common.ErrorResponse  "Invalid summary ID"
// @Failure      404  {object}  common.ErrorResponse  "Summary not found"
// @Router       /api/summarize/{id} [get]
func (h *Summary) Get(c echo.Context) error {
	id, err := parseSummaryID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	s, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleData(h.logger, c, http.StatusOK, presenter.ToSummaryResponse(s))
}

// Update handles PUT /api/summarize/:id
// @Summary      Edit a summary
// @Description  Replaces the edited summary text. The generated summary is kept.
// @Tags         Summaries
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Summary ID (UUID)"
// @Param        request  body      summary.UpdateSummaryRequest  true  "Edited summary"
// @Success      200      {object}  common.SuccessResponse{data=summary.SummaryResponse}
// @Failure      400      {object}  common.ErrorResponse  "Edited summary content is required"
// @Failure      404      {object}  common.ErrorResponse  "Summary not found"
// @Router       /api/summarize/{id} [put]
func (h *Summary) Update(c echo.Context) error {
	id, err := parseSummaryID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req summary.UpdateSummaryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	s, err := h.svc.Update(c.Request().Context(), id, req.EditedSummary)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleData(h.logger, c, http.StatusOK, presenter.ToSummaryResponse(s))
}

// Delete handles DELETE /api/summarize/:id
// @Summary      Delete a summary
// @Tags         Summaries
// @Produce      json
// @Param        id   path      string  true  "Summary ID (UUID)"
// @Success      200  {object}  common.SuccessResponse
// @Failure      404  {object}  common.ErrorResponse  "Summary not found"
// @Router       /api/summarize/{id} [delete]
func (h *Summary) Delete(c echo.Context) error {
	id, err := parseSummaryID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleData(h.logger, c, http.StatusOK, map[string]interface{}{})
}
