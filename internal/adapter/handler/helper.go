package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

// getRequestID tries to read the request id set by the request-id middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Response() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// queryInt reads an integer query parameter; anything unparsable reads as 0
func queryInt(c echo.Context, key string) int {
	n, err := strconv.Atoi(c.QueryParam(key))
	if err != nil {
		return 0
	}
	return n
}

// HandleSuccess writes a success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, body interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, body)
}

// HandleData wraps data in the {success, data} envelope
func HandleData(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	return HandleSuccess(logger, c, status, common.SuccessResponse{Success: true, Data: data})
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err, c.Param("id"))

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	body := common.ErrorResponse{
		Success: false,
		Error:   appErr.Message,
		Code:    appErr.Code.String(),
		Details: appErr.Details,
	}
	if appErr.Raw != nil {
		body.Info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps use case and domain errors onto AppError.
// summaryID is the :id path parameter, empty on routes without one.
func toAppError(err error, summaryID string) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrTextAndPromptRequired):
		return errors.ErrInvalidArgument("Text and prompt are required")
	case stdErrors.Is(err, usecaseErrors.ErrEditedSummaryRequired):
		return errors.ErrInvalidArgument("Edited summary content is required")
	case stdErrors.Is(err, usecaseErrors.ErrRecipientsRequired):
		return errors.ErrInvalidRecipients(recipientsRequiredMessage)
	case stdErrors.Is(err, entities.ErrSummaryNotFound), stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrSummaryNotFound(summaryID)
	case stdErrors.Is(err, usecaseErrors.ErrEmailFailed):
		return errors.ErrEmailSendFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrArchiveDisabled):
		return errors.ErrArchiveDisabled()
	case stdErrors.Is(err, usecaseErrors.ErrArchiveFailed):
		return errors.ErrStorageFailed("list archived emails", err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	default:
		return errors.ErrInternal(err)
	}
}
