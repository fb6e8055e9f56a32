package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeConfiguration     ErrorCode = "CONFIGURATION_ERROR"
	ErrorCodeValidationError   ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInvalidLinkFormat ErrorCode = "INVALID_LINK_FORMAT"
	ErrorCodeVideoNotFound     ErrorCode = "VIDEO_NOT_FOUND"
	ErrorCodeQuotaOrAuth       ErrorCode = "QUOTA_OR_AUTH_ERROR"
	ErrorCodeUpstream          ErrorCode = "UPSTREAM_ERROR"
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Err        error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func NewErrorWithDetails(code ErrorCode, message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// AsAppError returns the *AppError in err's chain, or an internal error
// wrapping err when there is none.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	internal := NewInternalError()
	internal.Err = err
	return internal
}

// Common error constructors
func NewValidationError(message string, details map[string]interface{}) *AppError {
	return NewErrorWithDetails(ErrorCodeValidationError, message, http.StatusBadRequest, details)
}

func NewInvalidLinkError(link string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidLinkFormat,
		"Invalid YouTube URL",
		http.StatusBadRequest,
		map[string]interface{}{
			"expected_format": "https://www.youtube.com/watch?v=VIDEO_ID",
			"provided":        link,
		},
	)
}

func NewConfigurationError(setting string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeConfiguration,
		fmt.Sprintf("%s is not configured", setting),
		http.StatusInternalServerError,
		map[string]interface{}{
			"setting": setting,
		},
	)
}

func NewVideoNotFoundError(videoID string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeVideoNotFound,
		"Video not found",
		http.StatusNotFound,
		map[string]interface{}{
			"video_id": videoID,
		},
	)
}

func NewQuotaOrAuthError(err error) *AppError {
	appErr := NewError(
		ErrorCodeQuotaOrAuth,
		"YouTube API quota exceeded or invalid API key",
		http.StatusForbidden,
	)
	appErr.Err = err
	return appErr
}

// NewUpstreamError reports a failed upstream call. status is the upstream
// HTTP status, or 0 when the request never got a response.
func NewUpstreamError(status int, err error) *AppError {
	appErr := NewError(
		ErrorCodeUpstream,
		"Failed to fetch video data",
		http.StatusInternalServerError,
	)
	if status != 0 {
		appErr.Details["upstream_status"] = status
	}
	appErr.Err = err
	return appErr
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
