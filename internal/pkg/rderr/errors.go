package rderr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeCapabilityFailure = "CAPABILITY_LOAD_FAILURE"
	CodeExportFailure     = "EXPORT_FAILURE"
	CodeViewClosed        = "VIEW_CLOSED"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrCapabilityFailure is returned when the charting or export engine
	// failed its one-time initialization.
	ErrCapabilityFailure = New(fiber.StatusInternalServerError, CodeCapabilityFailure, "rendering capability failed to initialize")

	// ErrExportFailure is returned when the export document could not be produced.
	ErrExportFailure = New(fiber.StatusInternalServerError, CodeExportFailure, "report export failed")

	// ErrViewClosed is returned when an operation targets a view that has been torn down.
	ErrViewClosed = New(fiber.StatusGone, CodeViewClosed, "view has been torn down")
)

type Extras map[string]interface{}

type RenderError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *RenderError {
	return &RenderError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e RenderError) Msg(format string, parts ...interface{}) *RenderError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e RenderError) WithExtras(extras Extras) *RenderError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *RenderError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
