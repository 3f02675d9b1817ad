package api

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

type AppError struct {
	Code    string `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

type ErrorResponse struct {
	Error *AppError `json:"error"`
}

func UnknownIndexError(name string) *AppError {
	return &AppError{
		Code:    "UNKNOWN_INDEX",
		Status:  fiber.StatusNotFound,
		Message: fmt.Sprintf("Unknown index: %s", name),
	}
}

func UnknownUserError(username string) *AppError {
	return &AppError{
		Code:    "UNKNOWN_USER",
		Status:  fiber.StatusNotFound,
		Message: fmt.Sprintf("Unknown user: %s", username),
	}
}

func InvalidFormatError(format string) *AppError {
	return &AppError{
		Code:    "INVALID_FORMAT",
		Status:  fiber.StatusBadRequest,
		Message: fmt.Sprintf("Unsupported format: %s", format),
	}
}

// ErrorHandler renders AppErrors with their own status. Anything else keeps the
// fiber error's code (500 otherwise) and only the log sees its detail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(ErrorResponse{Error: appErr})
	}

	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	log.Printf("ERROR: %v", err)
	return c.Status(code).JSON(ErrorResponse{Error: &AppError{
		Code:    "INTERNAL_ERROR",
		Status:  code,
		Message: "Internal server error",
	}})
}
