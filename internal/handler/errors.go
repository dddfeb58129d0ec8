package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/fairyhunter13/subscription-admin/internal/service"
	"github.com/fairyhunter13/subscription-admin/internal/upstream"
)

// fieldNames maps request struct fields to their JSON names.
var fieldNames = map[string]string{
	"Name":             "name",
	"MaxUsesPerUser":   "maxUsesPerUser",
	"MaxTotalUses":     "maxTotalUses",
	"DiscountValue":    "discountValue",
	"ExpiresAt":        "expiresAt",
	"PackageName":      "packageName",
	"ShortDescription": "shortDescription",
	"ActualPrice":      "actualPrice",
	"DiscountedPrice":  "discountedPrice",
	"Features":         "features",
	"UserIDs":          "userId",
	"Title":            "title",
	"Text":             "text",
	"SubscriptionType": "subscriptionType",
	"Email":            "email",
	"Password":         "password",
}

// formatValidationError converts the first validator error to a message naming the field.
func formatValidationError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "invalid request"
	}

	fe := ve[0]
	base, index, isElem := strings.Cut(fe.StructField(), "[")
	field, ok := fieldNames[base]
	if !ok {
		field = base
	}
	if isElem {
		field += "[" + index
	}

	switch fe.Tag() {
	case "required":
		return "invalid request: " + field + " is required"
	case "notblank":
		return "invalid request: " + field + " cannot be whitespace only"
	case "max":
		if fe.Kind() == reflect.Slice {
			return "invalid request: " + field + " has more than " + fe.Param() + " entries"
		}
		return "invalid request: " + field + " exceeds maximum length of " + fe.Param()
	case "gte":
		return "invalid request: " + field + " must be at least " + fe.Param()
	case "lte":
		return "invalid request: " + field + " must be at most " + fe.Param()
	case "email":
		return "invalid request: " + field + " must be a valid email address"
	case "datetime":
		return "invalid request: " + field + " must be a date formatted as YYYY-MM-DD"
	case "audience":
		return "invalid request: " + field + " must be one of all, free, paid"
	default:
		return "invalid request: " + field + " is invalid"
	}
}

// writeError maps service and upstream errors to a JSON error response.
// Unexpected errors are logged with the request context and reported as 500.
func writeError(c *fiber.Ctx, err error, msg string) error {
	status, body := fiber.StatusInternalServerError, "internal server error"

	var rejected *service.UpstreamRejectedError
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		status, body = fiber.StatusBadRequest, "invalid request"
	case errors.Is(err, service.ErrCouponExpired),
		errors.Is(err, service.ErrPriceRequired),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrNoRecipients):
		status, body = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrCouponExists):
		status, body = fiber.StatusConflict, err.Error()
	case errors.Is(err, service.ErrPackageNotFound),
		errors.Is(err, service.ErrDispatchNotFound):
		status, body = fiber.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		status, body = fiber.StatusUnauthorized, err.Error()
	case errors.As(err, &rejected):
		status, body = rejected.StatusCode, rejected.Message
	case errors.Is(err, upstream.ErrUnavailable):
		status, body = fiber.StatusBadGateway, "upstream unavailable"
	}

	if status >= fiber.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg(msg)
	}
	return c.Status(status).JSON(fiber.Map{"error": body})
}
