package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fairyhunter13/subscription-admin/internal/collection"
	"github.com/fairyhunter13/subscription-admin/internal/model"
)

var (
	errInvalidPage  = errors.New("invalid request: page must be an integer")
	errInvalidOrder = errors.New("invalid request: order must be asc or desc")
)

// parseListQuery reads search, filter, page, sort and order from the query string.
// A missing page means the first one; range checks are left to the view.
func parseListQuery(c *fiber.Ctx) (model.ListQuery, error) {
	q := model.ListQuery{
		Search: c.Query("search"),
		Filter: c.Query("filter", collection.FilterAll),
		Page:   1,
		Sort:   c.Query("sort"),
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return model.ListQuery{}, errInvalidPage
		}
		q.Page = page
	}

	switch strings.ToLower(c.Query("order", "asc")) {
	case "asc":
	case "desc":
		q.Desc = true
	default:
		return model.ListQuery{}, errInvalidOrder
	}
	return q, nil
}

// listQuery parses the list query or writes a 400 response. ok is false when
// the response has been written.
func listQuery(c *fiber.Ctx) (q model.ListQuery, ok bool, err error) {
	q, err = parseListQuery(c)
	if err != nil {
		return q, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return q, true, nil
}
