package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"esa-config/internal/permissions"
)

// Handler serves the permissions policy and user roster read-only.
type Handler struct {
	policy permissions.Policy
	users  permissions.Roster
}

func NewHandler(policy permissions.Policy, users permissions.Roster) *Handler {
	return &Handler{policy: policy, users: users}
}

func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	api.Get("/export", h.Export)

	api.Get("/permissions", h.GetPolicy)
	api.Get("/permissions/indices", h.ListIndices)
	api.Get("/permissions/indices/:name", h.GetIndexRules)

	api.Get("/users", h.ListUsers)
	api.Get("/users/:username", h.GetUser)
}

func (h *Handler) GetPolicy(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.policy})
}

func (h *Handler) ListIndices(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.policy.Indices()})
}

func (h *Handler) GetIndexRules(c *fiber.Ctx) error {
	name := c.Params("name")
	rules, ok := h.policy.Rules(name)
	if !ok {
		return UnknownIndexError(name)
	}
	return c.JSON(fiber.Map{"data": rules})
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.users})
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	username := c.Params("username")
	user, ok := h.users.Find(username)
	if !ok {
		return UnknownUserError(username)
	}
	return c.JSON(fiber.Map{"data": user})
}

// Export returns both values as one document, in JSON by default or YAML
// with ?format=yaml.
func (h *Handler) Export(c *fiber.Ctx) error {
	raw := c.Query("format", "json")
	format, err := permissions.ParseFormat(raw)
	if err != nil {
		return InvalidFormatError(raw)
	}

	var buf bytes.Buffer
	bundle := permissions.Bundle{Base: h.policy, Users: h.users}
	if err := permissions.Encode(&buf, format, bundle); err != nil {
		return err
	}

	if format == permissions.FormatYAML {
		c.Set(fiber.HeaderContentType, "application/yaml")
	} else {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return c.Send(buf.Bytes())
}
