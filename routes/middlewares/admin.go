package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openretail/backoffice/controllers/helpers"
	"github.com/openretail/backoffice/models"
)

func AdminValidator(c *fiber.Ctx) error {
	CurrentStaff := c.Locals("CurrentStaff").(*models.Staff)

	if CurrentStaff.Role != "admin" && CurrentStaff.Role != "superadmin" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	return c.Next()
}
