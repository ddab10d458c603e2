package admin_controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/openretail/backoffice/controllers/entities"
	"github.com/openretail/backoffice/controllers/helpers"
	"github.com/openretail/backoffice/controllers/queries"
	"github.com/openretail/backoffice/models"
	"github.com/openretail/backoffice/reconciliation"
)

func GetWithdraws(c *fiber.Ctx) error {
	var errs = new(helpers.Errors)

	params := new(queries.SummaryFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Validate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	start_date, end_date, err := reconciliation.ResolvePeriod(params.Period, params.TimeFrom, params.TimeTo, time.Now())
	if err != nil {
		return helpers.ThrowError(c, err)
	}

	withdraws, err := models.ListWithdraws(start_date, end_date)
	if err != nil {
		return helpers.ThrowError(c, err)
	}

	withdraws_json := make([]entities.WithdrawEntity, 0, len(withdraws))
	for _, withdraw := range withdraws {
		withdraws_json = append(withdraws_json, withdraw.ToJSON())
	}

	return c.Status(200).JSON(withdraws_json)
}

func CreateWithdraw(c *fiber.Ctx) error {
	CurrentStaff := c.Locals("CurrentStaff").(*models.Staff)

	var errs = new(helpers.Errors)

	payload := new(queries.WithdrawParams)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	withdraw, err := models.CreateWithdraw(CurrentStaff, payload.Amount, payload.Note)
	if err != nil {
		return helpers.ThrowError(c, err)
	}

	// Evict before acknowledging: the mutating caller must never read a
	// summary computed without this withdrawal.
	reconciliation.NewSummaryCache().InvalidateDate(withdraw.DateKey())

	return c.Status(201).JSON(withdraw.ToJSON())
}

func UpdateWithdraw(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.withdraw.invalid_id"},
		})
	}

	var errs = new(helpers.Errors)

	payload := new(queries.WithdrawParams)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	withdraw, err := models.FindWithdraw(uint64(id))
	if err != nil {
		return helpers.ThrowError(c, err)
	}

	if err := withdraw.Update(payload.Amount, payload.Note); err != nil {
		return helpers.ThrowError(c, err)
	}

	reconciliation.NewSummaryCache().InvalidateDate(withdraw.DateKey())

	return c.Status(200).JSON(withdraw.ToJSON())
}

func DeleteWithdraw(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.withdraw.invalid_id"},
		})
	}

	withdraw, err := models.FindWithdraw(uint64(id))
	if err != nil {
		return helpers.ThrowError(c, err)
	}

	date_key := withdraw.DateKey()

	if err := withdraw.Delete(); err != nil {
		return helpers.ThrowError(c, err)
	}

	reconciliation.NewSummaryCache().InvalidateDate(date_key)

	return c.SendStatus(204)
}
