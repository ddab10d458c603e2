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

// GetFinanceSummary resolves the requested period and returns the reconciled
// summary: per-operator totals, period totals with net cash, and the
// window's withdrawals. Served from cache when a fresh entry survives, every
// withdraw mutation evicts overlapping entries before it is acknowledged.
func GetFinanceSummary(c *fiber.Ctx) error {
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

	cache := reconciliation.NewSummaryCache()

	summary, ok := cache.Fetch(start_date, end_date)
	if !ok {
		generation := cache.Generation()

		summary, err = models.NewFinanceEngine().Reconcile(start_date, end_date)
		if err != nil {
			return helpers.ThrowError(c, err)
		}

		cache.Store(start_date, end_date, summary, generation)
	}

	return c.Status(200).JSON(entities.BuildSummary(summary, models.OperatorNameByUID, models.StaffNameByID))
}
