package helpers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"

	"github.com/openretail/backoffice/config"
	"github.com/openretail/backoffice/types"
)

type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func Validate(payload interface{}, err_src *Errors) {
	v := validate.Struct(payload)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Errors = append(err_src.Errors, err)
			}
		}
	}
}

// ThrowError maps the finance error kinds onto the error envelope. Callers
// can always tell "no data in range" (an empty 200) from "failed to load".
func ThrowError(c *fiber.Ctx, err error) error {
	var validationErr *types.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(422).JSON(Errors{
			Errors: []string{validationErr.Code},
		})
	}

	var notFoundErr *types.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(404).JSON(Errors{
			Errors: []string{notFoundErr.Code},
		})
	}

	var retrievalErr *types.RetrievalError
	if errors.As(err, &retrievalErr) {
		config.Logger.Errorf("Retrieval failed: %s: %v", retrievalErr.Code, retrievalErr.Err)

		return c.Status(500).JSON(Errors{
			Errors: []string{retrievalErr.Code},
		})
	}

	config.Logger.Errorf("Unexpected error: %v", err)

	return c.Status(500).JSON(Errors{
		Errors: []string{"server.internal_error"},
	})
}
