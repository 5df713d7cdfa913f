package validator

import (
	"fmt"

	"autozar_backend/internal/algorithms"
	"autozar_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules panics on failure: a missing rule is a startup bug.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation tag %q: %v", tag, err))
		}
	}

	mustRegister("is-category", stringRule(func(s string) bool { return models.Category(s).Valid() }))
	mustRegister("is-listing-status", stringRule(func(s string) bool { return models.ListingStatus(s).Valid() }))
	mustRegister("is-tier", stringRule(func(s string) bool { return models.Tier(s).Valid() }))
	mustRegister("is-payment-method", stringRule(func(s string) bool { return models.PaymentMethod(s).Valid() }))
	mustRegister("is-moderation-outcome", stringRule(func(s string) bool {
		return models.ModerationOutcome(s).Valid()
	}))
	mustRegister("is-sort-mode", stringRule(func(s string) bool {
		_, err := algorithms.ParseSortMode(s)
		return err == nil
	}))
}

// stringRule skips empty values; emptiness is the job of 'required'.
func stringRule(ok func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return ok(value)
	}
}
