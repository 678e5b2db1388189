package validator

import (
	"log"

	"jobboard_backend/internal/jobquery"
	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует правила для перечислений из models.
// Пустое значение всегда проходит: за обязательность отвечает 'required'.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", enumRule(func(s string) bool { return models.UserRole(s).Valid() }))
	mustRegister("is-job-type", enumRule(func(s string) bool { return models.JobType(s).Valid() }))
	mustRegister("is-experience-level", enumRule(func(s string) bool { return models.ExperienceLevel(s).Valid() }))
	mustRegister("is-salary-period", enumRule(func(s string) bool { return models.SalaryPeriod(s).Valid() }))
	mustRegister("is-sort", enumRule(func(s string) bool { return jobquery.Sort(s).Valid() }))
}

func enumRule(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return valid(value)
	}
}
