package school

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core"
)

var (
	// custom validation tags & texts
	gradeTag  = "grade"
	gradeText = "must be one of BB, MB, BSH or BSB"

	categoryTag  = "category"
	categoryText = "unknown assessment category"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(gradeTag, gradeValidation)
	core.RegisterCustomTranslation(validate, translator, gradeTag, gradeText)

	_ = validate.RegisterValidation(categoryTag, categoryValidation)
	core.RegisterCustomTranslation(validate, translator, categoryTag, categoryText)
}

// Custom Validators

// gradeValidation checks that the value decodes to a grade on the scale.
func gradeValidation(fl validator.FieldLevel) bool {
	return GradeFromString(fl.Field().String()) != GradeUnclassified
}

// categoryValidation checks that the value decodes to a known category.
func categoryValidation(fl validator.FieldLevel) bool {
	return CategoryFromString(fl.Field().String()) != CategoryUnclassified
}
