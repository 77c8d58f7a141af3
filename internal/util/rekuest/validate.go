package rekuest

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"venturelens.dev/reportengine/internal/pkg/rderr"
	"venturelens.dev/reportengine/internal/util"
)

var (
	Validate   = util.NewValidator()
	translator ut.Translator
)

func init() {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ = uni.GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	err := Validate.RegisterTranslation("caseinsensitiveoneof", translator, func(ut ut.Translator) error {
		return nil
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("oneof", fe.Field(), fe.Param())
		return t
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not register translation for function caseinsensitiveoneof")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// translate translates errors into ErrorResponses
func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := []*ErrorResponse{}

	var fe validator.FieldError

	for i := 0; i < len(ve); i++ {
		fe = ve[i]

		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(translator),
		})
	}

	return trans
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(),
// and validate it using the validator singleton. If the validation passed it will write the unmarshalled body
// to dest and return a nil, otherwise it will return an error. Notice that dest shall
// always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return rderr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if err := validateStruct(dest); err != nil {
		return rderr.NewInvalidViolations(err)
	}

	return nil
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if err := validateStruct(dest); err != nil {
		return rderr.NewInvalidViolations(err)
	}

	return nil
}

func ValidVar(ctx *fiber.Ctx, field any, tag string) error {
	err := Validate.Var(field, tag)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return rderr.NewInvalidViolations(translate(errs))
	}

	return nil
}
