package util

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/guregu/null.v3"

	"venturelens.dev/reportengine/internal/constant"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("caseinsensitiveoneof", caseInsensitiveOneOf)
	validate.RegisterValidation("chartslot", chartSlot)
	validate.RegisterCustomTypeFunc(nullFloatValuer, null.Float{})
	validate.RegisterCustomTypeFunc(nullStringValuer, null.String{})

	return validate
}

func caseInsensitiveOneOf(fl validator.FieldLevel) bool {
	val := strings.ToLower(fl.Field().String())
	candidates := strings.Split(strings.ToLower(fl.Param()), " ")
	for _, v := range candidates {
		if val == v {
			return true
		}
	}
	return false
}

func chartSlot(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constant.SlotRadar, constant.SlotBar, constant.SlotDoughnut:
		return true
	}
	return false
}

func nullFloatValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(null.Float); ok {
		return valuer.Float64
	}

	return nil
}

func nullStringValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(null.String); ok {
		return valuer.String
	}

	return nil
}
