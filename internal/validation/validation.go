package validation

import (
	"errors"
	"reflect"
	"strings"

	"hotel-inspection-backend/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Pakai nama field JSON supaya key pesan sama dengan body request
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Messages memetakan "field.tag" atau "field" ke pesan error berbahasa Indonesia.
type Messages map[string]string

// Struct memvalidasi v dan mengembalikan 400 untuk field pertama yang gagal.
func Struct(v interface{}, msgs Messages) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if msg, ok := msgs[fe.Field()+"."+fe.Tag()]; ok {
		return apperror.BadRequest(msg)
	}
	if msg, ok := msgs[fe.Field()]; ok {
		return apperror.BadRequest(msg)
	}
	return apperror.BadRequest("Field " + fe.Field() + " tidak valid.")
}
