// Package validation registers the custom binding rules used by request DTOs and
// turns binding failures into a uniform validation error.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/utils"
	"github.com/contapyme/contapyme_backend/internal/utils/rut"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InvalidDataMessage is the top-level message of every validation failure.
const InvalidDataMessage = "Datos inválidos"

// FieldViolation describes one failed rule.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var registerOnce sync.Once
var registerErr error

// RegisterCustomValidators installs the json tag name resolver and the custom rules on
// gin's validator engine. Safe to call more than once.
func RegisterCustomValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not a go-playground validator")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("rut", validateRUT); err != nil {
			registerErr = fmt.Errorf("registering rut validator: %w", err)
			return
		}
		if err := v.RegisterValidation("period", validatePeriod); err != nil {
			registerErr = fmt.Errorf("registering period validator: %w", err)
			return
		}
		if err := v.RegisterValidation("localpath", validateLocalPath); err != nil {
			registerErr = fmt.Errorf("registering localpath validator: %w", err)
			return
		}
	})
	return registerErr
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func validateRUT(fl validator.FieldLevel) bool {
	return rut.IsValid(fl.Field().String())
}

func validatePeriod(fl validator.FieldLevel) bool {
	_, _, ok := utils.ParsePeriod(fl.Field().String())
	return ok
}

// IsLocalPath reports whether raw is an absolute path on this site. Protocol-relative
// ("//host") and backslash ("/\host") forms are rejected, browsers read both as a host.
func IsLocalPath(raw string) bool {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return false
	}
	if strings.ContainsAny(raw, "\\\r\n\t") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == "" && u.User == nil
}

func validateLocalPath(fl validator.FieldLevel) bool {
	return IsLocalPath(fl.Field().String())
}

// FromBindingError converts the error returned by gin's ShouldBind* into a 400 AppError
// whose details list every violated rule.
func FromBindingError(err error) *apperrors.AppError {
	return apperrors.NewValidationError(InvalidDataMessage, Violations(err))
}

// Violations flattens a binding error into field violations.
func Violations(err error) []FieldViolation {
	var sliceErrs binding.SliceValidationError
	if errors.As(err, &sliceErrs) {
		var out []FieldViolation
		for i, itemErr := range sliceErrs {
			for _, v := range Violations(itemErr) {
				v.Field = fmt.Sprintf("[%d].%s", i, v.Field)
				out = append(out, v)
			}
		}
		return out
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			field := fieldPath(fe)
			out = append(out, FieldViolation{
				Field:   field,
				Rule:    fe.Tag(),
				Message: message(field, fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldViolation{{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: fmt.Sprintf("%s debe ser de tipo %s", typeErr.Field, typeErr.Type.String()),
		}}
	}

	if errors.Is(err, io.EOF) {
		return []FieldViolation{{Field: "body", Rule: "required", Message: "el cuerpo de la solicitud es requerido"}}
	}

	return []FieldViolation{{Field: "body", Rule: "format", Message: "el cuerpo de la solicitud no es válido"}}
}

// fieldPath drops the root struct name from the namespace: "Req.entries[0].debit" -> "entries[0].debit".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s es requerido", field)
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual a %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s elementos o caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s debe tener como máximo %s elementos o caracteres", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s debe ser un correo válido", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s debe ser un identificador válido", field)
	case "datetime":
		return fmt.Sprintf("%s debe tener el formato %s", field, fe.Param())
	case "rut":
		return fmt.Sprintf("%s no es un RUT válido", field)
	case "period":
		return fmt.Sprintf("%s debe tener el formato YYYYMM", field)
	case "localpath":
		return fmt.Sprintf("%s debe ser una ruta interna que comience con /", field)
	default:
		return fmt.Sprintf("%s no cumple la regla %s", field, fe.Tag())
	}
}
