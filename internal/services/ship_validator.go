package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/models/dtos/requests"
	"cosmoport/shipyard/internal/models/entities"

	"github.com/go-playground/validator/v10"
)

// ShipValidator checks ship payloads on create and update.
type ShipValidator struct {
	validate *validator.Validate
}

func NewShipValidator() *ShipValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("prodyear", validateProdYear)
	_ = v.RegisterValidation("shiptype", validateShipType)

	return &ShipValidator{validate: v}
}

func validateProdYear(fl validator.FieldLevel) bool {
	year := time.UnixMilli(fl.Field().Int()).UTC().Year()
	return year >= MinProdYear && year <= MaxProdYear
}

func validateShipType(fl validator.FieldLevel) bool {
	return entities.ShipType(fl.Field().String()).Valid()
}

// ValidateForCreate requires every user-settable field except isUsed, then
// applies the field constraints.
func (v *ShipValidator) ValidateForCreate(req requests.ShipRequest) error {
	required := []struct {
		name    string
		present bool
	}{
		{"name", req.Name != nil},
		{"planet", req.Planet != nil},
		{"shipType", req.ShipType != nil},
		{"prodDate", req.ProdDate != nil},
		{"speed", req.Speed != nil},
		{"crewSize", req.CrewSize != nil},
	}
	for _, f := range required {
		if !f.present {
			return NewValidationError(fmt.Sprintf("%s: %s", f.name, constants.MsgRequiredField))
		}
	}

	return v.ValidateFieldConstraints(req)
}

// ValidateFieldConstraints checks only the fields present in req and reports
// the first violation.
func (v *ShipValidator) ValidateFieldConstraints(req requests.ShipRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return NewValidationError(describeFieldError(fieldErrs[0]))
	}
	return wrapInternal(constants.MsgShipValidationFail, err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "prodyear":
		return fmt.Sprintf("%s year must be between %d and %d", fe.Field(), MinProdYear, MaxProdYear)
	case "shiptype":
		return fmt.Sprintf("%s must be one of %s, %s, %s", fe.Field(),
			entities.ShipTypeTransport, entities.ShipTypeMilitary, entities.ShipTypeMerchant)
	default:
		return fmt.Sprintf("%s failed %q check", fe.Field(), fe.Tag())
	}
}
