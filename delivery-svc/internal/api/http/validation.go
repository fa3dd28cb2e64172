package httpapi

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"foodndeliv/delivery-svc/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9. ()-]{7,25}$`)

// fieldMessages is keyed by "<Struct>.<jsonField>.<tag>".
var fieldMessages = map[string]string{
	"CreateCustomerRequest.name.required":       "Customer name cannot be blank",
	"CreateCustomerRequest.name.notblank":       "Customer name cannot be blank",
	"CreateCustomerRequest.name.max":            "Customer name must be less than 255 characters",
	"CreateCustomerRequest.email.required":      "Email cannot be blank",
	"CreateCustomerRequest.email.notblank":      "Email cannot be blank",
	"CreateCustomerRequest.email.email":         "Email should be valid",
	"CreateCustomerRequest.email.max":           "Email must be less than 255 characters",
	"CreateCustomerRequest.state.required":      "Customer state cannot be null",
	"CreateCustomerRequest.state.customerstate": "Customer state must be one of ACTIVE, INACTIVE, BLOCKED",

	"CreateRestaurantRequest.name.required":         "Restaurant name cannot be blank",
	"CreateRestaurantRequest.name.notblank":         "Restaurant name cannot be blank",
	"CreateRestaurantRequest.name.max":              "Restaurant name must be less than 255 characters",
	"CreateRestaurantRequest.address.max":           "Address must be less than 500 characters",
	"CreateRestaurantRequest.state.required":        "Restaurant state cannot be null",
	"CreateRestaurantRequest.state.restaurantstate": "Restaurant state must be one of OPEN, CLOSED",

	"MenuItemRequest.productName.required": "Product name cannot be blank",
	"MenuItemRequest.productName.notblank": "Product name cannot be blank",
	"MenuItemRequest.productName.max":      "Product name must be less than 255 characters",
	"MenuItemRequest.price.required":       "Price cannot be null",
	"MenuItemRequest.price.gte":            "Price must be zero or positive",

	"CreateRiderRequest.name.required":        "Rider name cannot be blank",
	"CreateRiderRequest.name.notblank":        "Rider name cannot be blank",
	"CreateRiderRequest.name.min":             "Rider name must be between 2 and 100 characters",
	"CreateRiderRequest.name.max":             "Rider name must be between 2 and 100 characters",
	"CreateRiderRequest.phoneNumber.required": "Phone number cannot be blank",
	"CreateRiderRequest.phoneNumber.notblank": "Phone number cannot be blank",
	"CreateRiderRequest.phoneNumber.phone":    "Invalid phone number format",
	"CreateRiderRequest.vehicleDetails.max":   "Vehicle details must be less than 100 characters",
	"CreateRiderRequest.status.riderstatus":   "Rider status must be one of AVAILABLE, ON_DELIVERY, OFFLINE, UNAVAILABLE",
	"UpdateRiderRequest.name.min":             "Rider name must be between 2 and 100 characters",
	"UpdateRiderRequest.name.notblank":        "Rider name cannot be blank",
	"UpdateRiderRequest.name.max":             "Rider name must be between 2 and 100 characters",
	"UpdateRiderRequest.phoneNumber.phone":    "Invalid phone number format",
	"UpdateRiderRequest.phoneNumber.notblank": "Phone number cannot be blank",
	"UpdateRiderRequest.vehicleDetails.max":   "Vehicle details must be less than 100 characters",
	"UpdateRiderRequest.status.riderstatus":   "Rider status must be one of AVAILABLE, ON_DELIVERY, OFFLINE, UNAVAILABLE",
}

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterValidation("customerstate", func(fl validator.FieldLevel) bool {
		return domain.CustomerState(fl.Field().String()).Valid()
	})
	v.RegisterValidation("restaurantstate", func(fl validator.FieldLevel) bool {
		return domain.RestaurantState(fl.Field().String()).Valid()
	})
	v.RegisterValidation("riderstatus", func(fl validator.FieldLevel) bool {
		return domain.RiderStatus(fl.Field().String()).Valid()
	})
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &requestValidator{validate: v}
}

// Struct returns a *domain.ValidationError listing every failing field, or nil.
func (rv *requestValidator) Struct(req any) error {
	err := rv.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.InvalidArgument("%s", err.Error())
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = messageFor(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Namespace()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	}
	return fe.Field() + " is invalid"
}
