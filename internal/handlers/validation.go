package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
	registerOnce        sync.Once
	registerErr         error
)

// requiredMessages overrides the generic "is required" text for known fields.
var requiredMessages = map[string]string{
	"fromCurrencyCode": "From currency is required.",
	"toCurrencyCode":   "To currency is required.",
	"from":             "From currency is required.",
	"to":               "To currency is required.",
	"amount":           "Amount is required.",
}

// RegisterValidators installs the custom binding rules on gin's validator.
// Field errors are reported under their json (or form) names.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(fieldName)
		registerErr = v.RegisterValidation("currencycode", validateCurrencyCode)
	})
	return registerErr
}

func fieldName(fld reflect.StructField) string {
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

// validateCurrencyCode accepts three ASCII letters in any case.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// bindingErrors converts validator failures to field errors.
// ok is false for malformed payloads that never reached validation.
func bindingErrors(err error) (apperrors.ValidationErrors, bool) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, false
	}
	verrs := apperrors.ValidationErrors{}
	for _, fe := range fieldErrs {
		verrs.Add(fe.Field(), fieldMessage(fe))
	}
	return verrs, true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		return fmt.Sprintf("%s is required.", fe.Field())
	case "currencycode":
		return "Currency code must be 3 letters."
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}

// respondBindError writes a 400 for a failed ShouldBind call.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	if verrs, ok := bindingErrors(err); ok {
		respondError(c, logger, verrs, "")
		return
	}
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
