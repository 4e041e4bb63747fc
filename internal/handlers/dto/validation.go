package dto

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/rafabene/ecoleta/internal/domain/valueobjects"
)

const (
	// ItemIDsTag é a regra de validação para listas de ids separados por vírgula
	ItemIDsTag = "item_ids"
	// NotBlankTag recusa textos formados só por espaços
	NotBlankTag = "notblank"
	// TrimmedTag recusa espaços nas bordas
	TrimmedTag = "trimmed"
)

var registerOnce sync.Once

// RegisterValidators registra as regras customizadas no validator do gin
// e faz os erros usarem o nome do campo do formulário.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}

		v.RegisterTagNameFunc(fieldName)
		if err = v.RegisterValidation(NotBlankTag, validators.NotBlank); err != nil {
			return
		}
		if err = v.RegisterValidation(TrimmedTag, func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return strings.TrimSpace(value) == value
		}); err != nil {
			return
		}
		err = v.RegisterValidation(ItemIDsTag, func(fl validator.FieldLevel) bool {
			return valueobjects.IsValidItemIDs(fl.Field().String())
		})
	})
	return err
}

// fieldName usa a tag form (ou json) como nome público do campo
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// ValidationErrors traduz os erros do validator, um por campo inválido.
// Retorna nil se err não for um erro de validação.
func ValidationErrors(c *gin.Context, err error) []ValidationError {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return nil
	}

	result := make([]ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		key := "validation." + fe.Tag()
		if !Has(c, key) {
			key = "validation.default"
		}

		ve := ValidationError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Message: T(c, key, map[string]interface{}{
				"Field": fe.Field(),
				"Param": fe.Param(),
			}),
		}
		if fe.Kind() == reflect.String {
			ve.Value = fmt.Sprint(fe.Value())
		}
		result = append(result, ve)
	}
	return result
}
