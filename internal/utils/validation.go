package utils

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/ko"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Translator renders validation errors in Korean.
var Translator ut.Translator

var setupOnce sync.Once

// koreanMessages maps validation tags to message templates.
// {0} is the JSON field name and {1} the tag parameter.
var koreanMessages = map[string]string{
	"required": "{0}은(는) 필수 항목입니다.",
	"max":      "{0}은(는) 최대 {1}자까지 입력할 수 있습니다.",
	"min":      "{0}은(는) 최소 {1}자 이상이어야 합니다.",
	"url":      "{0}은(는) 올바른 URL이어야 합니다.",
	"oneof":    "{0}은(는) [{1}] 중 하나여야 합니다.",
	"gte":      "{0}은(는) {1} 이상이어야 합니다.",
	"lte":      "{0}은(는) {1} 이하여야 합니다.",
}

// SetupValidator registers JSON field names and Korean translations on gin's
// validator engine. Safe to call more than once.
func SetupValidator() {
	setupOnce.Do(func() {
		locale := ko.New()
		uni := ut.New(locale, locale)
		Translator, _ = uni.GetTranslator("ko")

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// Use JSON tag names for errors instead of Go struct names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		for tag, text := range koreanMessages {
			tag, text := tag, text
			_ = v.RegisterTranslation(tag, Translator,
				func(t ut.Translator) error { return t.Add(tag, text, true) },
				func(t ut.Translator, fe validator.FieldError) string {
					s, err := t.T(tag, fe.Field(), fe.Param())
					if err != nil {
						return fe.Error()
					}
					return s
				},
			)
		}
	})
}

// FormatValidationError formats validation errors into a readable string.
func FormatValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var errorMessages []string
		for _, e := range errs {
			if Translator != nil {
				errorMessages = append(errorMessages, e.Translate(Translator))
			} else {
				errorMessages = append(errorMessages, e.Error())
			}
		}
		return strings.Join(errorMessages, " ")
	}
	return MsgInvalidRequest
}

// BindAndValidate binds the request body to a struct and validates it.
// If validation fails, it sends a BadRequest response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	SetupValidator()
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, FormatValidationError(err))
		return false
	}
	return true
}
