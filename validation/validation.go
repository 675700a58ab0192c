// Package validation implements the declarative, per-endpoint field rules
// evaluated before any handler logic runs. Rules are expressed as
// go-playground/validator tags on the request DTOs; this package translates
// every failed rule into its fixed-locale message and reports the full list
// at once, never just the first failure.
//
// Validation here is purely syntactic (presence, format, length) plus
// same-payload cross-field rules such as password confirmation. Business
// invariants that need the database, like e-mail uniqueness or the event
// time window, live in the services.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/user/eventos-go/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so message lookup matches the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// messages maps "field.tag" to the client-facing message for that rule.
// All messages are in the API's single fixed locale.
var messages = map[string]string{
	"name.required":            "O nome é obrigatório!",
	"email.required":           "O e-mail é obrigatório!",
	"email.email":              "Insira um e-mail válido!",
	"password.required":        "A senha é obrigatório!",
	"password.min":             "A senha precisa ter no mínimo 5 caracteres!",
	"confirmpassword.required": "A confirmação de senha é obrigatório!",
	"confirmpassword.eqfield":  "As senhas não são iguais!",

	"title.required":       "O título é obrigatório!",
	"attendees.required":   "O campo \"participantes\" é obrigatório!",
	"attendees.min":        "O campo \"participantes\" deve ser um array não vazio.",
	"attendees.*.required": "O e-mail do participante é obrigatório!",
	"attendees.*.email":    "Insira um e-mail de participante válido!",
	"start.required":       "O inicio do evento é obrigatória!",
	"start.datetime":       "Formato de data inválido. Use YYYY-MM-DDTHH:mm:ssZ!",
	"end.required":         "O fim do evento é obrigatória!",
	"end.datetime":         "Formato de data inválido. Use YYYY-MM-DDTHH:mm:ssZ!",
	"location.required":    "O local do evento é obrigatório!",
	"location.min":         "O local deve conter no mínimo 5 caracteres!",
}

// Check evaluates the validation tags of the given request DTO. It returns
// nil when every rule passes, or a 422 ValidationError carrying the message
// of every failed rule, in field declaration order.
func Check(req interface{}) *apperror.AppError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewValidationError("Dados de requisição inválidos!", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, messageFor(fe))
	}
	return apperror.NewValidationErrors(msgs)
}

func messageFor(fe validator.FieldError) string {
	// Indexed fields like attendees[2] map to the wildcard entry of their slice.
	field := fe.Field()
	if i := strings.IndexByte(field, '['); i >= 0 {
		if msg, ok := messages[field[:i]+".*."+fe.Tag()]; ok {
			return msg
		}
		field = field[:i]
	}
	if msg, ok := messages[field+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("O campo \"%s\" é inválido!", field)
}
