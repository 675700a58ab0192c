package validation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/eventos-go/events"
	"github.com/user/eventos-go/users"
	"github.com/user/eventos-go/validation"
)

func strPtr(s string) *string { return &s }

func TestRegisterEmptyPayloadReportsEveryRule(t *testing.T) {
	appErr := validation.Check(users.RegisterRequest{})

	require.NotNil(t, appErr)
	require.Equal(t, []string{
		"O nome é obrigatório!",
		"O e-mail é obrigatório!",
		"A senha é obrigatório!",
		"A confirmação de senha é obrigatório!",
	}, appErr.Errors)
}

func TestRegisterPasswordRules(t *testing.T) {
	appErr := validation.Check(users.RegisterRequest{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "abc",
		ConfirmPassword: "abcd",
	})

	require.NotNil(t, appErr)
	require.Equal(t, []string{
		"A senha precisa ter no mínimo 5 caracteres!",
		"As senhas não são iguais!",
	}, appErr.Errors)
}

func TestRegisterInvalidEmail(t *testing.T) {
	appErr := validation.Check(users.RegisterRequest{
		Name:            "Ana",
		Email:           "not-an-email",
		Password:        "senha123",
		ConfirmPassword: "senha123",
	})

	require.NotNil(t, appErr)
	require.Equal(t, []string{"Insira um e-mail válido!"}, appErr.Errors)
}

func TestRegisterValid(t *testing.T) {
	appErr := validation.Check(users.RegisterRequest{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "senha123",
		ConfirmPassword: "senha123",
	})

	require.Nil(t, appErr)
}

func TestInsertEventEmptyPayloadReportsEveryRule(t *testing.T) {
	appErr := validation.Check(events.InsertEventRequest{})

	require.NotNil(t, appErr)
	require.Equal(t, []string{
		"O título é obrigatório!",
		"O campo \"participantes\" é obrigatório!",
		"O inicio do evento é obrigatória!",
		"O fim do evento é obrigatória!",
		"O local do evento é obrigatório!",
	}, appErr.Errors)
}

func TestInsertEventAttendeeRules(t *testing.T) {
	base := events.InsertEventRequest{
		Title:    "Planejamento",
		Start:    "2024-01-01T10:00:00Z",
		End:      "2024-01-01T11:00:00Z",
		Location: "Main Hall",
	}

	empty := base
	empty.Attendees = []string{}
	appErr := validation.Check(empty)
	require.NotNil(t, appErr)
	require.Equal(t, []string{"O campo \"participantes\" deve ser um array não vazio."}, appErr.Errors)

	bad := base
	bad.Attendees = []string{"ana@example.com", "", "not-an-email"}
	appErr = validation.Check(bad)
	require.NotNil(t, appErr)
	require.Equal(t, []string{
		"O e-mail do participante é obrigatório!",
		"Insira um e-mail de participante válido!",
	}, appErr.Errors)
}

func TestInsertEventDateFormat(t *testing.T) {
	appErr := validation.Check(events.InsertEventRequest{
		Title:     "Planejamento",
		Attendees: []string{"ana@example.com"},
		Start:     "01/01/2024 10:00",
		End:       "2024-01-01T11:00:00Z",
		Location:  "Main Hall",
	})

	require.NotNil(t, appErr)
	require.Equal(t, []string{"Formato de data inválido. Use YYYY-MM-DDTHH:mm:ssZ!"}, appErr.Errors)
}

func TestInsertEventLocationLength(t *testing.T) {
	appErr := validation.Check(events.InsertEventRequest{
		Title:     "Planejamento",
		Attendees: []string{"ana@example.com"},
		Start:     "2024-01-01T10:00:00Z",
		End:       "2024-01-01T11:00:00Z",
		Location:  "Sala",
	})

	require.NotNil(t, appErr)
	require.Equal(t, []string{"O local deve conter no mínimo 5 caracteres!"}, appErr.Errors)
}

func TestEditEventOmittedFieldsPass(t *testing.T) {
	require.Nil(t, validation.Check(events.EditEventRequest{}))
	require.Nil(t, validation.Check(events.EditEventRequest{Title: strPtr("Novo título")}))
}

func TestEditEventSuppliedFieldsAreChecked(t *testing.T) {
	appErr := validation.Check(events.EditEventRequest{
		Start: strPtr("amanhã"),
	})
	require.NotNil(t, appErr)
	require.Equal(t, []string{"Formato de data inválido. Use YYYY-MM-DDTHH:mm:ssZ!"}, appErr.Errors)

	appErr = validation.Check(events.EditEventRequest{
		Attendees: []string{"not-an-email"},
	})
	require.NotNil(t, appErr)
	require.Equal(t, []string{"Insira um e-mail de participante válido!"}, appErr.Errors)
}

func TestUpdateUserOptionalPassword(t *testing.T) {
	require.Nil(t, validation.Check(users.UpdateUserRequest{}))
	require.Nil(t, validation.Check(users.UpdateUserRequest{Name: strPtr("Ana Maria")}))

	appErr := validation.Check(users.UpdateUserRequest{Password: strPtr("abc")})
	require.NotNil(t, appErr)
	require.Equal(t, []string{"A senha precisa ter no mínimo 5 caracteres!"}, appErr.Errors)
}
