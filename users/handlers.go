package users

import (
	"net/http"

	"github.com/user/eventos-go/apperror"
	"github.com/user/eventos-go/auth"
	"github.com/user/eventos-go/validation"
)

// Handlers wraps the UserService to provide HTTP handlers.
type Handlers struct {
	service UserService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service UserService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary Registrar um novo usuário
// @Description Cria uma conta de usuário e retorna um token de acesso.
// @Tags Users
// @Accept json
// @Produce json
// @Param registerBody body users.RegisterRequest true "Dados de registro"
// @Success 201 {object} users.AuthResponse
// @Failure 422 {object} apperror.ErrorResponse
// @Router /api/users/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if appErr := auth.DecodeJSON(r, &req); appErr != nil {
			auth.WriteError(w, r, appErr)
			return
		}
		if appErr := validation.Check(req); appErr != nil {
			auth.WriteError(w, r, appErr)
			return
		}

		resp, err := h.service.Register(r.Context(), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, resp)
	}
}

// HandleLogin godoc
// @Summary Fazer login do usuário
// @Description Autentica por e-mail e senha e retorna um token de acesso.
// @Tags Users
// @Accept json
// @Produce json
// @Param loginBody body users.LoginRequest true "Credenciais"
// @Success 201 {object} users.AuthResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Failure 422 {object} apperror.ErrorResponse
// @Router /api/users/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if appErr := auth.DecodeJSON(r, &req); appErr != nil {
			auth.WriteError(w, r, appErr)
			return
		}
		if appErr := validation.Check(req); appErr != nil {
			auth.WriteError(w, r, appErr)
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		// The login endpoint answers 201, matching the surface being ported.
		auth.WriteJSON(w, http.StatusCreated, resp)
	}
}

// HandleCurrentUser godoc
// @Summary Obter o usuário atual logado
// @Description Retorna a identidade anexada pelo guard; nenhuma consulta extra é feita.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 401 {object} apperror.ErrorResponse
// @Router /api/users/user [get]
func (h *Handlers) HandleCurrentUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFrom(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Acesso negado!", nil))
			return
		}
		auth.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleUpdate godoc
// @Summary Atualizar dados do usuário atual
// @Description Atualiza nome e/ou senha do usuário autenticado. Campos omitidos permanecem inalterados; o e-mail é imutável.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateBody body users.UpdateUserRequest false "Campos a atualizar"
// @Success 200 {object} auth.User
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 422 {object} apperror.ErrorResponse
// @Router /api/users/user [put]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFrom(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Acesso negado!", nil))
			return
		}

		var req UpdateUserRequest
		if appErr := auth.DecodeJSON(r, &req); appErr != nil {
			auth.WriteError(w, r, appErr)
			return
		}
		if appErr := validation.Check(req); appErr != nil {
			auth.WriteError(w, r, appErr)
			return
		}

		updated, err := h.service.Update(r.Context(), user.ID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, updated.Sanitized())
	}
}
