package events

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/eventos-go/apperror"
	"github.com/user/eventos-go/auth"
	"github.com/user/eventos-go/validation"
)

// Handlers wraps the EventService to provide HTTP handlers.
type Handlers struct {
	service EventService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service EventService) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the event API routes on a chi sub-router. All of
// them sit behind the auth guard; the caller applies it to the group.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/", h.handleInsert)
	r.Get("/", h.handleListAll)
	r.Get("/user", h.handleListUserEvents)
	r.Get("/{id}", h.handleGetByID)
	r.Put("/{id}", h.handleEdit)
	r.Delete("/{id}", h.handleDelete)
}

// currentUser pulls the authenticated user the guard attached to the context.
func currentUser(w http.ResponseWriter, r *http.Request) (*auth.User, bool) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("Acesso negado!", nil))
		return nil, false
	}
	return user, true
}

// handleInsert godoc
// @Summary Criar um novo evento
// @Description Cria um evento; o usuário autenticado se torna o organizador.
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventBody body events.InsertEventRequest true "Dados do evento"
// @Success 201 {object} events.Event
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 422 {object} apperror.ErrorResponse
// @Router /api/events [post]
func (h *Handlers) handleInsert(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req InsertEventRequest
	if appErr := auth.DecodeJSON(r, &req); appErr != nil {
		auth.WriteError(w, r, appErr)
		return
	}
	if appErr := validation.Check(req); appErr != nil {
		auth.WriteError(w, r, appErr)
		return
	}

	ev, err := h.service.Insert(r.Context(), user, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusCreated, ev)
}

// handleListAll godoc
// @Summary Listar todos os eventos
// @Description Retorna todos os eventos, do mais recente para o mais antigo.
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} events.Event
// @Failure 401 {object} apperror.ErrorResponse
// @Router /api/events [get]
func (h *Handlers) handleListAll(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	events, err := h.service.ListAll(r.Context())
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, events)
}

// handleListUserEvents godoc
// @Summary Listar eventos do usuário logado
// @Description Retorna os eventos organizados pelo usuário autenticado.
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} events.Event
// @Failure 401 {object} apperror.ErrorResponse
// @Router /api/events/user [get]
func (h *Handlers) handleListUserEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	events, err := h.service.ListByOrganizer(r.Context(), user.ID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, events)
}

// handleGetByID godoc
// @Summary Obter um evento por ID
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do evento"
// @Success 200 {object} events.Event
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/events/{id} [get]
func (h *Handlers) handleGetByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	ev, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, ev)
}

// handleEdit godoc
// @Summary Editar um evento por ID
// @Description Atualização parcial: campos omitidos permanecem inalterados. Apenas o organizador pode editar.
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do evento"
// @Param eventBody body events.EditEventRequest true "Campos a atualizar"
// @Success 200 {object} events.Event
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Failure 422 {object} apperror.ErrorResponse
// @Router /api/events/{id} [put]
func (h *Handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req EditEventRequest
	if appErr := auth.DecodeJSON(r, &req); appErr != nil {
		auth.WriteError(w, r, appErr)
		return
	}
	if appErr := validation.Check(req); appErr != nil {
		auth.WriteError(w, r, appErr)
		return
	}

	ev, err := h.service.Edit(r.Context(), chi.URLParam(r, "id"), user.ID, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, ev)
}

// handleDelete godoc
// @Summary Deletar um evento por ID
// @Description Apenas o organizador pode deletar.
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do evento"
// @Success 200 {object} events.DeleteEventResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/events/{id} [delete]
func (h *Handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), user.ID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, resp)
}
