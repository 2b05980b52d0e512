package api

import (
	"net/http"

	"github.com/zafesys/suite/internal/entity"
)

// Users lists staff users
// @Summary List users
// @Tags users
// @Produce json
// @Param role query string false "Role"
// @Param is_active query bool false "Only active or inactive users"
// @Success 200 {array} entity.User
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Router /v1/users [get]
// @Security BearerAuth
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var f entity.UserFilter

	if v := r.URL.Query().Get("role"); v != "" {
		role := entity.UserRole(v)
		f.Role = &role
	}

	if r.URL.Query().Get("is_active") != "" {
		active, err := queryBool(r, "is_active", true)
		if err != nil {
			SendErr(ctx, w, err, "")
			return
		}

		f.IsActive = &active
	}

	users, err := h.s.Users(ctx, f)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener los usuarios")
		return
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

// User returns a staff user
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} entity.User
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	user, err := h.s.User(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el usuario")
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// UpdateUser changes a staff user
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param UserUpdate body entity.UserUpdate true "Fields to change"
// @Success 200 {object} entity.User
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /v1/users/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.UserUpdate

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	user, err := h.s.UpdateUser(ctx, id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el usuario")
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// DeleteUser deactivates a staff user
// @Summary Deactivate user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Own user"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /v1/users/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	err = h.s.DeleteUser(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo desactivar el usuario")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
