package transport

import (
	"net/http"

	"github.com/ShohjahonSohibov/Aberno/model"
)

// @Summary Get user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.GetUser(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update own user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body model.UpdateUserRequest true "Update User Request"
// @Success 200 {object} model.UserEntity
// @Failure 403 {object} model.ErrorResponse
// @Router /api/v1/users/{id} [put]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateUser(r.Context(), callerID(r), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete own user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/v1/users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.UserApp.DeleteUser(r.Context(), callerID(r), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "User")
}

// @Summary Create admin
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateAdminRequest true "Create Admin Request"
// @Success 201 {object} model.CreatedResponse[model.AdminEntity]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/users/admin [post]
func (s *RestHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAdminRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.CreateAdmin(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Admin", res)
}

// @Summary Get admin
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} model.AdminEntity
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/users/admin/{id} [get]
func (s *RestHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.GetAdmin(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update own admin record
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param request body model.UpdateAdminRequest true "Update Admin Request"
// @Success 200 {object} model.AdminEntity
// @Failure 403 {object} model.ErrorResponse
// @Router /api/v1/users/admin/{id} [put]
func (s *RestHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateAdminRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateAdmin(r.Context(), callerID(r), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete own admin record
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/v1/users/admin/{id} [delete]
func (s *RestHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	if err := s.UserApp.DeleteAdmin(r.Context(), callerID(r), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Admin")
}
