package transport

import (
	"net/http"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	validatorx "github.com/ShohjahonSohibov/Aberno/utils/validator"
)

// @Summary Create lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body model.CreateLeadRequest true "Lead Request"
// @Success 201 {object} model.CreatedResponse[model.Lead]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/leads [post]
func (s *RestHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLeadRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.CreateLead(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Lead", res)
}

// @Summary List leads
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Param status query string false "new, called, rejected or interested"
// @Success 200 {object} model.Page[model.Lead]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/leads [get]
func (s *RestHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.ListLeads(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get lead
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} model.Lead
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/leads/{id} [get]
func (s *RestHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	res, err := s.LeadApp.GetLead(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update lead
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param request body model.UpdateLeadRequest true "Lead Request"
// @Success 200 {object} model.Lead
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/leads/{id} [put]
func (s *RestHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateLeadRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.UpdateLead(r.Context(), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete lead
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/leads/{id} [delete]
func (s *RestHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := s.LeadApp.DeleteLead(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Lead")
}

// @Summary Create notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.NotificationRequest true "Notification Request"
// @Success 201 {object} model.CreatedResponse[model.Notification]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/notifications [post]
func (s *RestHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req model.NotificationRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.NotificationApp.CreateNotification(r.Context(), callerID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Notification", res)
}

// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Success 200 {object} model.Page[model.Notification]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/notifications [get]
func (s *RestHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.NotificationApp.ListNotifications(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get notification
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} model.Notification
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/notifications/{id} [get]
func (s *RestHandler) GetNotification(w http.ResponseWriter, r *http.Request) {
	res, err := s.NotificationApp.GetNotification(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Param request body model.NotificationRequest true "Notification Request"
// @Success 200 {object} model.Notification
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/notifications/{id} [put]
func (s *RestHandler) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	var req model.NotificationRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.NotificationApp.UpdateNotification(r.Context(), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete notification
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/notifications/{id} [delete]
func (s *RestHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	if err := s.NotificationApp.DeleteNotification(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Notification")
}

// @Summary Update lead status
// @Description Status is read from the query string, or from the JSON body when the query has none
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param status query string false "new, called, rejected or interested"
// @Param request body model.UpdateLeadStatusRequest false "Status Request"
// @Success 200 {object} model.Lead
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/leads/status/{id} [put]
func (s *RestHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	req := model.UpdateLeadStatusRequest{Status: r.URL.Query().Get("status")}
	if req.Status == "" {
		if err := bind(r, &req); err != nil {
			writeError(w, err)
			return
		}
	} else if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LeadApp.UpdateLeadStatus(r.Context(), pathID(r), req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateSystemNotification is called by internal services; the notification has no sender.
// @Summary Create system notification
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.NotificationRequest true "Notification Request"
// @Success 201 {object} model.CreatedResponse[model.Notification]
// @Failure 403 {object} model.ErrorResponse
// @Router /internal/v1/notifications [post]
func (s *RestHandler) CreateSystemNotification(w http.ResponseWriter, r *http.Request) {
	var req model.NotificationRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.NotificationApp.CreateNotification(r.Context(), "", &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Notification", res)
}
