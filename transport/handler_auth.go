package transport

import (
	"net/http"

	"github.com/ShohjahonSohibov/Aberno/model"
)

// @Summary Register user
// @Description Register a new user with email or phone
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.RegisterUser(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// @Summary Login user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 429 {object} model.ErrorResponse
// @Router /api/v1/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.LoginUser(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// @Summary Login admin
// @Description Issues an access token and a refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 429 {object} model.ErrorResponse
// @Router /api/v1/auth/login/admin [post]
func (s *RestHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req model.AdminLoginRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.LoginAdmin(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// @Summary Refresh admin token
// @Description Rotates the refresh token; the previous one stops working
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} model.TokenResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/v1/auth/refresh-token [post]
func (s *RestHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshTokenRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.RefreshToken(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
