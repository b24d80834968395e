package handler

import (
	"encoding/json"
	"net/http"
	"tenbank-api/common"
	"tenbank-api/model"
	"tenbank-api/service"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new user with a hashed login credential.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "User registration payload"
// @Success      201  {object}  model.User
// @Failure      400  {object}  common.AppError "Invalid request payload"
// @Failure      500  {object}  common.AppError "Internal server error while creating user"
// @Router       /register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.service.Register(req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
	return nil
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Verifies the login credential and returns a bearer token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Login payload"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  common.AppError "Invalid request payload"
// @Failure      401  {object}  common.AppError "Invalid email or password"
// @Router       /login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	token, err := h.service.Login(req)
	if err != nil {
		return common.NewAppError(http.StatusUnauthorized, "Invalid email or password", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"token": token})
	return nil
}
