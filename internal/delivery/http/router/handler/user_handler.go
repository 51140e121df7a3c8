package handler

import (
	"log/slog"
	"net/http"

	"forno/internal/delivery/http/response"
	"forno/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for staff account handlers
type UserHandler struct {
	uc     usecase.StaffUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(uc usecase.StaffUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// DeviceTokenRequest carries the caller's push registration token.
type DeviceTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// Register creates a Pending staff profile for a fresh identity
func (h *UserHandler) Register(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req usecase.RegisterStaffInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.Register(c.Request().Context(), uid, req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, profile, "Registration submitted successfully")
}

// Me returns the caller's own staff profile, whatever its approval state
func (h *UserHandler) Me(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// List returns all staff profiles
func (h *UserHandler) List(c echo.Context) error {
	profiles, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profiles, "Staff accounts retrieved successfully")
}

// Update applies role, status or name changes to a staff account
func (h *UserHandler) Update(c echo.Context) error {
	var req usecase.UpdateStaffInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile, "Staff account updated successfully")
}

// Delete removes a staff account
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Staff account deleted successfully")
}

// SetDeviceToken registers the caller's push token
func (h *UserHandler) SetDeviceToken(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req DeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SetDeviceToken(c.Request().Context(), uid, req.Token); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Device token registered successfully")
}
