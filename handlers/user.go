package handlers

import (
	"errors"
	"net/http"

	"luxesalon/models"
	"luxesalon/services/user"
	"luxesalon/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes registration, code-based sign in and profile
// management.
type UserHandler struct {
	Svc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input models.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	resp, err := h.Svc.Register(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) RequestLoginCode(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Svc.RequestLoginCode(c.Request.Context(), input.Phone); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to send login code", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "code sent"})
}

func (h *UserHandler) VerifyLoginCode(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	resp, err := h.Svc.VerifyLoginCode(c.Request.Context(), input.Phone, input.Code)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "verification failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.Svc.Profile(c.Request.Context())
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// ChangePhone swaps the phone number after the verification code for the new
// number checks out.
func (h *UserHandler) ChangePhone(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	verified := utils.VerifyLoginCodeRecord(input.Phone, input.Code) == nil
	u, err := h.Svc.ChangePhone(c.Request.Context(), input.Phone, verified)
	if err != nil {
		if errors.Is(err, user.ErrNotVerified) {
			utils.JSONError(c, http.StatusUnauthorized, "verification failed", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "phone change failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
