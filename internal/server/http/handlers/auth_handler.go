package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/userauth/internal/domain/errors"
	"github.com/polkiloo/userauth/internal/metrics"
	"github.com/polkiloo/userauth/internal/server/http/dto"
	"github.com/polkiloo/userauth/internal/server/http/middleware"
)

const (
	msgInvalidBody        = "Invalid request body"
	msgInternal           = "Internal server error"
	msgInvalidCredentials = "Invalid credentials"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade   AuthFacade
	recorder AuthRecorder
}

// NewAuthHandler creates AuthHandler instance. A nil recorder disables counting.
func NewAuthHandler(facade AuthFacade, recorder AuthRecorder) *AuthHandler {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &AuthHandler{facade: facade, recorder: recorder}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(msgInvalidBody))
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			h.recorder.RecordAuth("register", metrics.OutcomeRejected)
			c.JSON(http.StatusBadRequest, dto.Failure("Name, valid email and password of at most 72 bytes are required"))
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			h.recorder.RecordAuth("register", metrics.OutcomeConflict)
			c.JSON(http.StatusConflict, dto.Failure("User with this email already exists"))
		default:
			h.recorder.RecordAuth("register", metrics.OutcomeError)
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.Failure("Registration failed"))
		}
		return
	}

	h.recorder.RecordAuth("register", metrics.OutcomeSuccess)
	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: "User registered successfully",
		Data:    dto.NewUserResponse(user),
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(msgInvalidBody))
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			h.recorder.RecordAuth("login", metrics.OutcomeRejected)
			c.JSON(http.StatusUnauthorized, dto.Failure(msgInvalidCredentials))
		default:
			h.recorder.RecordAuth("login", metrics.OutcomeError)
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.Failure(msgInternal))
		}
		return
	}

	h.recorder.RecordAuth("login", metrics.OutcomeSuccess)
	middleware.SetAuthHeader(c, token)
	c.JSON(http.StatusOK, dto.Response{Success: true, Token: token})
}
