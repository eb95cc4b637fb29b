package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/userauth/internal/domain/errors"
	"github.com/polkiloo/userauth/internal/server/http/dto"
)

// ProfileHandler returns the authenticated account.
type ProfileHandler struct {
	facade ProfileFacade
}

func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.Failure("Authorization token required"))
		return
	}

	user, err := h.facade.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("User not found"))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.Failure(msgInternal))
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Data: dto.NewUserResponse(user)})
}
