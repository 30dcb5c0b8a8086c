package auth

import (
	"net/http"

	autherrors "go-stationops/internal/auth/errors"
	"go-stationops/internal/shared/apperror"
	"go-stationops/internal/shared/response"
	"go-stationops/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if store.IsUnreachable(err) {
			response.FromError(c, err)
			return
		}
		// same answer whichever probe step failed
		e := autherrors.ErrInvalidCredentials
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Me(c *gin.Context) {
	p, ok := PrincipalFrom(c.Request.Context())
	if !ok {
		response.FromError(c, autherrors.ErrPrincipalNotFound)
		return
	}
	response.Success(c, http.StatusOK, ToPrincipalResponse(p), nil)
}
