package attendance

import (
	"net/http"
	"strings"

	"go-stationops/internal/auth"
	autherrors "go-stationops/internal/auth/errors"
	"go-stationops/internal/shared/apperror"
	"go-stationops/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// targetEmployee picks whose attendance a request is about. Employees always
// act on themselves; admins must name the employee.
func targetEmployee(p *auth.Principal, requested string) (primitive.ObjectID, bool, error) {
	requested = strings.TrimSpace(requested)

	if p.Role == auth.RoleAdmin {
		if requested == "" {
			return primitive.NilObjectID, false, apperror.RequiredField("Employee Id")
		}
		id, err := primitive.ObjectIDFromHex(requested)
		if err != nil {
			return primitive.NilObjectID, false, apperror.InvalidField("Employee Id")
		}
		return id, true, nil
	}

	e, ok := p.Employee()
	if !ok {
		return primitive.NilObjectID, false, autherrors.ErrForbidden
	}
	return e.ID, false, nil
}

func (h *Handler) Report(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		h.writeServiceError(c, autherrors.ErrPrincipalNotFound)
		return
	}

	var req ReportAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("http report attendance validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	employeeID, onBehalf, err := targetEmployee(p, req.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ReportAttendance(c.Request.Context(), ReportAttendanceInput{
		EmployeeID:   employeeID,
		OnBehalf:     onBehalf,
		Date:         req.Date,
		Status:       Status(req.Status),
		ClockInTime:  req.ClockInTime,
		ClockOutTime: req.ClockOutTime,
		Notes:        req.Notes,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListMonth(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		h.writeServiceError(c, autherrors.ErrPrincipalNotFound)
		return
	}

	employeeID, _, err := targetEmployee(p, c.Query("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	month := c.Query("month")
	if month == "" {
		h.writeServiceError(c, apperror.RequiredField("Month"))
		return
	}

	resp, err := h.service.ListMonth(c.Request.Context(), employeeID, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
