package appointment

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
	"github.com/linx-health/clinic-server/pkg/dates"
	"github.com/linx-health/clinic-server/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments", h.Create)
	api.GET("/appointments", h.List)
	api.GET("/appointments/:id", h.Get)
	api.PATCH("/appointments/:id/status", h.UpdateStatus)
	api.DELETE("/appointments/:id", h.Delete)
}

type createRequest struct {
	PatientID       uuid.UUID  `json:"patient_id"`
	DoctorID        uuid.UUID  `json:"doctor_id"`
	AppointmentDate dates.Date `json:"appointment_date"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "malformed request body")
	}

	a, err := h.svc.Create(c.Request().Context(), req.PatientID, req.DoctorID, req.AppointmentDate)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid appointment id")
	}
	a, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// List returns appointments, optionally filtered by patient_id or
// doctor_id query parameters.
func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	ctx := c.Request().Context()

	var (
		appts []*Appointment
		total int
		err   error
	)
	switch {
	case c.QueryParam("patient_id") != "":
		patientID, perr := uuid.Parse(c.QueryParam("patient_id"))
		if perr != nil {
			return apperr.BadRequest(apperr.CodeBadRequest, "invalid patient_id filter")
		}
		appts, total, err = h.svc.ListByPatient(ctx, patientID, pg.Limit, pg.Offset)
	case c.QueryParam("doctor_id") != "":
		doctorID, perr := uuid.Parse(c.QueryParam("doctor_id"))
		if perr != nil {
			return apperr.BadRequest(apperr.CodeBadRequest, "invalid doctor_id filter")
		}
		appts, total, err = h.svc.ListByDoctor(ctx, doctorID, pg.Limit, pg.Offset)
	default:
		appts, total, err = h.svc.List(ctx, pg.Limit, pg.Offset)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(appts, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid appointment id")
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "malformed request body")
	}

	a, err := h.svc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid appointment id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
