package doctor

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
	api.POST("/doctors", h.Create)
	api.GET("/doctors", h.List)
	api.GET("/doctors/:id", h.Get)
	api.DELETE("/doctors/:id", h.Delete)
}

type createRequest struct {
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	NPINo             string     `json:"npi_no"`
	Specialty         string     `json:"specialty"`
	PracticeStartDate dates.Date `json:"practice_start_date"`
}

// response adds the derived experience years to the stored fields.
type response struct {
	*Doctor
	ExperienceYears int `json:"experience_years"`
}

func toResponse(d *Doctor) response {
	return response{Doctor: d, ExperienceYears: d.ExperienceYears()}
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "malformed request body")
	}

	spec, err := ParseSpecialty(req.Specialty)
	if err != nil {
		return err
	}

	d := &Doctor{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		NPINo:             req.NPINo,
		Specialty:         spec,
		PracticeStartDate: req.PracticeStartDate,
	}
	if err := h.svc.Create(c.Request().Context(), d); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toResponse(d))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid doctor id")
	}
	d, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(d))
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	doctors, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	items := make([]response, len(doctors))
	for i, d := range doctors {
		items[i] = toResponse(d)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid doctor id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
