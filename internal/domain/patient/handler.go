package patient

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
	api.POST("/patients", h.Create)
	api.GET("/patients", h.List)
	api.GET("/patients/:id", h.Get)
	api.PUT("/patients/:id", h.Update)
	api.DELETE("/patients/:id", h.Delete)
}

type patientRequest struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	DOB       dates.Date    `json:"dob"`
	Insurance InsuranceInfo `json:"insurance"`
}

// response adds the derived age to the stored fields.
type response struct {
	*Patient
	Age int `json:"age"`
}

func toResponse(p *Patient) response {
	return response{Patient: p, Age: p.Age()}
}

func (h *Handler) Create(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "malformed request body")
	}

	p := &Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DOB:       req.DOB,
		Insurance: req.Insurance,
	}
	if err := h.svc.Create(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toResponse(p))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid patient id")
	}
	p, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(p))
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid patient id")
	}
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "malformed request body")
	}

	p := &Patient{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DOB:       req.DOB,
		Insurance: req.Insurance,
	}
	if err := h.svc.Update(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(p))
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	patients, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	items := make([]response, len(patients))
	for i, p := range patients {
		items[i] = toResponse(p)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid patient id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
