package billing

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
	"github.com/linx-health/clinic-server/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments/:id/bill", h.Generate)
	api.GET("/bills", h.List)
	api.GET("/bills/:id", h.Get)
	api.GET("/bills/by-appointment/:id", h.GetByAppointment)
}

// response renders every monetary field with a fixed two-decimal scale.
type response struct {
	ID              uuid.UUID `json:"id"`
	AppointmentID   uuid.UUID `json:"appointment_id"`
	PatientID       uuid.UUID `json:"patient_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	BaseFee         string    `json:"base_fee"`
	DiscountPercent int       `json:"discount_percent"`
	DiscountAmount  string    `json:"discount_amount"`
	GSTAmount       string    `json:"gst_amount"`
	TotalAmount     string    `json:"total_amount"`
	InsuranceAmount string    `json:"insurance_amount"`
	CoPayAmount     string    `json:"copay_amount"`
	CreatedAt       string    `json:"created_at"`
}

func toResponse(b *Bill) response {
	return response{
		ID:              b.ID,
		AppointmentID:   b.AppointmentID,
		PatientID:       b.PatientID,
		DoctorID:        b.DoctorID,
		BaseFee:         b.BaseFee.StringFixed(2),
		DiscountPercent: b.DiscountPercent,
		DiscountAmount:  b.DiscountAmount.StringFixed(2),
		GSTAmount:       b.GSTAmount.StringFixed(2),
		TotalAmount:     b.TotalAmount.StringFixed(2),
		InsuranceAmount: b.InsuranceAmount.StringFixed(2),
		CoPayAmount:     b.CoPayAmount.StringFixed(2),
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) Generate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid appointment id")
	}
	b, err := h.svc.GenerateBill(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toResponse(b))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid bill id")
	}
	b, err := h.svc.GetBill(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(b))
}

func (h *Handler) GetByAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(apperr.CodeBadRequest, "invalid appointment id")
	}
	b, err := h.svc.GetBillByAppointment(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(b))
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	bills, total, err := h.svc.ListBills(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	items := make([]response, len(bills))
	for i, b := range bills {
		items[i] = toResponse(b)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
