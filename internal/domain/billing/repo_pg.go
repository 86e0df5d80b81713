package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
)

type pgRepo struct{ pool *pgxpool.Pool }

func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

// Monetary columns are NUMERIC(12,2); they travel as text so the exact
// decimal representation survives the round trip.
const billCols = `id, appointment_id, patient_id, doctor_id,
	base_fee::text, discount_percent, discount_amount::text, gst_amount::text,
	total_amount::text, insurance_amount::text, copay_amount::text, created_at`

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	var baseFee, discount, gst, total, insurance, copay string
	err := row.Scan(&b.ID, &b.AppointmentID, &b.PatientID, &b.DoctorID,
		&baseFee, &b.DiscountPercent, &discount, &gst, &total, &insurance, &copay, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&b.BaseFee, baseFee},
		{&b.DiscountAmount, discount},
		{&b.GSTAmount, gst},
		{&b.TotalAmount, total},
		{&b.InsuranceAmount, insurance},
		{&b.CoPayAmount, copay},
	} {
		d, err := decimal.NewFromString(field.src)
		if err != nil {
			return nil, err
		}
		*field.dst = d
	}
	return &b, nil
}

// Insert relies on the unique index on appointment_id: ON CONFLICT DO
// NOTHING means the losing concurrent caller sees zero rows affected.
func (r *pgRepo) Insert(ctx context.Context, b *Bill) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now().UTC()

	tag, err := r.pool.Exec(ctx, `
		INSERT INTO bill (id, appointment_id, patient_id, doctor_id,
			base_fee, discount_percent, discount_amount, gst_amount,
			total_amount, insurance_amount, copay_amount, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (appointment_id) DO NOTHING`,
		b.ID, b.AppointmentID, b.PatientID, b.DoctorID,
		b.BaseFee.StringFixed(2), b.DiscountPercent, b.DiscountAmount.StringFixed(2),
		b.GSTAmount.StringFixed(2), b.TotalAmount.StringFixed(2),
		b.InsuranceAmount.StringFixed(2), b.CoPayAmount.StringFixed(2), b.CreatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.Conflict(apperr.CodeBillAlreadyExists, "bill already exists for appointment: "+b.AppointmentID.String())
	}
	return nil
}

func (r *pgRepo) GetByID(ctx context.Context, id uuid.UUID) (*Bill, error) {
	b, err := scanBill(r.pool.QueryRow(ctx,
		`SELECT `+billCols+` FROM bill WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(apperr.CodeBillNotFound, "bill not found: "+id.String())
	}
	return b, err
}

func (r *pgRepo) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Bill, error) {
	b, err := scanBill(r.pool.QueryRow(ctx,
		`SELECT `+billCols+` FROM bill WHERE appointment_id = $1`, appointmentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(apperr.CodeBillNotFound, "no bill for appointment: "+appointmentID.String())
	}
	return b, err
}

func (r *pgRepo) List(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bill`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+billCols+` FROM bill ORDER BY created_at LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, b)
	}
	return result, total, rows.Err()
}

func (r *pgRepo) ExistsByAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bill WHERE appointment_id = $1)`, appointmentID).Scan(&exists)
	return exists, err
}
