package appointment

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
	"github.com/linx-health/clinic-server/pkg/dates"
)

type pgRepo struct{ pool *pgxpool.Pool }

func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const apptCols = `id, patient_id, doctor_id, appointment_date, status, created_at, updated_at`

func scanAppt(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var date time.Time
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &date, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.AppointmentDate = dates.FromTime(date)
	return &a, nil
}

func (r *pgRepo) Create(ctx context.Context, a *Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, patient_id, doctor_id, appointment_date, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.PatientID, a.DoctorID, a.AppointmentDate.Time(), a.Status, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *pgRepo) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppt(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(apperr.CodeAppointmentNotFound, "appointment not found: "+id.String())
	}
	return a, err
}

func (r *pgRepo) queryList(ctx context.Context, where string, args []interface{}, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	n := len(args)
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointment `+where+
			` ORDER BY created_at LIMIT $`+strconv.Itoa(n-1)+` OFFSET $`+strconv.Itoa(n), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*Appointment
	for rows.Next() {
		a, err := scanAppt(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, a)
	}
	return result, total, rows.Err()
}

func (r *pgRepo) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return r.queryList(ctx, "", nil, limit, offset)
}

func (r *pgRepo) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return r.queryList(ctx, "WHERE patient_id = $1", []interface{}{patientID}, limit, offset)
}

func (r *pgRepo) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return r.queryList(ctx, "WHERE doctor_id = $1", []interface{}{doctorID}, limit, offset)
}

// UpdateStatus relies on a conditional UPDATE so only one of two racing
// transitions can claim the SCHEDULED row.
func (r *pgRepo) UpdateStatus(ctx context.Context, id uuid.UUID, target Status) (*Appointment, error) {
	if target == StatusScheduled {
		return nil, apperr.BadRequest(apperr.CodeInvalidStatusTransition, "appointment is already SCHEDULED")
	}
	if _, err := ParseStatus(string(target)); err != nil {
		return nil, err
	}

	a, err := scanAppt(r.pool.QueryRow(ctx, `
		UPDATE appointment SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'SCHEDULED'
		RETURNING `+apptCols, id, target))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// No row updated: distinguish a missing appointment from one already
	// in a terminal state.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, apperr.BadRequest(apperr.CodeInvalidStatusTransition,
		"cannot change status of "+string(current.Status)+" appointment")
}

func (r *pgRepo) CountCompletedByPatientExcluding(ctx context.Context, patientID, excludeID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM appointment
		WHERE patient_id = $1 AND status = 'COMPLETED' AND id <> $2`,
		patientID, excludeID).Scan(&count)
	return count, err
}

func (r *pgRepo) ExistsByPatient(ctx context.Context, patientID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM appointment WHERE patient_id = $1)`, patientID).Scan(&exists)
	return exists, err
}

func (r *pgRepo) ExistsByDoctor(ctx context.Context, doctorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM appointment WHERE doctor_id = $1)`, doctorID).Scan(&exists)
	return exists, err
}

func (r *pgRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(apperr.CodeAppointmentNotFound, "appointment not found: "+id.String())
	}
	return nil
}
