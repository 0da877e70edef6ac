package patient

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospitalportal/hospitalportal/internal/platform/db"
	"github.com/hospitalportal/hospitalportal/pkg/types"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.ConnFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patientCols = `id, full_name, dob, gender, guardian_primary, contact_primary,
	guardian_secondary, contact_secondary, address, blood_group, allergies, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FullName, &p.DOB.Time, &p.Gender, &p.GuardianPrimary, &p.ContactPrimary,
		&p.GuardianSecondary, &p.ContactSecondary, &p.Address, &p.BloodGroup, &p.Allergies, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patients
			(full_name, dob, gender, guardian_primary, contact_primary,
			 guardian_secondary, contact_secondary, address, blood_group, allergies)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		p.FullName, p.DOB.Time, p.Gender, p.GuardianPrimary, p.ContactPrimary,
		p.GuardianSecondary, p.ContactSecondary, p.Address, p.BloodGroup, p.Allergies).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// -- Growth --

const growthCols = `id, patient_id, age_label, height_cm, weight_kg, head_cm, date, status`

func scanGrowth(row pgx.Row) (*GrowthRecord, error) {
	var g GrowthRecord
	err := row.Scan(&g.ID, &g.PatientID, &g.AgeLabel, &g.HeightCm, &g.WeightKg, &g.HeadCm, &g.Date.Time, &g.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *repoPG) ListGrowth(ctx context.Context, patientID int64) ([]*GrowthRecord, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+growthCols+` FROM growth_records WHERE patient_id = $1 ORDER BY date ASC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*GrowthRecord
	for rows.Next() {
		g, err := scanGrowth(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (r *repoPG) AddGrowth(ctx context.Context, g *GrowthRecord) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO growth_records (patient_id, age_label, height_cm, weight_kg, head_cm, date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		g.PatientID, g.AgeLabel, g.HeightCm, g.WeightKg, g.HeadCm, g.Date.Time, g.Status).Scan(&g.ID)
}

func (r *repoPG) UpdateGrowthStatus(ctx context.Context, id int64, status string) (*GrowthRecord, error) {
	return scanGrowth(r.conn(ctx).QueryRow(ctx,
		`UPDATE growth_records SET status = $1 WHERE id = $2 RETURNING `+growthCols, status, id))
}

// -- Consultations --

const consultationCols = `id, patient_id, date, complaint, diagnosis, treatment, notes`

func (r *repoPG) ListConsultations(ctx context.Context, patientID int64) ([]*Consultation, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+consultationCols+` FROM consultations WHERE patient_id = $1 ORDER BY date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Consultation
	for rows.Next() {
		var c Consultation
		if err := rows.Scan(&c.ID, &c.PatientID, &c.Date.Time, &c.Complaint, &c.Diagnosis, &c.Treatment, &c.Notes); err != nil {
			return nil, err
		}
		items = append(items, &c)
	}
	return items, rows.Err()
}

func (r *repoPG) AddConsultation(ctx context.Context, c *Consultation) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO consultations (patient_id, date, complaint, diagnosis, treatment, notes)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		c.PatientID, c.Date.Time, c.Complaint, c.Diagnosis, c.Treatment, c.Notes).Scan(&c.ID)
}

// -- Vaccinations --

const vaccinationCols = `id, patient_id, vaccine_name, dose_label, due_date, given_date, status`

func scanVaccination(row pgx.Row) (*VaccinationRecord, error) {
	var v VaccinationRecord
	var given *time.Time
	err := row.Scan(&v.ID, &v.PatientID, &v.VaccineName, &v.DoseLabel, &v.DueDate.Time, &given, &v.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if given != nil {
		d := types.DateOf(*given)
		v.GivenDate = &d
	}
	return &v, nil
}

func (r *repoPG) ListVaccinations(ctx context.Context, patientID int64) ([]*VaccinationRecord, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+vaccinationCols+` FROM vaccination_records WHERE patient_id = $1 ORDER BY due_date ASC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*VaccinationRecord
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *repoPG) AddVaccination(ctx context.Context, v *VaccinationRecord) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO vaccination_records (patient_id, vaccine_name, dose_label, due_date, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		v.PatientID, v.VaccineName, v.DoseLabel, v.DueDate.Time, v.Status).Scan(&v.ID)
}

func (r *repoPG) UpdateVaccinationStatus(ctx context.Context, id int64, status string) (*VaccinationRecord, error) {
	return scanVaccination(r.conn(ctx).QueryRow(ctx, `
		UPDATE vaccination_records
		SET status = $1,
		    given_date = CASE WHEN $1 = '`+StatusGiven+`' THEN CURRENT_DATE ELSE given_date END
		WHERE id = $2
		RETURNING `+vaccinationCols, status, id))
}

// -- Milestones --

const milestoneCols = `id, patient_id, milestone, age_label, status, achieved_at`

func scanMilestone(row pgx.Row) (*Milestone, error) {
	var m Milestone
	var achieved *time.Time
	err := row.Scan(&m.ID, &m.PatientID, &m.Milestone, &m.AgeLabel, &m.Status, &achieved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if achieved != nil {
		d := types.DateOf(*achieved)
		m.AchievedAt = &d
	}
	return &m, nil
}

func (r *repoPG) ListMilestones(ctx context.Context, patientID int64) ([]*Milestone, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+milestoneCols+` FROM milestones WHERE patient_id = $1 ORDER BY id ASC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *repoPG) AddMilestone(ctx context.Context, m *Milestone) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO milestones (patient_id, milestone, age_label, status)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		m.PatientID, m.Milestone, m.AgeLabel, m.Status).Scan(&m.ID)
}

func (r *repoPG) UpdateMilestoneStatus(ctx context.Context, id int64, status string) (*Milestone, error) {
	return scanMilestone(r.conn(ctx).QueryRow(ctx, `
		UPDATE milestones
		SET status = $1,
		    achieved_at = CASE WHEN $1 = '`+StatusAchieved+`' THEN CURRENT_DATE ELSE achieved_at END
		WHERE id = $2
		RETURNING `+milestoneCols, status, id))
}
