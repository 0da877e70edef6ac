package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no patient or sub-record matches the lookup.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)

	ListGrowth(ctx context.Context, patientID int64) ([]*GrowthRecord, error)
	AddGrowth(ctx context.Context, g *GrowthRecord) error
	UpdateGrowthStatus(ctx context.Context, id int64, status string) (*GrowthRecord, error)

	ListConsultations(ctx context.Context, patientID int64) ([]*Consultation, error)
	AddConsultation(ctx context.Context, c *Consultation) error

	ListVaccinations(ctx context.Context, patientID int64) ([]*VaccinationRecord, error)
	AddVaccination(ctx context.Context, v *VaccinationRecord) error
	// UpdateVaccinationStatus also stamps given_date when the status
	// becomes Given.
	UpdateVaccinationStatus(ctx context.Context, id int64, status string) (*VaccinationRecord, error)

	ListMilestones(ctx context.Context, patientID int64) ([]*Milestone, error)
	AddMilestone(ctx context.Context, m *Milestone) error
	UpdateMilestoneStatus(ctx context.Context, id int64, status string) (*Milestone, error)
}
