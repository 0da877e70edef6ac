package patient

import (
	"context"
	"time"

	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
	"github.com/hospitalportal/hospitalportal/pkg/types"
)

type Service struct {
	patients Repository
	now      func() time.Time
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients, now: time.Now}
}

func (s *Service) withAge(p *Patient) *Patient {
	p.Age = AgeString(p.DOB.Time, s.now())
	return p
}

// Input is the patient registration form.
type Input struct {
	FullName          string  `json:"fullName"`
	DOB               string  `json:"dob"`
	Gender            string  `json:"gender"`
	GuardianPrimary   string  `json:"guardianPrimary"`
	ContactPrimary    string  `json:"contactPrimary"`
	GuardianSecondary *string `json:"guardianSecondary"`
	ContactSecondary  *string `json:"contactSecondary"`
	Address           *string `json:"address"`
	BloodGroup        *string `json:"bloodGroup"`
	Allergies         *string `json:"allergies"`
}

func (s *Service) Create(ctx context.Context, in Input) (*Patient, error) {
	if in.FullName == "" || in.DOB == "" || in.Gender == "" || in.GuardianPrimary == "" || in.ContactPrimary == "" {
		return nil, httpx.BadRequestf("Missing required fields.")
	}
	dob, err := types.ParseDate(in.DOB)
	if err != nil {
		return nil, httpx.BadRequestf("invalid dob: %s", in.DOB)
	}
	p := &Patient{
		FullName:          in.FullName,
		DOB:               dob,
		Gender:            in.Gender,
		GuardianPrimary:   in.GuardianPrimary,
		ContactPrimary:    in.ContactPrimary,
		GuardianSecondary: in.GuardianSecondary,
		ContactSecondary:  in.ContactSecondary,
		Address:           in.Address,
		BloodGroup:        in.BloodGroup,
		Allergies:         in.Allergies,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.withAge(p), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withAge(p), nil
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	items, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range items {
		s.withAge(p)
	}
	return items, nil
}

// -- Growth --

type GrowthInput struct {
	AgeLabel string   `json:"ageLabel"`
	HeightCm *float64 `json:"heightCm"`
	WeightKg *float64 `json:"weightKg"`
	HeadCm   *float64 `json:"headCm"`
	Date     string   `json:"date"`
}

func (s *Service) Growth(ctx context.Context, patientID int64) ([]*GrowthRecord, error) {
	return s.patients.ListGrowth(ctx, patientID)
}

func (s *Service) AddGrowth(ctx context.Context, patientID int64, in GrowthInput) (*GrowthRecord, error) {
	if in.AgeLabel == "" || in.Date == "" {
		return nil, httpx.BadRequestf("ageLabel and date are required")
	}
	day, err := types.ParseDate(in.Date)
	if err != nil {
		return nil, httpx.BadRequestf("invalid date: %s", in.Date)
	}
	g := &GrowthRecord{
		PatientID: patientID,
		AgeLabel:  in.AgeLabel,
		HeightCm:  in.HeightCm,
		WeightKg:  in.WeightKg,
		HeadCm:    in.HeadCm,
		Date:      day,
		Status:    StatusPending,
	}
	if err := s.patients.AddGrowth(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) SetGrowthStatus(ctx context.Context, id int64, status string) (*GrowthRecord, error) {
	if status == "" {
		return nil, httpx.BadRequestf("status is required")
	}
	return s.patients.UpdateGrowthStatus(ctx, id, status)
}

// -- Consultations --

type ConsultationInput struct {
	PatientID int64   `json:"patientId"`
	Date      string  `json:"date"`
	Complaint string  `json:"complaint"`
	Diagnosis *string `json:"diagnosis"`
	Treatment *string `json:"treatment"`
	Notes     *string `json:"notes"`
}

func (s *Service) Consultations(ctx context.Context, patientID int64) ([]*Consultation, error) {
	return s.patients.ListConsultations(ctx, patientID)
}

func (s *Service) AddConsultation(ctx context.Context, in ConsultationInput) (*Consultation, error) {
	if in.PatientID == 0 || in.Date == "" || in.Complaint == "" {
		return nil, httpx.BadRequestf("patientId, date, and complaint are required")
	}
	day, err := types.ParseDate(in.Date)
	if err != nil {
		return nil, httpx.BadRequestf("invalid date: %s", in.Date)
	}
	c := &Consultation{
		PatientID: in.PatientID,
		Date:      day,
		Complaint: in.Complaint,
		Diagnosis: in.Diagnosis,
		Treatment: in.Treatment,
		Notes:     in.Notes,
	}
	if err := s.patients.AddConsultation(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// -- Vaccinations --

type VaccinationInput struct {
	VaccineName string `json:"vaccineName"`
	DoseLabel   string `json:"doseLabel"`
	DueDate     string `json:"dueDate"`
}

func (s *Service) Vaccinations(ctx context.Context, patientID int64) ([]*VaccinationRecord, error) {
	return s.patients.ListVaccinations(ctx, patientID)
}

func (s *Service) AddVaccination(ctx context.Context, patientID int64, in VaccinationInput) (*VaccinationRecord, error) {
	if in.VaccineName == "" || in.DueDate == "" {
		return nil, httpx.BadRequestf("vaccineName and dueDate are required")
	}
	due, err := types.ParseDate(in.DueDate)
	if err != nil {
		return nil, httpx.BadRequestf("invalid dueDate: %s", in.DueDate)
	}
	v := &VaccinationRecord{
		PatientID:   patientID,
		VaccineName: in.VaccineName,
		DoseLabel:   in.DoseLabel,
		DueDate:     due,
		Status:      StatusPending,
	}
	if err := s.patients.AddVaccination(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetVaccinationStatus moves a dose out of Pending. Only Given and
// Out of Stock are accepted.
func (s *Service) SetVaccinationStatus(ctx context.Context, id int64, status string) (*VaccinationRecord, error) {
	if status != StatusGiven && status != StatusOutOfStock {
		return nil, httpx.BadRequestf("status must be %q or %q", StatusGiven, StatusOutOfStock)
	}
	return s.patients.UpdateVaccinationStatus(ctx, id, status)
}

// -- Milestones --

type MilestoneInput struct {
	Milestone string `json:"milestone"`
	AgeLabel  string `json:"ageLabel"`
}

func (s *Service) Milestones(ctx context.Context, patientID int64) ([]*Milestone, error) {
	return s.patients.ListMilestones(ctx, patientID)
}

func (s *Service) AddMilestone(ctx context.Context, patientID int64, in MilestoneInput) (*Milestone, error) {
	if in.Milestone == "" {
		return nil, httpx.BadRequestf("milestone is required")
	}
	m := &Milestone{
		PatientID: patientID,
		Milestone: in.Milestone,
		AgeLabel:  in.AgeLabel,
		Status:    StatusPending,
	}
	if err := s.patients.AddMilestone(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) SetMilestoneStatus(ctx context.Context, id int64, status string) (*Milestone, error) {
	if status != StatusAchieved && status != StatusPending {
		return nil, httpx.BadRequestf("status must be %q or %q", StatusPending, StatusAchieved)
	}
	return s.patients.UpdateMilestoneStatus(ctx, id, status)
}
