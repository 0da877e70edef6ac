package appointment

import (
	"context"
	"time"

	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
	"github.com/hospitalportal/hospitalportal/pkg/types"
)

type Service struct {
	appointments Repository
	now          func() time.Time
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments, now: time.Now}
}

// Input is the booking form.
type Input struct {
	PatientID int64  `json:"patientId"`
	DoctorID  int64  `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Reason    string `json:"reason"`
}

// Create books an appointment and returns it with names resolved.
func (s *Service) Create(ctx context.Context, in Input) (*Appointment, error) {
	if in.PatientID == 0 || in.DoctorID == 0 || in.Date == "" || in.Time == "" {
		return nil, httpx.BadRequestf("Missing required fields")
	}
	day, err := types.ParseDate(in.Date)
	if err != nil {
		return nil, httpx.BadRequestf("invalid date: %s", in.Date)
	}

	a := &Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      day,
		Time:      in.Time,
		Type:      in.Type,
		Reason:    in.Reason,
		Status:    StatusScheduled,
	}
	if a.Type == "" {
		a.Type = DefaultType
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.appointments.GetByID(ctx, a.ID)
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *Service) Today(ctx context.Context) ([]*Appointment, error) {
	return s.appointments.ListOn(ctx, types.DateOf(s.now()))
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}
