package referral

import (
	"context"

	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
)

type Service struct {
	referrals Repository
}

func NewService(referrals Repository) *Service {
	return &Service{referrals: referrals}
}

// Input is the referral form.
type Input struct {
	PatientID int64  `json:"patientId"`
	Provider  string `json:"provider"`
	Reason    string `json:"reason"`
	Direction string `json:"direction"`
}

func (s *Service) Create(ctx context.Context, in Input) (*Referral, error) {
	if in.PatientID == 0 || in.Provider == "" || in.Reason == "" {
		return nil, httpx.BadRequestf("Missing required fields.")
	}
	ref := &Referral{
		PatientID: in.PatientID,
		Provider:  in.Provider,
		Reason:    in.Reason,
		Direction: in.Direction,
		Status:    StatusSent,
	}
	if ref.Direction == "" {
		ref.Direction = DirectionOutbound
	}
	if err := s.referrals.Create(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *Service) List(ctx context.Context) ([]*Referral, error) {
	return s.referrals.List(ctx)
}
