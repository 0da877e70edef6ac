package referral

import (
	"context"
	"testing"
	"time"
)

type mockRepo struct {
	nextID    int64
	referrals []*Referral
}

func (m *mockRepo) Create(_ context.Context, r *Referral) error {
	m.nextID++
	r.ID = m.nextID
	r.ReferralDate = time.Now()
	m.referrals = append(m.referrals, r)
	return nil
}

func (m *mockRepo) List(_ context.Context) ([]*Referral, error) {
	return m.referrals, nil
}

func TestCreate_Defaults(t *testing.T) {
	svc := NewService(&mockRepo{})
	ref, err := svc.Create(context.Background(), Input{PatientID: 1, Provider: "City Cardiology", Reason: "Murmur workup"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Direction != DirectionOutbound {
		t.Errorf("expected Outbound, got %q", ref.Direction)
	}
	if ref.Status != StatusSent {
		t.Errorf("expected Sent, got %q", ref.Status)
	}
	if ref.ReferralDate.IsZero() {
		t.Error("expected referral date stamped")
	}
}

func TestCreate_Required(t *testing.T) {
	svc := NewService(&mockRepo{})
	cases := []Input{
		{Provider: "City Cardiology", Reason: "x"},
		{PatientID: 1, Reason: "x"},
		{PatientID: 1, Provider: "City Cardiology"},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestCreate_KeepsExplicitDirection(t *testing.T) {
	svc := NewService(&mockRepo{})
	ref, err := svc.Create(context.Background(), Input{PatientID: 1, Provider: "GP", Reason: "Follow-up", Direction: "Inbound"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Direction != "Inbound" {
		t.Errorf("expected Inbound preserved, got %q", ref.Direction)
	}
}
