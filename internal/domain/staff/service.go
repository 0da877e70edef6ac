package staff

import (
	"context"

	"github.com/hospitalportal/hospitalportal/internal/platform/auth"
	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
	"github.com/hospitalportal/hospitalportal/pkg/types"
)

// Input is the mutable part of a staff member as submitted by the admin
// forms. Password is plain text on the wire and never stored as-is.
type Input struct {
	FullName     string  `json:"fullName"`
	Role         string  `json:"role"`
	Department   *string `json:"department"`
	Contact      *string `json:"contact"`
	Email        *string `json:"email"`
	Password     string  `json:"password"`
	SecurityRole string  `json:"securityRole"`
	Status       string  `json:"status"`
}

type Service struct {
	members    Repository
	bcryptCost int
}

func NewService(members Repository, bcryptCost int) *Service {
	return &Service{members: members, bcryptCost: bcryptCost}
}

func (s *Service) hash(password string) (*string, error) {
	if password == "" {
		return nil, nil
	}
	h, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create adds a staff member. Only fullName and role are mandatory; the
// security role defaults to User and the status to Active.
func (s *Service) Create(ctx context.Context, in Input) (*Member, error) {
	if in.FullName == "" || in.Role == "" {
		return nil, httpx.BadRequestf("Full name and role are required.")
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}
	m := &Member{
		FullName:     in.FullName,
		Role:         in.Role,
		Department:   in.Department,
		Contact:      in.Contact,
		Email:        in.Email,
		PasswordHash: hash,
		SecurityRole: in.SecurityRole,
		Status:       in.Status,
	}
	if m.SecurityRole == "" {
		m.SecurityRole = DefaultSecurityRole
	}
	if m.Status == "" {
		m.Status = StatusActive
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Member, error) {
	return s.members.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Member, error) {
	return s.members.List(ctx)
}

// Update overwrites the member's fields with the submitted values. The
// stored password hash is kept unless a new password is supplied.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Member, error) {
	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}
	m := &Member{
		ID:           id,
		FullName:     in.FullName,
		Role:         in.Role,
		Department:   in.Department,
		Contact:      in.Contact,
		Email:        in.Email,
		PasswordHash: hash,
		Status:       in.Status,
	}
	if err := s.members.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Deactivate is the delete operation: members are retired by flipping the
// status to Inactive, keeping roster and appointment history referencable.
func (s *Service) Deactivate(ctx context.Context, id int64) (*Member, error) {
	return s.members.Deactivate(ctx, id)
}

func (s *Service) Doctors(ctx context.Context) ([]*Doctor, error) {
	return s.members.ListDoctors(ctx)
}

func (s *Service) Notes(ctx context.Context, staffID int64) ([]*Note, error) {
	return s.members.ListNotes(ctx, staffID)
}

func (s *Service) AddNote(ctx context.Context, staffID int64, note, date string) (*Note, error) {
	if note == "" || date == "" {
		return nil, httpx.BadRequestf("Note and date are required.")
	}
	day, err := types.ParseDate(date)
	if err != nil {
		return nil, httpx.BadRequestf("invalid date: %s", date)
	}
	n := &Note{StaffID: staffID, Note: note, Date: day}
	if err := s.members.AddNote(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
