package roster

import (
	"testing"

	"github.com/hospitalportal/hospitalportal/pkg/types"
)

func TestAssignLabel(t *testing.T) {
	m := ShiftMap{}
	m.AssignLabel("2025-01-06", "DAY (9A-5P)")
	m.AssignLabel("2025-01-06", "On-Call")
	got := m.Labels("2025-01-06")
	if len(got) != 2 || got[0] != "DAY (9A-5P)" || got[1] != "On-Call" {
		t.Errorf("unexpected labels: %v", got)
	}
}

func TestAssignLabel_DuplicateIsNoOp(t *testing.T) {
	m := ShiftMap{}
	m.AssignLabel("2025-01-06", "On-Call")
	m.AssignLabel("2025-01-06", "On-Call")
	if got := m.Labels("2025-01-06"); len(got) != 1 {
		t.Errorf("expected one label, got %v", got)
	}
}

func TestAssignLabel_OffReplacesEverything(t *testing.T) {
	m := ShiftMap{}
	m.AssignLabel("2025-01-06", "DAY (9A-5P)")
	m.AssignLabel("2025-01-06", "On-Call")
	m.AssignLabel("2025-01-06", OffLabel)
	got := m.Labels("2025-01-06")
	if len(got) != 1 || got[0] != OffLabel {
		t.Errorf("expected [OFF], got %v", got)
	}
}

func TestAssignLabel_ShiftReplacesOff(t *testing.T) {
	m := ShiftMap{}
	m.AssignLabel("2025-01-06", OffLabel)
	m.AssignLabel("2025-01-06", "NIGHT (11P-7A)")
	got := m.Labels("2025-01-06")
	if len(got) != 1 || got[0] != "NIGHT (11P-7A)" {
		t.Errorf("expected [NIGHT (11P-7A)], got %v", got)
	}
}

func TestRemoveLabel(t *testing.T) {
	m := ShiftMap{}
	m.AssignLabel("2025-01-06", "DAY (9A-5P)")
	m.AssignLabel("2025-01-06", "On-Call")
	m.RemoveLabel("2025-01-06", "DAY (9A-5P)")
	got := m.Labels("2025-01-06")
	if len(got) != 1 || got[0] != "On-Call" {
		t.Errorf("unexpected labels after remove: %v", got)
	}
}

func TestRemoveLabel_AbsentIsNoOp(t *testing.T) {
	m := ShiftMap{}
	m.RemoveLabel("2025-01-06", "On-Call")
	if len(m) != 0 {
		t.Errorf("remove on absent day should not create the day: %v", m)
	}

	m.AssignLabel("2025-01-06", "On-Call")
	m.RemoveLabel("2025-01-06", "DAY (9A-5P)")
	if got := m.Labels("2025-01-06"); len(got) != 1 {
		t.Errorf("remove of absent label changed the list: %v", got)
	}
}

func TestLabels_NeverNil(t *testing.T) {
	m := ShiftMap{}
	if got := m.Labels("2025-01-06"); got == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestAlignWeekStart(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2025-01-06", "2025-01-06"}, // Monday stays
		{"2025-01-08", "2025-01-06"}, // Wednesday
		{"2025-01-11", "2025-01-06"}, // Saturday
		{"2025-01-12", "2025-01-06"}, // Sunday belongs to the prior Monday
		{"2025-01-13", "2025-01-13"}, // next Monday
	}
	for _, tc := range cases {
		d, err := types.ParseDate(tc.in)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.in, err)
		}
		if got := AlignWeekStart(d).String(); got != tc.want {
			t.Errorf("AlignWeekStart(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
