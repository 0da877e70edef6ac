package roster

import (
	"time"

	"github.com/hospitalportal/hospitalportal/pkg/types"
)

// OffLabel is the exclusive shift label: assigning it to a day replaces every
// other label for that day, and assigning any label to an OFF day replaces
// the OFF.
const OffLabel = "OFF"

// ShiftMap maps a calendar day ("YYYY-MM-DD") to the ordered list of shift
// labels assigned for that day. A missing or empty list means no assignment.
type ShiftMap map[string][]string

// AssignLabel adds a label to a day. Re-adding a label already present is a
// no-op. OffLabel is exclusive in both directions.
func (m ShiftMap) AssignLabel(day, label string) {
	if label == OffLabel {
		m[day] = []string{OffLabel}
		return
	}

	current := m[day]
	if len(current) == 1 && current[0] == OffLabel {
		m[day] = []string{label}
		return
	}
	for _, l := range current {
		if l == label {
			return
		}
	}
	m[day] = append(current, label)
}

// RemoveLabel filters a label out of a day's list. Removing a label that is
// not present leaves the list unchanged.
func (m ShiftMap) RemoveLabel(day, label string) {
	current, ok := m[day]
	if !ok {
		return
	}
	filtered := make([]string, 0, len(current))
	for _, l := range current {
		if l != label {
			filtered = append(filtered, l)
		}
	}
	m[day] = filtered
}

// Labels returns the assignment list for a day, never nil.
func (m ShiftMap) Labels(day string) []string {
	if labels, ok := m[day]; ok {
		return labels
	}
	return []string{}
}

// Entry is one persisted roster row: the full shift map for one staff member
// over one week. At most one row exists per (staffID, weekStart) pair; the
// database enforces this with a unique constraint.
type Entry struct {
	ID        int64      `db:"id" json:"id"`
	StaffID   int64      `db:"staff_id" json:"staffId"`
	WeekStart types.Date `db:"week_start" json:"weekStart"`
	Shifts    ShiftMap   `db:"shifts" json:"shifts"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}

// StaffEntry is a roster row joined with the owning staff member, used by
// the list and today views.
type StaffEntry struct {
	Entry
	StaffName  string  `db:"staff_name" json:"staffName"`
	Role       string  `db:"role" json:"role"`
	Department *string `db:"department" json:"department,omitempty"`
}

// AlignWeekStart returns the Monday of the week containing d.
func AlignWeekStart(d types.Date) types.Date {
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7 // Sunday belongs to the week that started six days earlier
	}
	return types.DateOf(d.AddDate(0, 0, -(wd - 1)))
}
