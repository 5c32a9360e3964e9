package ticket

import (
	"strings"
	"testing"
	"time"

	vo "tickethub/internal/domain/ticket/valueobjects"
)

func TestNewTicket_Valid(t *testing.T) {
	tk, err := NewTicket("Printer jams constantly", "Every print job jams on the second page.", vo.PriorityMedium, 3)
	if err != nil {
		t.Fatalf("NewTicket() error = %v, want nil", err)
	}
	if tk.ID() != 0 {
		t.Errorf("ID() = %d, want 0 before persistence", tk.ID())
	}
	if !tk.Status().IsOpen() {
		t.Errorf("Status() = %v, want OPEN", tk.Status())
	}
	if tk.CreatorID() != 3 {
		t.Errorf("CreatorID() = %d, want 3", tk.CreatorID())
	}
	if tk.AssigneeID() != nil {
		t.Errorf("AssigneeID() = %v, want nil", tk.AssigneeID())
	}
	if tk.CreatedAt().IsZero() {
		t.Error("CreatedAt() is zero, want set")
	}
}

func TestNewTicket_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		priority    vo.Priority
		creatorID   uint
	}{
		{"title too short", "Hey", "A perfectly valid description.", vo.PriorityLow, 1},
		{"title too long", strings.Repeat("x", 256), "A perfectly valid description.", vo.PriorityLow, 1},
		{"description too short", "A valid title", "short", vo.PriorityLow, 1},
		{"invalid priority", "A valid title", "A perfectly valid description.", vo.Priority("URGENT"), 1},
		{"zero creator", "A valid title", "A perfectly valid description.", vo.PriorityLow, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.title, tt.description, tt.priority, tt.creatorID)
			if err == nil {
				t.Error("NewTicket() error = nil, want error")
			}
		})
	}
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket("A valid title", "A perfectly valid description.", vo.PriorityLow, 1)
	if err != nil {
		t.Fatalf("NewTicket() error = %v", err)
	}

	if err := tk.SetID(0); err == nil {
		t.Error("SetID(0) error = nil, want error")
	}
	if err := tk.SetID(7); err != nil {
		t.Fatalf("SetID(7) error = %v, want nil", err)
	}
	if tk.ID() != 7 {
		t.Errorf("ID() = %d, want 7", tk.ID())
	}
	if err := tk.SetID(8); err == nil {
		t.Error("SetID(8) on persisted ticket error = nil, want error")
	}
}

func TestTicket_AssignTo(t *testing.T) {
	tk, err := NewTicket("A valid title", "A perfectly valid description.", vo.PriorityLow, 1)
	if err != nil {
		t.Fatalf("NewTicket() error = %v", err)
	}

	if err := tk.AssignTo(0); err == nil {
		t.Error("AssignTo(0) error = nil, want error")
	}
	if err := tk.AssignTo(5); err != nil {
		t.Fatalf("AssignTo(5) error = %v, want nil", err)
	}
	if tk.AssigneeID() == nil || *tk.AssigneeID() != 5 {
		t.Errorf("AssigneeID() = %v, want 5", tk.AssigneeID())
	}

	// Reassignment replaces the previous assignee.
	if err := tk.AssignTo(9); err != nil {
		t.Fatalf("AssignTo(9) error = %v, want nil", err)
	}
	if *tk.AssigneeID() != 9 {
		t.Errorf("AssigneeID() = %d, want 9", *tk.AssigneeID())
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk, err := NewTicket("A valid title", "A perfectly valid description.", vo.PriorityLow, 1)
	if err != nil {
		t.Fatalf("NewTicket() error = %v", err)
	}

	steps := []vo.Status{vo.StatusInProgress, vo.StatusResolved, vo.StatusClosed}
	for _, next := range steps {
		if err := tk.ChangeStatus(next); err != nil {
			t.Fatalf("ChangeStatus(%s) error = %v, want nil", next, err)
		}
		if tk.Status() != next {
			t.Fatalf("Status() = %v, want %v", tk.Status(), next)
		}
	}

	if err := tk.ChangeStatus(vo.StatusOpen); err == nil {
		t.Error("ChangeStatus from CLOSED error = nil, want error")
	}
	if err := tk.ChangeStatus(vo.Status("BOGUS")); err == nil {
		t.Error("ChangeStatus with invalid status error = nil, want error")
	}
}

func TestReconstructTicket(t *testing.T) {
	assignee := uint(4)
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tk, err := ReconstructTicket(2, "Stored title", "Stored description text.", vo.StatusInProgress, vo.PriorityHigh, 1, &assignee, created)
	if err != nil {
		t.Fatalf("ReconstructTicket() error = %v, want nil", err)
	}
	if tk.ID() != 2 || tk.Status() != vo.StatusInProgress || *tk.AssigneeID() != 4 {
		t.Errorf("ReconstructTicket() returned unexpected state: id=%d status=%v", tk.ID(), tk.Status())
	}
	if !tk.CreatedAt().Equal(created) {
		t.Errorf("CreatedAt() = %v, want %v", tk.CreatedAt(), created)
	}

	if _, err := ReconstructTicket(0, "Stored title", "Stored description text.", vo.StatusOpen, vo.PriorityLow, 1, nil, created); err == nil {
		t.Error("ReconstructTicket with zero ID error = nil, want error")
	}
	if _, err := ReconstructTicket(2, "Stored title", "Stored description text.", vo.Status("BOGUS"), vo.PriorityLow, 1, nil, created); err == nil {
		t.Error("ReconstructTicket with invalid status error = nil, want error")
	}
}
