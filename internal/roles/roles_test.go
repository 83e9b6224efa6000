package roles

import (
	"reflect"
	"testing"

	"rolecall/internal/model"
)

func TestRank(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{"Toastmaster of the Day", 1},
		{"toastmaster", 1},
		{"Table Topics Master", 2},
		{"General Evaluator", 3},
		{"Prepared Speaker 1", 101},
		{"Prepared Speaker 2", 102},
		{"Prepared Speaker 12", 112},
		{"Prepared Speaker", 199},
		{"Evaluator 1", 201},
		{"Evaluator 3", 203},
		{"Evaluator", 299},
		{"Timer", 300},
		{"Ah-Counter", 301},
		{"Grammarian", 302},
		{"Jokemaster", 1000},
		{"Greeter", 1000},
	}

	for _, tt := range tests {
		if got := Rank(tt.role); got != tt.want {
			t.Errorf("Rank(%q) = %d, want %d", tt.role, got, tt.want)
		}
	}
}

func TestSortCanonicalAgendaOrder(t *testing.T) {
	slots := make([]model.Slot, 0, len(model.DefaultRoles))
	// Insert in reverse to prove the sort does the work.
	for i := len(model.DefaultRoles) - 1; i >= 0; i-- {
		slots = append(slots, model.Slot{ID: "s", RoleName: model.DefaultRoles[i]})
	}

	Sort(slots)

	got := make([]string, 0, len(slots))
	for _, s := range slots {
		got = append(got, s.RoleName)
	}
	if !reflect.DeepEqual(got, model.DefaultRoles) {
		t.Errorf("sorted order = %v, want %v", got, model.DefaultRoles)
	}
}

func TestSortIsIdempotent(t *testing.T) {
	slots := []model.Slot{
		{ID: "c", RoleName: "Grammarian"},
		{ID: "a", RoleName: "Jokemaster"},
		{ID: "b", RoleName: "Jokemaster"},
		{ID: "d", RoleName: "Prepared Speaker 2"},
		{ID: "e", RoleName: "Toastmaster of the Day"},
	}

	Sort(slots)
	first := make([]model.Slot, len(slots))
	copy(first, slots)

	Sort(slots)
	if !reflect.DeepEqual(slots, first) {
		t.Errorf("second sort changed order: %v vs %v", slots, first)
	}
}

func TestSortTieBreaksByID(t *testing.T) {
	slots := []model.Slot{
		{ID: "b", RoleName: "Jokemaster"},
		{ID: "a", RoleName: "Jokemaster"},
	}
	Sort(slots)
	if slots[0].ID != "a" || slots[1].ID != "b" {
		t.Errorf("expected id tie-break, got %v", slots)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		role string
		want model.RoleKind
	}{
		{"Prepared Speaker 1", model.RoleSpeaker},
		{"Guest Speaker Coordinator", model.RoleSpeaker},
		{"Evaluator 2", model.RoleEvaluator},
		{"General Evaluator", model.RoleStandard},
		{"Toastmaster of the Day", model.RoleStandard},
		{"Timer", model.RoleStandard},
		{"Jokemaster", model.RoleCustom},
	}

	for _, tt := range tests {
		if got := Kind(tt.role); got != tt.want {
			t.Errorf("Kind(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestSpeakerSlotPrefersStoredKind(t *testing.T) {
	// A legacy row with no kind falls back to name matching.
	legacy := &model.Slot{RoleName: "Prepared Speaker 1"}
	if !SpeakerSlot(legacy) {
		t.Error("legacy speaker slot not recognized")
	}

	// An explicit kind wins over a misleading name.
	custom := &model.Slot{RoleName: "Guest Speaker Coordinator", RoleKind: model.RoleCustom}
	if SpeakerSlot(custom) {
		t.Error("custom-kind slot wrongly treated as speaker")
	}
}
