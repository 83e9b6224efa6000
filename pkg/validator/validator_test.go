package validator

import (
	"context"
	"strings"
	"testing"
)

type meetingProbe struct {
	Type string `validate:"omitempty,meetingtype"`
}

type rsvpProbe struct {
	Status string `validate:"required,rsvpstatus"`
}

func TestMeetingType(t *testing.T) {
	for _, valid := range []string{"Regular", "Special", "Contest", ""} {
		if err := Validate(context.Background(), meetingProbe{Type: valid}); err != nil {
			t.Errorf("Validate(type=%q) = %v, want nil", valid, err)
		}
	}
	for _, invalid := range []string{"regular", "Weekly", "CONTEST"} {
		if err := Validate(context.Background(), meetingProbe{Type: invalid}); err == nil {
			t.Errorf("Validate(type=%q) = nil, want error", invalid)
		}
	}
}

func TestRSVPStatus(t *testing.T) {
	for _, valid := range []string{"yes", "maybe", "no"} {
		if err := Validate(context.Background(), rsvpProbe{Status: valid}); err != nil {
			t.Errorf("Validate(status=%q) = %v, want nil", valid, err)
		}
	}
	for _, invalid := range []string{"", "Yes", "perhaps"} {
		if err := Validate(context.Background(), rsvpProbe{Status: invalid}); err == nil {
			t.Errorf("Validate(status=%q) = nil, want error", invalid)
		}
	}
}

func TestErrorMessagesNameTheField(t *testing.T) {
	err := Validate(context.Background(), rsvpProbe{Status: "perhaps"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Status") {
		t.Errorf("error %q does not name the failing field", err)
	}
}
