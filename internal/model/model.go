package model

import "time"

type MeetingType string

const (
	MeetingRegular MeetingType = "Regular"
	MeetingSpecial MeetingType = "Special"
	MeetingContest MeetingType = "Contest"
)

type RoleKind string

const (
	RoleStandard  RoleKind = "standard"
	RoleSpeaker   RoleKind = "speaker"
	RoleEvaluator RoleKind = "evaluator"
	RoleCustom    RoleKind = "custom"
)

type RSVPStatus string

const (
	RSVPYes   RSVPStatus = "yes"
	RSVPMaybe RSVPStatus = "maybe"
	RSVPNo    RSVPStatus = "no"
)

// DefaultRoles is the template applied to newly created Regular meetings.
var DefaultRoles = []string{
	"Toastmaster of the Day",
	"Table Topics Master",
	"General Evaluator",
	"Prepared Speaker 1",
	"Prepared Speaker 2",
	"Evaluator 1",
	"Evaluator 2",
	"Timer",
	"Ah-Counter",
	"Grammarian",
}

type Meeting struct {
	ID           string      `db:"id" json:"id"`
	Date         string      `db:"date" json:"date"`
	Title        string      `db:"title" json:"title"`
	Type         MeetingType `db:"type" json:"type"`
	Theme        string      `db:"theme,omitempty" json:"theme,omitempty"`
	WordOfTheDay string      `db:"word_of_the_day,omitempty" json:"word_of_the_day,omitempty"`
	Venue        string      `db:"venue,omitempty" json:"venue,omitempty"`
	Time         string      `db:"time,omitempty" json:"time,omitempty"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}

type SpeechDetails struct {
	Pathway string `json:"pathway"`
	Level   string `json:"level"`
	Project string `json:"project"`
	Title   string `json:"title"`
}

type Slot struct {
	ID            string         `db:"id" json:"id"`
	MeetingID     string         `db:"meeting_id" json:"meeting_id"`
	RoleName      string         `db:"role_name" json:"role_name"`
	RoleKind      RoleKind       `db:"role_kind" json:"role_kind"`
	UserID        *string        `db:"user_id" json:"user_id"`
	IsLocked      bool           `db:"is_locked" json:"is_locked"`
	SpeechDetails *SpeechDetails `db:"speech_details" json:"speech_details,omitempty"`
}

// Open reports whether the slot has no owner.
func (s *Slot) Open() bool {
	return s.UserID == nil
}

type RSVP struct {
	MeetingID string     `db:"meeting_id" json:"meeting_id"`
	UserID    string     `db:"user_id" json:"user_id"`
	Name      string     `db:"name" json:"name"`
	Status    RSVPStatus `db:"status" json:"status"`
	IsGuest   bool       `db:"is_guest" json:"is_guest"`
}

type User struct {
	ID       string `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email,omitempty" json:"email,omitempty"`
	Name     string `db:"name" json:"name"`
	Avatar   string `db:"avatar,omitempty" json:"avatar,omitempty"`
	IsAdmin  bool   `db:"is_admin" json:"is_admin"`
	IsGuest  bool   `db:"is_guest" json:"is_guest"`
}

type NotificationLog struct {
	ID       int64     `db:"id" json:"id"`
	EntityID string    `db:"entity_id" json:"entity_id"`
	Kind     string    `db:"kind" json:"kind"`
	SentAt   time.Time `db:"sent_at" json:"sent_at"`
}
