package dto

import (
	"time"

	"github.com/wb-go/wbf/ginext"

	"rolecall/internal/model"
	"rolecall/internal/reconcile"
)

const (
	FieldBadFormat     = "FIELD_BADFORMAT"
	FieldIncorrect     = "FIELD_INCORRECT"
	ServiceUnavailable = "SERVICE_UNAVAILABLE"
	InternalError      = "Service is currently unavailable. Please try again later."

	MeetingNotFound  = "MEETING_NOT_FOUND"
	SlotNotFound     = "SLOT_NOT_FOUND"
	UserNotFound     = "USER_NOT_FOUND"
	SlotTaken        = "SLOT_TAKEN"
	PermissionDenied = "PERMISSION_DENIED"
	SpeechIncomplete = "SPEECH_INCOMPLETE"
)

type CreateMeetingRequest struct {
	ActorID      string `json:"actor_id" validate:"required"`
	Title        string `json:"title" validate:"required,min=3,max=255"`
	Date         string `json:"date" validate:"required"`
	Type         string `json:"type" validate:"omitempty,meetingtype"`
	Theme        string `json:"theme"`
	WordOfTheDay string `json:"word_of_the_day"`
	Venue        string `json:"venue"`
	Time         string `json:"time"`
}

type UpdateMeetingRequest struct {
	ActorID      string `json:"actor_id" validate:"required"`
	Title        string `json:"title" validate:"omitempty,min=3,max=255"`
	Date         string `json:"date"`
	Theme        string `json:"theme"`
	WordOfTheDay string `json:"word_of_the_day"`
	Venue        string `json:"venue"`
	Time         string `json:"time"`
}

type SpeechDetailsRequest struct {
	Pathway string `json:"pathway" validate:"required"`
	Level   string `json:"level" validate:"required"`
	Project string `json:"project" validate:"required"`
	Title   string `json:"title" validate:"required,min=1,max=255"`
}

type BookSlotRequest struct {
	UserID        string                `json:"user_id" validate:"required"`
	SpeechDetails *SpeechDetailsRequest `json:"speech_details,omitempty"`
}

type ReleaseSlotRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type AssignSlotRequest struct {
	ActorID       string                `json:"actor_id" validate:"required"`
	UserID        *string               `json:"user_id"`
	SpeechDetails *SpeechDetailsRequest `json:"speech_details,omitempty"`
}

type AddSlotRequest struct {
	ActorID  string `json:"actor_id" validate:"required"`
	RoleName string `json:"role_name" validate:"required,min=2,max=100"`
}

type AddPairRequest struct {
	ActorID string `json:"actor_id" validate:"required"`
}

type RSVPRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Status string `json:"status" validate:"required,rsvpstatus"`
}

type SlotResponse struct {
	ID            string               `json:"id"`
	RoleName      string               `json:"role_name"`
	RoleKind      model.RoleKind       `json:"role_kind"`
	UserID        *string              `json:"user_id"`
	IsLocked      bool                 `json:"is_locked"`
	SpeechDetails *model.SpeechDetails `json:"speech_details,omitempty"`
}

type RSVPResponse struct {
	UserID  string           `json:"user_id"`
	Name    string           `json:"name"`
	Status  model.RSVPStatus `json:"status"`
	IsGuest bool             `json:"is_guest"`
}

type MeetingResponse struct {
	ID           string            `json:"id"`
	Date         string            `json:"date"`
	Title        string            `json:"title"`
	Type         model.MeetingType `json:"type"`
	Theme        string            `json:"theme,omitempty"`
	WordOfTheDay string            `json:"word_of_the_day,omitempty"`
	Venue        string            `json:"venue,omitempty"`
	Time         string            `json:"time,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Slots        []SlotResponse    `json:"slots"`
	RSVPs        []RSVPResponse    `json:"rsvps"`
	Counts       reconcile.Counts  `json:"counts"`
}

type CatalogResponse struct {
	Pathways []string `json:"pathways,omitempty"`
	Levels   []string `json:"levels,omitempty"`
	Projects []string `json:"projects,omitempty"`
}

// SlotEventMessage is the payload published for the notification worker.
type SlotEventMessage struct {
	Kind      string    `json:"kind"`
	MeetingID string    `json:"meeting_id"`
	SlotID    string    `json:"slot_id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	RoleName  string    `json:"role_name,omitempty"`
	Title     string    `json:"meeting_title,omitempty"`
	Date      string    `json:"meeting_date,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

type Response struct {
	Status string `json:"status"`
	Error  *Error `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

type Error struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
}

func BadResponseError(c *ginext.Context, code, desc string) {
	c.JSON(400, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func NotFoundError(c *ginext.Context, code, desc string) {
	c.JSON(404, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func ConflictError(c *ginext.Context, code, desc string) {
	c.JSON(409, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func ForbiddenError(c *ginext.Context, desc string) {
	c.JSON(403, Response{
		Status: "error",
		Error: &Error{
			Code: PermissionDenied,
			Desc: desc,
		},
	})
}

func InternalServerError(c *ginext.Context) {
	c.JSON(500, Response{
		Status: "error",
		Error: &Error{
			Code: ServiceUnavailable,
			Desc: InternalError,
		},
	})
}

func MeetingNotFoundError(c *ginext.Context) {
	NotFoundError(c, MeetingNotFound, "Meeting not found")
}

func SlotNotFoundError(c *ginext.Context) {
	NotFoundError(c, SlotNotFound, "Slot not found")
}

func UserNotFoundError(c *ginext.Context) {
	NotFoundError(c, UserNotFound, "User not found")
}

func SlotTakenError(c *ginext.Context) {
	ConflictError(c, SlotTaken, "Slot is no longer open")
}

func SuccessResponse(c *ginext.Context, data any) {
	c.JSON(200, Response{
		Status: "ok",
		Data:   data,
	})
}

func SuccessCreatedResponse(c *ginext.Context, data any) {
	c.JSON(201, Response{
		Status: "ok",
		Data:   data,
	})
}
