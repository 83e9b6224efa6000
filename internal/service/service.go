package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"

	"rolecall/internal/curriculum"
	"rolecall/internal/dto"
	"rolecall/internal/model"
	"rolecall/internal/reconcile"
	"rolecall/internal/repo"
	"rolecall/internal/roles"
	"rolecall/pkg/validator"
)

const (
	EventMeetingCreated  = "meeting_created"
	EventMeetingReminder = "meeting_reminder"
	EventSlotBooked      = "slot_booked"
	EventSlotReleased    = "slot_released"

	reminderLead = 24 * time.Hour
)

// EventPublisher is the slice of the rabbit client the service needs.
type EventPublisher interface {
	Publish(message []byte, delay time.Duration) error
}

type Service interface {
	CreateMeeting(ctx *ginext.Context)
	GetMeeting(ctx *ginext.Context)
	GetAllMeetings(ctx *ginext.Context)
	UpdateMeeting(ctx *ginext.Context)
	DeleteMeeting(ctx *ginext.Context)

	BookSlot(ctx *ginext.Context)
	ReleaseSlot(ctx *ginext.Context)
	AssignSlot(ctx *ginext.Context)
	AddSlot(ctx *ginext.Context)
	AddSpeakerEvaluatorPair(ctx *ginext.Context)
	DeleteSlot(ctx *ginext.Context)

	RSVP(ctx *ginext.Context)

	Pathways(ctx *ginext.Context)
	Levels(ctx *ginext.Context)
	Projects(ctx *ginext.Context)
}

type service struct {
	repo repo.Repository
	log  *zerolog.Logger
	rbt  EventPublisher
}

func NewService(repo repo.Repository, logger *zerolog.Logger, rbt EventPublisher) Service {
	return &service{
		repo: repo,
		log:  logger,
		rbt:  rbt,
	}
}

func (s *service) CreateMeeting(ctx *ginext.Context) {
	var req dto.CreateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse create meeting request")
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		s.log.Error().Msgf("validation failed: %v", verr)
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	if _, ok := s.requireAdmin(ctx, req.ActorID); !ok {
		return
	}

	mType := model.MeetingType(req.Type)
	if req.Type == "" {
		mType = model.MeetingRegular
	}

	meeting := &model.Meeting{
		ID:           uuid.NewString(),
		Date:         req.Date,
		Title:        req.Title,
		Type:         mType,
		Theme:        req.Theme,
		WordOfTheDay: req.WordOfTheDay,
		Venue:        req.Venue,
		Time:         req.Time,
	}

	// Only Regular meetings get the default role template.
	var slots []model.Slot
	if mType == model.MeetingRegular {
		for _, role := range model.DefaultRoles {
			slots = append(slots, model.Slot{
				ID:        uuid.NewString(),
				MeetingID: meeting.ID,
				RoleName:  role,
				RoleKind:  roles.Kind(role),
			})
		}
	}

	if err := s.repo.CreateMeetingTx(ctx.Request.Context(), meeting, slots); err != nil {
		s.log.Error().Err(err).Msg("failed to create meeting in DB")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Str("meeting_id", meeting.ID).Msg("meeting created successfully")

	s.publishEvent(dto.SlotEventMessage{
		Kind:      EventMeetingCreated,
		MeetingID: meeting.ID,
		Title:     meeting.Title,
		Date:      meeting.Date,
		SentAt:    time.Now(),
	}, 0)
	s.scheduleReminder(meeting)

	resp, err := s.buildMeetingResponse(ctx, meeting)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to assemble created meeting")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessCreatedResponse(ctx, resp)
}

// scheduleReminder publishes a delayed reminder event a day before the
// meeting. Dates in the past or with an unexpected format are skipped.
func (s *service) scheduleReminder(m *model.Meeting) {
	date, err := time.Parse("2006-01-02", m.Date)
	if err != nil {
		s.log.Warn().Str("date", m.Date).Msg("unparseable meeting date, reminder skipped")
		return
	}
	delay := time.Until(date.Add(-reminderLead))
	if delay <= 0 {
		return
	}
	s.publishEvent(dto.SlotEventMessage{
		Kind:      EventMeetingReminder,
		MeetingID: m.ID,
		Title:     m.Title,
		Date:      m.Date,
		SentAt:    time.Now(),
	}, delay)
}

// publishEvent is best-effort: notification delivery must never fail the
// operation it follows.
func (s *service) publishEvent(msg dto.SlotEventMessage, delay time.Duration) {
	if s.rbt == nil {
		return
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal event message")
		return
	}
	if err := s.rbt.Publish(payload, delay); err != nil {
		s.log.Error().Err(err).Str("kind", msg.Kind).Msg("failed to publish event to RabbitMQ")
	}
}

func (s *service) GetMeeting(ctx *ginext.Context) {
	meeting, err := s.repo.GetMeetingByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		dto.MeetingNotFoundError(ctx)
		return
	}

	resp, err := s.buildMeetingResponse(ctx, meeting)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to assemble meeting")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessResponse(ctx, resp)
}

func (s *service) GetAllMeetings(ctx *ginext.Context) {
	meetings, err := s.repo.GetAllMeetings(ctx.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get meetings")
		dto.InternalServerError(ctx)
		return
	}

	resp := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		item, err := s.buildMeetingResponse(ctx, &meetings[i])
		if err != nil {
			s.log.Error().Err(err).Str("meeting_id", meetings[i].ID).Msg("failed to assemble meeting")
			continue
		}
		resp = append(resp, item)
	}

	dto.SuccessResponse(ctx, resp)
}

// buildMeetingResponse loads slots and rsvps, sorts slots into canonical
// agenda order and reconciles the attendance list with slot ownership.
func (s *service) buildMeetingResponse(ctx *ginext.Context, m *model.Meeting) (dto.MeetingResponse, error) {
	rctx := ctx.Request.Context()

	slots, err := s.repo.GetSlotsByMeetingID(rctx, m.ID)
	if err != nil {
		return dto.MeetingResponse{}, err
	}
	roles.Sort(slots)

	rsvps, err := s.repo.GetRSVPsByMeetingID(rctx, m.ID)
	if err != nil {
		return dto.MeetingResponse{}, err
	}

	merged, counts := reconcile.Project(rsvps, slots, func(userID string) (string, bool, bool) {
		u, err := s.repo.GetUserByID(rctx, userID)
		if err != nil {
			return "", false, false
		}
		return u.Name, u.IsGuest, true
	})

	resp := dto.MeetingResponse{
		ID:           m.ID,
		Date:         m.Date,
		Title:        m.Title,
		Type:         m.Type,
		Theme:        m.Theme,
		WordOfTheDay: m.WordOfTheDay,
		Venue:        m.Venue,
		Time:         m.Time,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Slots:        make([]dto.SlotResponse, 0, len(slots)),
		RSVPs:        make([]dto.RSVPResponse, 0, len(merged)),
		Counts:       counts,
	}
	for _, sl := range slots {
		resp.Slots = append(resp.Slots, dto.SlotResponse{
			ID:            sl.ID,
			RoleName:      sl.RoleName,
			RoleKind:      sl.RoleKind,
			UserID:        sl.UserID,
			IsLocked:      sl.IsLocked,
			SpeechDetails: sl.SpeechDetails,
		})
	}
	for _, r := range merged {
		resp.RSVPs = append(resp.RSVPs, dto.RSVPResponse{
			UserID:  r.UserID,
			Name:    r.Name,
			Status:  r.Status,
			IsGuest: r.IsGuest,
		})
	}
	return resp, nil
}

func (s *service) UpdateMeeting(ctx *ginext.Context) {
	var req dto.UpdateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	if _, ok := s.requireAdmin(ctx, req.ActorID); !ok {
		return
	}

	patch := repo.MeetingPatch{
		Title:        req.Title,
		Date:         req.Date,
		Theme:        req.Theme,
		WordOfTheDay: req.WordOfTheDay,
		Venue:        req.Venue,
		Time:         req.Time,
	}
	if err := s.repo.UpdateMeeting(ctx.Request.Context(), ctx.Param("id"), patch); err != nil {
		dto.MeetingNotFoundError(ctx)
		return
	}

	dto.SuccessResponse(ctx, nil)
}

func (s *service) DeleteMeeting(ctx *ginext.Context) {
	actor, ok := s.requireAdmin(ctx, ctx.Query("actor"))
	if !ok {
		return
	}

	id := ctx.Param("id")
	if err := s.repo.DeleteMeeting(ctx.Request.Context(), id); err != nil {
		dto.MeetingNotFoundError(ctx)
		return
	}

	s.log.Info().Str("meeting_id", id).Str("actor", actor.ID).Msg("meeting deleted")
	dto.SuccessResponse(ctx, nil)
}

func (s *service) BookSlot(ctx *ginext.Context) {
	var req dto.BookSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	meetingID := ctx.Param("id")
	slot, err := s.repo.GetSlotByID(ctx.Request.Context(), ctx.Param("slotId"))
	if err != nil || slot.MeetingID != meetingID {
		dto.SlotNotFoundError(ctx)
		return
	}

	user, err := s.repo.GetUserByID(ctx.Request.Context(), req.UserID)
	if err != nil {
		dto.UserNotFoundError(ctx)
		return
	}
	if user.IsGuest {
		dto.ForbiddenError(ctx, "Guests cannot book roles")
		return
	}

	details, ok := s.speechDetailsFor(ctx, slot, req.SpeechDetails)
	if !ok {
		return
	}

	if err := s.repo.BookSlotTx(ctx.Request.Context(), meetingID, slot.ID, user, details); err != nil {
		switch err {
		case repo.ErrSlotTaken:
			dto.SlotTakenError(ctx)
		case repo.ErrSlotNotFound:
			dto.SlotNotFoundError(ctx)
		default:
			s.log.Error().Err(err).Msg("failed to book slot")
			dto.InternalServerError(ctx)
		}
		return
	}

	s.log.Info().
		Str("slot_id", slot.ID).
		Str("user_id", user.ID).
		Str("role", slot.RoleName).
		Msg("slot booked successfully")

	s.publishEvent(dto.SlotEventMessage{
		Kind:      EventSlotBooked,
		MeetingID: meetingID,
		SlotID:    slot.ID,
		UserID:    user.ID,
		RoleName:  slot.RoleName,
		SentAt:    time.Now(),
	}, 0)

	dto.SuccessResponse(ctx, dto.SlotResponse{
		ID:            slot.ID,
		RoleName:      slot.RoleName,
		RoleKind:      slot.RoleKind,
		UserID:        &user.ID,
		IsLocked:      slot.IsLocked,
		SpeechDetails: details,
	})
}

// speechDetailsFor enforces the speaker gate: speaker-kind slots require a
// complete pathway/level/project/title, any other role ignores details.
func (s *service) speechDetailsFor(ctx *ginext.Context, slot *model.Slot, req *dto.SpeechDetailsRequest) (*model.SpeechDetails, bool) {
	if !roles.SpeakerSlot(slot) {
		return nil, true
	}
	if req == nil {
		dto.BadResponseError(ctx, dto.SpeechIncomplete, "Speech details are required for speaker roles")
		return nil, false
	}
	if verr := validator.Validate(ctx, *req); verr != nil {
		dto.BadResponseError(ctx, dto.SpeechIncomplete, fmt.Sprintf("%v", verr))
		return nil, false
	}
	if !curriculum.Valid(req.Pathway, req.Level, req.Project) {
		// Not rejected: the catalog is advisory, the selection just came
		// from outside it.
		s.log.Warn().
			Str("pathway", req.Pathway).
			Str("level", req.Level).
			Str("project", req.Project).
			Msg("speech project not in curriculum catalog")
	}
	return &model.SpeechDetails{
		Pathway: req.Pathway,
		Level:   req.Level,
		Project: req.Project,
		Title:   req.Title,
	}, true
}

func (s *service) ReleaseSlot(ctx *ginext.Context) {
	var req dto.ReleaseSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	meetingID := ctx.Param("id")
	slot, err := s.repo.GetSlotByID(ctx.Request.Context(), ctx.Param("slotId"))
	if err != nil || slot.MeetingID != meetingID {
		dto.SlotNotFoundError(ctx)
		return
	}

	user, err := s.repo.GetUserByID(ctx.Request.Context(), req.UserID)
	if err != nil {
		dto.UserNotFoundError(ctx)
		return
	}
	if user.IsGuest {
		dto.ForbiddenError(ctx, "Guests cannot release roles")
		return
	}

	if err := s.repo.ReleaseSlotTx(ctx.Request.Context(), slot.ID, user.ID); err != nil {
		switch err {
		case repo.ErrNotSlotOwner:
			dto.ForbiddenError(ctx, "Only the current owner can give up a role")
		case repo.ErrSlotNotFound:
			dto.SlotNotFoundError(ctx)
		default:
			s.log.Error().Err(err).Msg("failed to release slot")
			dto.InternalServerError(ctx)
		}
		return
	}

	s.log.Info().Str("slot_id", slot.ID).Str("user_id", user.ID).Msg("slot released")

	s.publishEvent(dto.SlotEventMessage{
		Kind:      EventSlotReleased,
		MeetingID: meetingID,
		SlotID:    slot.ID,
		UserID:    user.ID,
		RoleName:  slot.RoleName,
		SentAt:    time.Now(),
	}, 0)

	dto.SuccessResponse(ctx, nil)
}

func (s *service) AssignSlot(ctx *ginext.Context) {
	var req dto.AssignSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	if _, ok := s.requireAdmin(ctx, req.ActorID); !ok {
		return
	}

	meetingID := ctx.Param("id")
	slot, err := s.repo.GetSlotByID(ctx.Request.Context(), ctx.Param("slotId"))
	if err != nil || slot.MeetingID != meetingID {
		dto.SlotNotFoundError(ctx)
		return
	}

	var assignee *model.User
	var details *model.SpeechDetails
	if req.UserID != nil {
		assignee, err = s.repo.GetUserByID(ctx.Request.Context(), *req.UserID)
		if err != nil {
			dto.UserNotFoundError(ctx)
			return
		}
		var ok bool
		details, ok = s.speechDetailsFor(ctx, slot, req.SpeechDetails)
		if !ok {
			return
		}
	}

	if err := s.repo.AdminAssignSlotTx(ctx.Request.Context(), meetingID, slot.ID, assignee, details); err != nil {
		switch err {
		case repo.ErrSlotNotFound:
			dto.SlotNotFoundError(ctx)
		default:
			s.log.Error().Err(err).Msg("failed to assign slot")
			dto.InternalServerError(ctx)
		}
		return
	}

	if assignee != nil {
		s.log.Info().
			Str("slot_id", slot.ID).
			Str("user_id", assignee.ID).
			Msg("slot assigned by admin")
		s.publishEvent(dto.SlotEventMessage{
			Kind:      EventSlotBooked,
			MeetingID: meetingID,
			SlotID:    slot.ID,
			UserID:    assignee.ID,
			RoleName:  slot.RoleName,
			SentAt:    time.Now(),
		}, 0)
	} else {
		s.log.Info().Str("slot_id", slot.ID).Msg("slot cleared by admin")
		s.publishEvent(dto.SlotEventMessage{
			Kind:      EventSlotReleased,
			MeetingID: meetingID,
			SlotID:    slot.ID,
			RoleName:  slot.RoleName,
			SentAt:    time.Now(),
		}, 0)
	}

	dto.SuccessResponse(ctx, nil)
}

func (s *service) AddSlot(ctx *ginext.Context) {
	var req dto.AddSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	if _, ok := s.requireAdmin(ctx, req.ActorID); !ok {
		return
	}

	meetingID := ctx.Param("id")
	if _, err := s.repo.GetMeetingByID(ctx.Request.Context(), meetingID); err != nil {
		dto.MeetingNotFoundError(ctx)
		return
	}

	slot := model.Slot{
		ID:        uuid.NewString(),
		MeetingID: meetingID,
		RoleName:  req.RoleName,
		RoleKind:  roles.Kind(req.RoleName),
	}
	if err := s.repo.AddSlots(ctx.Request.Context(), []model.Slot{slot}); err != nil {
		s.log.Error().Err(err).Msg("failed to add slot")
		dto.InternalServerError(ctx)
		return
	}

	dto.SuccessCreatedResponse(ctx, dto.SlotResponse{
		ID:       slot.ID,
		RoleName: slot.RoleName,
		RoleKind: slot.RoleKind,
	})
}

func (s *service) AddSpeakerEvaluatorPair(ctx *ginext.Context) {
	var req dto.AddPairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	if _, ok := s.requireAdmin(ctx, req.ActorID); !ok {
		return
	}

	meetingID := ctx.Param("id")
	if _, err := s.repo.GetMeetingByID(ctx.Request.Context(), meetingID); err != nil {
		dto.MeetingNotFoundError(ctx)
		return
	}
	existing, err := s.repo.GetSlotsByMeetingID(ctx.Request.Context(), meetingID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load slots for pair numbering")
		dto.InternalServerError(ctx)
		return
	}

	// Numbering is derived from the live counts, not a stored counter, so
	// deleting slots out of order can leave gaps.
	speakers, evaluators := 0, 0
	for _, sl := range existing {
		name := strings.ToLower(sl.RoleName)
		if strings.Contains(name, "prepared speaker") {
			speakers++
		}
		if roles.IsEvaluator(sl.RoleName) {
			evaluators++
		}
	}

	speakerName := fmt.Sprintf("Prepared Speaker %d", speakers+1)
	evaluatorName := fmt.Sprintf("Evaluator %d", evaluators+1)
	pair := []model.Slot{
		{
			ID:        uuid.NewString(),
			MeetingID: meetingID,
			RoleName:  speakerName,
			RoleKind:  roles.Kind(speakerName),
		},
		{
			ID:        uuid.NewString(),
			MeetingID: meetingID,
			RoleName:  evaluatorName,
			RoleKind:  roles.Kind(evaluatorName),
		},
	}

	if err := s.repo.AddSlots(ctx.Request.Context(), pair); err != nil {
		s.log.Error().Err(err).Msg("failed to add speaker/evaluator pair")
		dto.InternalServerError(ctx)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(pair))
	for _, sl := range pair {
		resp = append(resp, dto.SlotResponse{ID: sl.ID, RoleName: sl.RoleName, RoleKind: sl.RoleKind})
	}
	dto.SuccessCreatedResponse(ctx, resp)
}

func (s *service) DeleteSlot(ctx *ginext.Context) {
	if _, ok := s.requireAdmin(ctx, ctx.Query("actor")); !ok {
		return
	}

	if err := s.repo.DeleteSlot(ctx.Request.Context(), ctx.Param("id"), ctx.Param("slotId")); err != nil {
		dto.SlotNotFoundError(ctx)
		return
	}

	dto.SuccessResponse(ctx, nil)
}

func (s *service) RSVP(ctx *ginext.Context) {
	var req dto.RSVPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	meetingID := ctx.Param("id")
	if _, err := s.repo.GetMeetingByID(ctx.Request.Context(), meetingID); err != nil {
		dto.MeetingNotFoundError(ctx)
		return
	}

	user, err := s.repo.GetUserByID(ctx.Request.Context(), req.UserID)
	if err != nil {
		dto.UserNotFoundError(ctx)
		return
	}

	rsvp := &model.RSVP{
		MeetingID: meetingID,
		UserID:    user.ID,
		Name:      user.Name,
		Status:    model.RSVPStatus(req.Status),
		IsGuest:   user.IsGuest,
	}
	if err := s.repo.UpsertRSVP(ctx.Request.Context(), rsvp); err != nil {
		s.log.Error().Err(err).Msg("failed to upsert rsvp")
		dto.InternalServerError(ctx)
		return
	}

	dto.SuccessResponse(ctx, dto.RSVPResponse{
		UserID:  rsvp.UserID,
		Name:    rsvp.Name,
		Status:  rsvp.Status,
		IsGuest: rsvp.IsGuest,
	})
}

func (s *service) Pathways(ctx *ginext.Context) {
	dto.SuccessResponse(ctx, dto.CatalogResponse{Pathways: curriculum.Pathways()})
}

func (s *service) Levels(ctx *ginext.Context) {
	dto.SuccessResponse(ctx, dto.CatalogResponse{Levels: curriculum.Levels()})
}

func (s *service) Projects(ctx *ginext.Context) {
	pathway := ctx.Query("pathway")
	level := ctx.Query("level")
	if pathway == "" || level == "" {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Both pathway and level are required")
		return
	}
	dto.SuccessResponse(ctx, dto.CatalogResponse{Projects: curriculum.ProjectsFor(pathway, level)})
}

// requireAdmin loads the acting user and rejects non-admins. Identity itself
// comes from the auth collaborator in front of this service.
func (s *service) requireAdmin(ctx *ginext.Context, actorID string) (*model.User, bool) {
	if actorID == "" {
		dto.ForbiddenError(ctx, "Acting user is required")
		return nil, false
	}
	actor, err := s.repo.GetUserByID(ctx.Request.Context(), actorID)
	if err != nil {
		dto.UserNotFoundError(ctx)
		return nil, false
	}
	if !actor.IsAdmin {
		dto.ForbiddenError(ctx, "Admin rights are required")
		return nil, false
	}
	return actor, true
}
