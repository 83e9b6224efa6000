package consumerWorker

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/zlog"

	"rolecall/internal/dto"
	"rolecall/internal/mailer"
	"rolecall/internal/model"
	"rolecall/internal/rabbit"
	"rolecall/internal/repo"
	"rolecall/internal/service"
)

type Reader struct {
	RMQ    *rabbit.Client
	repo   repo.Repository
	done   chan struct{}
	cancel context.CancelFunc
}

func NewReader(rmq *rabbit.Client, repo repo.Repository) *Reader {
	return &Reader{
		RMQ:  rmq,
		repo: repo,
		done: make(chan struct{}),
	}
}

func (r *Reader) Start(ctx context.Context) {
	cctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	zlog.Logger.Info().Msg("🐇 Notification Reader started")

	go func() {
		defer close(r.done)

		handler := func(body []byte) error {
			var msg dto.SlotEventMessage
			if err := json.Unmarshal(body, &msg); err != nil {
				zlog.Logger.Error().
					Err(err).
					Msgf("Failed to unmarshal message: %s", string(body))
				return err
			}

			zlog.Logger.Info().
				Str("kind", msg.Kind).
				Str("meeting_id", msg.MeetingID).
				Msg("📩 Received message from RabbitMQ")

			// The ledger is what makes redeliveries and duplicate publishes
			// harmless: one mail per (entity, kind), ever.
			first, err := r.repo.MarkNotified(cctx, ledgerEntity(&msg), msg.Kind)
			if err != nil {
				zlog.Logger.Error().
					Err(err).
					Str("kind", msg.Kind).
					Msg("Failed to record notification in ledger")
				return err
			}
			if !first {
				zlog.Logger.Info().
					Str("kind", msg.Kind).
					Str("meeting_id", msg.MeetingID).
					Msg("⏳ Notification already delivered — skipping")
				return nil
			}

			switch msg.Kind {
			case service.EventSlotBooked, service.EventSlotReleased:
				r.notifySlotHolder(cctx, &msg)
			case service.EventMeetingCreated:
				r.notifyMembers(cctx, &msg)
			case service.EventMeetingReminder:
				r.notifyAttendees(cctx, &msg)
			default:
				zlog.Logger.Warn().Str("kind", msg.Kind).Msg("Unknown event kind — skipping")
			}

			return nil
		}

		if err := r.RMQ.Consume(handler); err != nil {
			zlog.Logger.Error().Err(err).Msg("Failed to start consuming")
			return
		}

		<-cctx.Done()
		zlog.Logger.Info().Msg("🛑 Notification Reader stopped by context")
	}()
}

func ledgerEntity(msg *dto.SlotEventMessage) string {
	if msg.SlotID != "" {
		// Re-booking a released slot must notify again, hence the owner in
		// the key.
		return msg.SlotID + ":" + msg.UserID
	}
	return msg.MeetingID
}

func (r *Reader) notifySlotHolder(ctx context.Context, msg *dto.SlotEventMessage) {
	if msg.UserID == "" {
		return
	}
	user, err := r.repo.GetUserByID(ctx, msg.UserID)
	if err != nil {
		zlog.Logger.Error().
			Err(err).
			Str("user_id", msg.UserID).
			Msg("Failed to get user from DB in worker")
		return
	}
	if user.Email == "" {
		return
	}

	meeting, err := r.repo.GetMeetingByID(ctx, msg.MeetingID)
	if err != nil {
		zlog.Logger.Error().
			Err(err).
			Str("meeting_id", msg.MeetingID).
			Msg("Failed to get meeting from DB in worker")
		return
	}

	if err := mailer.SendNotificationEmail(&zlog.Logger, msg.Kind, meeting.Title, msg.RoleName, user.Email); err != nil {
		zlog.Logger.Warn().Err(err).Msg("Failed to send notification on e-mail")
	}
}

func (r *Reader) notifyMembers(ctx context.Context, msg *dto.SlotEventMessage) {
	users, err := r.repo.GetAllUsers(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("Failed to list users in worker")
		return
	}
	for _, u := range users {
		if u.IsGuest || u.Email == "" {
			continue
		}
		if err := mailer.SendNotificationEmail(&zlog.Logger, msg.Kind, msg.Title, "", u.Email); err != nil {
			zlog.Logger.Warn().Err(err).Str("email", u.Email).Msg("Failed to send notification on e-mail")
		}
	}
}

func (r *Reader) notifyAttendees(ctx context.Context, msg *dto.SlotEventMessage) {
	rsvps, err := r.repo.GetRSVPsByMeetingID(ctx, msg.MeetingID)
	if err != nil {
		zlog.Logger.Error().
			Err(err).
			Str("meeting_id", msg.MeetingID).
			Msg("Failed to get rsvps from DB in worker")
		return
	}
	for _, rec := range rsvps {
		if rec.Status != model.RSVPYes {
			continue
		}
		user, err := r.repo.GetUserByID(ctx, rec.UserID)
		if err != nil || user.Email == "" {
			continue
		}
		if err := mailer.SendNotificationEmail(&zlog.Logger, msg.Kind, msg.Title, "", user.Email); err != nil {
			zlog.Logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send notification on e-mail")
		}
	}
}

func (r *Reader) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}
