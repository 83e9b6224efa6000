package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/dbpg"

	"rolecall/internal/model"
)

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrSlotTaken       = errors.New("slot already taken")
	ErrNotSlotOwner    = errors.New("slot owned by another user")
)

type MeetingPatch struct {
	Title        string
	Date         string
	Theme        string
	WordOfTheDay string
	Venue        string
	Time         string
}

type Repository interface {
	CreateMeetingTx(ctx context.Context, m *model.Meeting, slots []model.Slot) error
	GetMeetingByID(ctx context.Context, id string) (*model.Meeting, error)
	GetAllMeetings(ctx context.Context) ([]model.Meeting, error)
	UpdateMeeting(ctx context.Context, id string, patch MeetingPatch) error
	DeleteMeeting(ctx context.Context, id string) error

	GetSlotByID(ctx context.Context, slotID string) (*model.Slot, error)
	GetSlotsByMeetingID(ctx context.Context, meetingID string) ([]model.Slot, error)
	AddSlots(ctx context.Context, slots []model.Slot) error
	DeleteSlot(ctx context.Context, meetingID, slotID string) error
	BookSlotTx(ctx context.Context, meetingID, slotID string, user *model.User, details *model.SpeechDetails) error
	ReleaseSlotTx(ctx context.Context, slotID, userID string) error
	AdminAssignSlotTx(ctx context.Context, meetingID, slotID string, user *model.User, details *model.SpeechDetails) error

	UpsertRSVP(ctx context.Context, r *model.RSVP) error
	GetRSVPsByMeetingID(ctx context.Context, meetingID string) ([]model.RSVP, error)

	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)

	MarkNotified(ctx context.Context, entityID, kind string) (bool, error)

	MigrateUp(migrationsDir string) error
	MigrateDown(migrationsDir string) error
}

type repository struct {
	db  *dbpg.DB
	log *zerolog.Logger
}

func NewRepository(db *dbpg.DB, log *zerolog.Logger) (Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if err := db.Master.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return &repository{db: db, log: log}, nil
}

func (r *repository) MigrateUp(migrationsDir string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.up.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		if _, err := r.db.ExecContext(context.Background(), string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
	}

	r.log.Info().Msgf("Migrations applied successfully from %s", migrationsDir)
	return nil
}

func (r *repository) MigrateDown(migrationsDir string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.down.sql"))
	if err != nil {
		return fmt.Errorf("failed to read rollback files: %w", err)
	}

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read rollback file %s: %w", file, err)
		}

		if _, err := r.db.ExecContext(context.Background(), string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to rollback migration %s: %w", file, err)
		}
	}

	r.log.Info().Msgf("Migrations rolled back successfully from %s", migrationsDir)
	return nil
}

func (r *repository) CreateMeetingTx(ctx context.Context, m *model.Meeting, slots []model.Slot) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	query := `
		INSERT INTO meetings (id, date, title, type, theme, word_of_the_day, venue, time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	if err := tx.QueryRowContext(ctx, query,
		m.ID, m.Date, m.Title, m.Type, m.Theme, m.WordOfTheDay, m.Venue, m.Time,
	).Scan(&m.CreatedAt, &m.UpdatedAt); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to insert meeting: %w", err)
	}

	for i := range slots {
		if err := insertSlot(ctx, tx, &slots[i]); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertSlot(ctx context.Context, tx *sql.Tx, s *model.Slot) error {
	query := `
		INSERT INTO slots (id, meeting_id, role_name, role_kind, user_id, is_locked, speech_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	details, err := marshalDetails(s.SpeechDetails)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query,
		s.ID, s.MeetingID, s.RoleName, s.RoleKind, s.UserID, s.IsLocked, details,
	); err != nil {
		return fmt.Errorf("failed to insert slot: %w", err)
	}
	return nil
}

func (r *repository) GetMeetingByID(ctx context.Context, id string) (*model.Meeting, error) {
	query := `
		SELECT id, date, title, type, theme, word_of_the_day, venue, time, created_at, updated_at
		FROM meetings WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var m model.Meeting
	if err := row.Scan(
		&m.ID, &m.Date, &m.Title, &m.Type, &m.Theme, &m.WordOfTheDay,
		&m.Venue, &m.Time, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, ErrMeetingNotFound
	}
	return &m, nil
}

func (r *repository) GetAllMeetings(ctx context.Context) ([]model.Meeting, error) {
	query := `
		SELECT id, date, title, type, theme, word_of_the_day, venue, time, created_at, updated_at
		FROM meetings
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get meetings: %w", err)
	}
	defer rows.Close()

	var meetings []model.Meeting
	for rows.Next() {
		var m model.Meeting
		if err := rows.Scan(
			&m.ID, &m.Date, &m.Title, &m.Type, &m.Theme, &m.WordOfTheDay,
			&m.Venue, &m.Time, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}

	return meetings, nil
}

func (r *repository) UpdateMeeting(ctx context.Context, id string, patch MeetingPatch) error {
	query := `
		UPDATE meetings SET
			title = COALESCE(NULLIF($1, ''), title),
			date = COALESCE(NULLIF($2, ''), date),
			theme = COALESCE(NULLIF($3, ''), theme),
			word_of_the_day = COALESCE(NULLIF($4, ''), word_of_the_day),
			venue = COALESCE(NULLIF($5, ''), venue),
			time = COALESCE(NULLIF($6, ''), time),
			updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`
	var got string
	if err := r.db.QueryRowContext(ctx, query,
		patch.Title, patch.Date, patch.Theme, patch.WordOfTheDay, patch.Venue, patch.Time, id,
	).Scan(&got); err != nil {
		return ErrMeetingNotFound
	}
	return nil
}

func (r *repository) DeleteMeeting(ctx context.Context, id string) error {
	// slots and rsvps go with the meeting via ON DELETE CASCADE
	res, err := r.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return ErrMeetingNotFound
	}
	return nil
}

func (r *repository) GetSlotByID(ctx context.Context, slotID string) (*model.Slot, error) {
	query := `
		SELECT id, meeting_id, role_name, role_kind, user_id, is_locked, speech_details
		FROM slots WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, slotID)
	s, err := scanSlot(row.Scan)
	if err != nil {
		return nil, ErrSlotNotFound
	}
	return s, nil
}

func (r *repository) GetSlotsByMeetingID(ctx context.Context, meetingID string) ([]model.Slot, error) {
	query := `
		SELECT id, meeting_id, role_name, role_kind, user_id, is_locked, speech_details
		FROM slots WHERE meeting_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}
	defer rows.Close()

	var slots []model.Slot
	for rows.Next() {
		s, err := scanSlot(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, *s)
	}
	return slots, nil
}

func scanSlot(scan func(dest ...any) error) (*model.Slot, error) {
	var s model.Slot
	var details sql.NullString
	if err := scan(&s.ID, &s.MeetingID, &s.RoleName, &s.RoleKind, &s.UserID, &s.IsLocked, &details); err != nil {
		return nil, err
	}
	if details.Valid && details.String != "" && details.String != "null" {
		var sd model.SpeechDetails
		if err := json.Unmarshal([]byte(details.String), &sd); err != nil {
			return nil, fmt.Errorf("failed to decode speech details: %w", err)
		}
		s.SpeechDetails = &sd
	}
	return &s, nil
}

func marshalDetails(d *model.SpeechDetails) (any, error) {
	if d == nil {
		return nil, nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode speech details: %w", err)
	}
	return string(b), nil
}

func (r *repository) AddSlots(ctx context.Context, slots []model.Slot) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	for i := range slots {
		if err := insertSlot(ctx, tx, &slots[i]); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *repository) DeleteSlot(ctx context.Context, meetingID, slotID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM slots WHERE id = $1 AND meeting_id = $2`, slotID, meetingID)
	if err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// BookSlotTx assigns an open slot to a user and forces their RSVP to "yes"
// in the same transaction. The conditional update is what keeps two
// concurrent bookings from both winning: the second one matches zero rows.
func (r *repository) BookSlotTx(ctx context.Context, meetingID, slotID string, user *model.User, details *model.SpeechDetails) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	var exists string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM slots WHERE id = $1 AND meeting_id = $2`, slotID, meetingID,
	).Scan(&exists)
	if err != nil {
		_ = tx.Rollback()
		return ErrSlotNotFound
	}

	detailsJSON, err := marshalDetails(details)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE slots
		SET user_id = $1, speech_details = $2
		WHERE id = $3 AND user_id IS NULL
	`, user.ID, detailsJSON, slotID)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to book slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to check booking result: %w", err)
	}
	if n == 0 {
		_ = tx.Rollback()
		return ErrSlotTaken
	}

	if err := upsertRSVPTx(ctx, tx, meetingID, user); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func upsertRSVPTx(ctx context.Context, tx *sql.Tx, meetingID string, user *model.User) error {
	query := `
		INSERT INTO rsvps (meeting_id, user_id, name, status, is_guest)
		VALUES ($1, $2, $3, 'yes', $4)
		ON CONFLICT (meeting_id, user_id)
		DO UPDATE SET status = 'yes', name = EXCLUDED.name
	`
	if _, err := tx.ExecContext(ctx, query, meetingID, user.ID, user.Name, user.IsGuest); err != nil {
		return fmt.Errorf("failed to upsert rsvp: %w", err)
	}
	return nil
}

// ReleaseSlotTx clears a slot the caller owns. The RSVP row is left as-is:
// giving up a role does not retract a declared attendance.
func (r *repository) ReleaseSlotTx(ctx context.Context, slotID, userID string) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	var owner sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT user_id FROM slots WHERE id = $1 FOR UPDATE`, slotID,
	).Scan(&owner)
	if err != nil {
		_ = tx.Rollback()
		return ErrSlotNotFound
	}
	if !owner.Valid || owner.String != userID {
		_ = tx.Rollback()
		return ErrNotSlotOwner
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE slots SET user_id = NULL, speech_details = NULL WHERE id = $1
	`, slotID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to release slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AdminAssignSlotTx overwrites a slot's owner unconditionally. A nil user
// clears the slot; a concrete user also gets the book-time RSVP upsert.
func (r *repository) AdminAssignSlotTx(ctx context.Context, meetingID, slotID string, user *model.User, details *model.SpeechDetails) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	detailsJSON, err := marshalDetails(details)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	var uid any
	if user != nil {
		uid = user.ID
	}
	res, err := tx.ExecContext(ctx, `
		UPDATE slots
		SET user_id = $1, speech_details = $2
		WHERE id = $3 AND meeting_id = $4
	`, uid, detailsJSON, slotID, meetingID)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to assign slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to check assign result: %w", err)
	}
	if n == 0 {
		_ = tx.Rollback()
		return ErrSlotNotFound
	}

	if user != nil {
		if err := upsertRSVPTx(ctx, tx, meetingID, user); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *repository) UpsertRSVP(ctx context.Context, rsvp *model.RSVP) error {
	query := `
		INSERT INTO rsvps (meeting_id, user_id, name, status, is_guest)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (meeting_id, user_id)
		DO UPDATE SET status = EXCLUDED.status, name = EXCLUDED.name
	`
	if _, err := r.db.ExecContext(ctx, query,
		rsvp.MeetingID, rsvp.UserID, rsvp.Name, rsvp.Status, rsvp.IsGuest,
	); err != nil {
		return fmt.Errorf("failed to upsert rsvp: %w", err)
	}
	return nil
}

func (r *repository) GetRSVPsByMeetingID(ctx context.Context, meetingID string) ([]model.RSVP, error) {
	query := `
		SELECT meeting_id, user_id, name, status, is_guest
		FROM rsvps WHERE meeting_id = $1
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvps: %w", err)
	}
	defer rows.Close()

	var rsvps []model.RSVP
	for rows.Next() {
		var r model.RSVP
		if err := rows.Scan(&r.MeetingID, &r.UserID, &r.Name, &r.Status, &r.IsGuest); err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		rsvps = append(rsvps, r)
	}
	return rsvps, nil
}

func (r *repository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := `
		SELECT id, username, email, name, avatar, is_admin, is_guest
		FROM users WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.Avatar, &u.IsAdmin, &u.IsGuest); err != nil {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *repository) GetAllUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, username, email, name, avatar, is_admin, is_guest
		FROM users
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.Avatar, &u.IsAdmin, &u.IsGuest); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// MarkNotified records a delivery in the idempotency ledger. It reports true
// only for the first (entity, kind) pair; repeated deliveries are skipped by
// the caller.
func (r *repository) MarkNotified(ctx context.Context, entityID, kind string) (bool, error) {
	query := `
		INSERT INTO notification_log (entity_id, kind)
		VALUES ($1, $2)
		ON CONFLICT (entity_id, kind) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query, entityID, kind)
	if err != nil {
		return false, fmt.Errorf("failed to record notification: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check notification result: %w", err)
	}
	return n > 0, nil
}
