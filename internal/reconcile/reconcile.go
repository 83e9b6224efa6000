package reconcile

import "rolecall/internal/model"

// Counts aggregates the projected attendance.
type Counts struct {
	Yes   int `json:"yes"`
	Maybe int `json:"maybe"`
}

// NameLookup resolves a user id to its display name and guest flag when a
// slot holder has no stored RSVP row to copy the snapshot from.
type NameLookup func(userID string) (name string, guest bool, ok bool)

// Project merges explicit RSVP records with slot ownership: every slot
// holder ends up with a "yes" record (booking a role implies attendance),
// while records for attendees holding no slot keep their declared status.
// This is a read-time safety net; the booking path persists the same upsert.
func Project(rsvps []model.RSVP, slots []model.Slot, lookup NameLookup) ([]model.RSVP, Counts) {
	out := make([]model.RSVP, len(rsvps))
	copy(out, rsvps)

	for _, s := range slots {
		if s.UserID == nil {
			continue
		}
		owner := *s.UserID

		idx := -1
		for i := range out {
			if out[i].UserID == owner {
				idx = i
				break
			}
		}

		if idx >= 0 {
			if out[idx].Status != model.RSVPYes {
				out[idx].Status = model.RSVPYes
			}
			continue
		}

		if lookup == nil {
			continue
		}
		name, guest, ok := lookup(owner)
		if !ok {
			continue
		}
		if name == "" {
			name = "Member"
		}
		out = append(out, model.RSVP{
			MeetingID: s.MeetingID,
			UserID:    owner,
			Name:      name,
			Status:    model.RSVPYes,
			IsGuest:   guest,
		})
	}

	var counts Counts
	for _, r := range out {
		switch r.Status {
		case model.RSVPYes:
			counts.Yes++
		case model.RSVPMaybe:
			counts.Maybe++
		}
	}
	return out, counts
}
