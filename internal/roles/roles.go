package roles

import (
	"sort"
	"strconv"
	"strings"

	"rolecall/internal/model"
)

// Rank assigns the canonical agenda position to a role name. Lower comes
// first; unknown custom roles sink to the bottom.
func Rank(roleName string) int {
	r := strings.ToLower(roleName)

	switch {
	case strings.Contains(r, "toastmaster"):
		return 1
	case strings.Contains(r, "table topics"):
		return 2
	case strings.Contains(r, "general evaluator"):
		return 3
	case strings.Contains(r, "prepared speaker"):
		return 100 + trailingNumber(r)
	case strings.Contains(r, "evaluator") && !strings.Contains(r, "general"):
		return 200 + trailingNumber(r)
	case strings.Contains(r, "timer"):
		return 300
	case strings.Contains(r, "ah-counter"):
		return 301
	case strings.Contains(r, "grammarian"):
		return 302
	}
	return 1000
}

// trailingNumber extracts the digits embedded in a role name, so
// "Prepared Speaker 2" ranks after "Prepared Speaker 1". Unnumbered
// variants sort after all numbered ones.
func trailingNumber(r string) int {
	var digits strings.Builder
	for _, c := range r {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil || n == 0 {
		return 99
	}
	return n
}

// Sort orders slots by rank, then case-folded role name, then id.
func Sort(slots []model.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		ri, rj := Rank(slots[i].RoleName), Rank(slots[j].RoleName)
		if ri != rj {
			return ri < rj
		}
		ni, nj := strings.ToLower(slots[i].RoleName), strings.ToLower(slots[j].RoleName)
		if ni != nj {
			return ni < nj
		}
		return slots[i].ID < slots[j].ID
	})
}

// Kind classifies a role name at slot-creation time. Substring matching on
// free-form names is kept only as the fallback for slots created before the
// kind column existed.
func Kind(roleName string) model.RoleKind {
	switch {
	case IsSpeaker(roleName):
		return model.RoleSpeaker
	case IsEvaluator(roleName):
		return model.RoleEvaluator
	case Rank(roleName) < 1000:
		return model.RoleStandard
	}
	return model.RoleCustom
}

// IsSpeaker gates the speech-details flow.
func IsSpeaker(roleName string) bool {
	return strings.Contains(strings.ToLower(roleName), "speaker")
}

// IsEvaluator matches evaluator roles, excluding the General Evaluator.
func IsEvaluator(roleName string) bool {
	r := strings.ToLower(roleName)
	return strings.Contains(r, "evaluator") && !strings.Contains(r, "general")
}

// SpeakerSlot reports whether a stored slot takes the speech-booking path,
// preferring the persisted kind over name matching.
func SpeakerSlot(s *model.Slot) bool {
	if s.RoleKind != "" {
		return s.RoleKind == model.RoleSpeaker
	}
	return IsSpeaker(s.RoleName)
}
