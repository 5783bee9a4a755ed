package naming

import (
	"strconv"
	"strings"
)

// EventBonus returns the display bonus of an event reward: the family's
// game-event field converted to display units. ok is false when the reward
// is not an event reward, the event or field is missing, or the bonus is
// not positive.
func EventBonus(cat Catalog, rewardID, gameEvent string) (float64, bool) {
	fam, ok := familyOf(rewardID)
	if !ok || strings.TrimSpace(gameEvent) == "" {
		return 0, false
	}
	ev, ok := cat.Event(gameEvent)
	if !ok {
		return 0, false
	}
	v, ok := ev.Reward(fam.field)
	if !ok {
		return 0, false
	}
	v /= fam.divisor
	if v <= 0 {
		return 0, false
	}
	return v, true
}

func familyOf(rewardID string) (eventFamily, bool) {
	id := strings.ToLower(rewardID)
	for _, f := range eventFamilies {
		if strings.HasPrefix(id, f.prefix) {
			return f, true
		}
	}
	return eventFamily{}, false
}

// IsEventReward reports whether a reward id belongs to an event family.
func IsEventReward(rewardID string) bool {
	_, ok := familyOf(rewardID)
	return ok
}

// FormatBonus appends a bonus to a name: "Coins (15.5)", "Tokens (200)".
func FormatBonus(name string, bonus float64) string {
	return name + " (" + strconv.FormatFloat(bonus, 'f', -1, 64) + ")"
}
