package review

import (
	"strings"

	"quality-gate-be/internal/entity"
)

// reviewerTitles are matched case-sensitively as substrings of the
// free-text position field ("Senior Editor", "Channel Manager",
// "Head of Production").
var reviewerTitles = []string{"Senior", "Manager", "Head"}

// CanReview reports whether a user holds the reviewer capability.
// This gate decides what the UI offers; the store-facing dispatcher
// re-applies it before any write.
func CanReview(u *entity.User) bool {
	if u == nil {
		return false
	}
	if u.Role == entity.UserRoleAdmin {
		return true
	}
	for _, title := range reviewerTitles {
		if strings.Contains(u.Position, title) {
			return true
		}
	}
	return false
}
