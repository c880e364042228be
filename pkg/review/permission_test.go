package review

import (
	"testing"

	"quality-gate-be/internal/entity"
)

func TestCanReview(t *testing.T) {
	tests := []struct {
		name string
		user *entity.User
		want bool
	}{
		{
			name: "admin always can",
			user: &entity.User{Role: entity.UserRoleAdmin, Position: "Intern"},
			want: true,
		},
		{
			name: "senior editor",
			user: &entity.User{Role: entity.UserRoleMember, Position: "Senior Editor"},
			want: true,
		},
		{
			name: "channel manager",
			user: &entity.User{Role: entity.UserRoleMember, Position: "Channel Manager"},
			want: true,
		},
		{
			name: "head of production",
			user: &entity.User{Role: entity.UserRoleMember, Position: "Head of Production"},
			want: true,
		},
		{
			name: "plain editor cannot",
			user: &entity.User{Role: entity.UserRoleMember, Position: "Editor"},
			want: false,
		},
		{
			name: "title match is case sensitive",
			user: &entity.User{Role: entity.UserRoleMember, Position: "senior editor"},
			want: false,
		},
		{
			name: "empty position",
			user: &entity.User{Role: entity.UserRoleMember, Position: ""},
			want: false,
		},
		{
			name: "nil user",
			user: nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReview(tt.user); got != tt.want {
				t.Errorf("CanReview() = %v, want %v", got, tt.want)
			}
		})
	}
}
