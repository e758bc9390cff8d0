package usecase

import (
	"testing"

	"campustrace/internal/domain/constants"
	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func loadingSnapshot() entity.BootstrapSnapshot {
	return entity.BootstrapSnapshot{Phase: entity.PhaseInitializing}
}

func anonymousSnapshot() entity.BootstrapSnapshot {
	return entity.BootstrapSnapshot{Phase: entity.PhaseReadyAnonymous}
}

func authenticatedSnapshot(role entity.Role, banned bool) entity.BootstrapSnapshot {
	userID := uuid.New()

	return entity.BootstrapSnapshot{
		Phase:   entity.PhaseReadyAuthenticated,
		Session: &entity.Session{UserID: userID, Email: "user@uni.edu"},
		Profile: &entity.Profile{UserID: userID, Role: role, IsBanned: banned},
	}
}

func TestEvaluateProtected(t *testing.T) {
	tests := []struct {
		name     string
		snapshot entity.BootstrapSnapshot
		want     GuardDecision
	}{
		{
			name:     "loading holds a placeholder, never redirects",
			snapshot: loadingSnapshot(),
			want:     GuardDecision{Action: GuardPlaceholder},
		},
		{
			name:     "anonymous redirects to sign-in",
			snapshot: anonymousSnapshot(),
			want:     GuardDecision{Action: GuardRedirect, RedirectTo: constants.RouteSignIn},
		},
		{
			name:     "authenticated member is allowed",
			snapshot: authenticatedSnapshot(entity.RoleMember, false),
			want:     GuardDecision{Action: GuardAllow},
		},
		{
			name:     "banned user is redirected to sign-in",
			snapshot: authenticatedSnapshot(entity.RoleMember, true),
			want:     GuardDecision{Action: GuardRedirect, RedirectTo: constants.RouteSignIn},
		},
		{
			name: "session without a profile is still allowed",
			snapshot: entity.BootstrapSnapshot{
				Phase:   entity.PhaseReadyAuthenticated,
				Session: &entity.Session{UserID: uuid.New()},
			},
			want: GuardDecision{Action: GuardAllow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateProtected(tt.snapshot))
		})
	}
}

func TestEvaluateRoleGated(t *testing.T) {
	tests := []struct {
		name     string
		snapshot entity.BootstrapSnapshot
		required entity.Role
		want     GuardDecision
	}{
		{
			name:     "loading holds a placeholder",
			snapshot: loadingSnapshot(),
			required: entity.RoleAdmin,
			want:     GuardDecision{Action: GuardPlaceholder},
		},
		{
			name:     "anonymous redirects to sign-in before the role check",
			snapshot: anonymousSnapshot(),
			required: entity.RoleAdmin,
			want:     GuardDecision{Action: GuardRedirect, RedirectTo: constants.RouteSignIn},
		},
		{
			name:     "matching role is allowed",
			snapshot: authenticatedSnapshot(entity.RoleAdmin, false),
			required: entity.RoleAdmin,
			want:     GuardDecision{Action: GuardAllow},
		},
		{
			name:     "wrong role is sent to the member dashboard",
			snapshot: authenticatedSnapshot(entity.RoleMember, false),
			required: entity.RoleAdmin,
			want:     GuardDecision{Action: GuardRedirect, RedirectTo: constants.RouteMemberDashboard},
		},
		{
			name: "missing profile counts as unauthorized",
			snapshot: entity.BootstrapSnapshot{
				Phase:   entity.PhaseReadyAuthenticated,
				Session: &entity.Session{UserID: uuid.New()},
			},
			required: entity.RoleAdmin,
			want:     GuardDecision{Action: GuardRedirect, RedirectTo: constants.RouteMemberDashboard},
		},
		{
			name:     "role comparison ignores case and padding",
			snapshot: authenticatedSnapshot(entity.Role("  Admin "), false),
			required: entity.RoleAdmin,
			want:     GuardDecision{Action: GuardAllow},
		},
		{
			name:     "banned admin is redirected to sign-in",
			snapshot: authenticatedSnapshot(entity.RoleAdmin, true),
			required: entity.RoleAdmin,
			want:     GuardDecision{Action: GuardRedirect, RedirectTo: constants.RouteSignIn},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateRoleGated(tt.snapshot, tt.required))
		})
	}
}

func TestEvaluatePublicOnly(t *testing.T) {
	tests := []struct {
		name     string
		snapshot entity.BootstrapSnapshot
		want     GuardDecision
	}{
		{
			name:     "loading holds a placeholder",
			snapshot: loadingSnapshot(),
			want:     GuardDecision{Action: GuardPlaceholder},
		},
		{
			name:     "anonymous is allowed through",
			snapshot: anonymousSnapshot(),
			want:     GuardDecision{Action: GuardAllow},
		},
		{
			name:     "signed-in member goes to the member dashboard",
			snapshot: authenticatedSnapshot(entity.RoleMember, false),
			want:     GuardDecision{Action: GuardRedirect, RedirectTo: constants.RouteMemberDashboard},
		},
		{
			name:     "signed-in admin goes to the admin dashboard",
			snapshot: authenticatedSnapshot(entity.RoleAdmin, false),
			want:     GuardDecision{Action: GuardRedirect, RedirectTo: constants.RouteAdminDashboard},
		},
		{
			name: "signed-in user without profile goes to the member dashboard",
			snapshot: entity.BootstrapSnapshot{
				Phase:   entity.PhaseReadyAuthenticated,
				Session: &entity.Session{UserID: uuid.New()},
			},
			want: GuardDecision{Action: GuardRedirect, RedirectTo: constants.RouteMemberDashboard},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluatePublicOnly(tt.snapshot))
		})
	}
}
