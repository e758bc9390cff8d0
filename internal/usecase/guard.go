package usecase

import (
	"campustrace/internal/domain/constants"
	"campustrace/internal/domain/entity"
)

// GuardAction is the outcome of evaluating a route guard.
type GuardAction string

const (
	// GuardAllow lets the request through.
	GuardAllow GuardAction = "allow"
	// GuardPlaceholder holds the request while bootstrapping is unresolved.
	GuardPlaceholder GuardAction = "placeholder"
	// GuardRedirect sends the requester somewhere else.
	GuardRedirect GuardAction = "redirect"
)

// GuardDecision is the result of a guard evaluation. RedirectTo is only set
// for GuardRedirect.
type GuardDecision struct {
	Action     GuardAction
	RedirectTo string
}

// allow is the shared allow decision.
func allow() GuardDecision {
	return GuardDecision{Action: GuardAllow}
}

func redirect(to string) GuardDecision {
	return GuardDecision{Action: GuardRedirect, RedirectTo: to}
}

// EvaluateProtected guards routes that require any authenticated user.
// While the snapshot is still loading the decision is a placeholder, never a
// redirect: a slow startup must not bounce a signed-in user to the sign-in
// page.
func EvaluateProtected(snapshot entity.BootstrapSnapshot) GuardDecision {
	if snapshot.IsLoading() {
		return GuardDecision{Action: GuardPlaceholder}
	}
	if !snapshot.Authenticated() {
		return redirect(constants.RouteSignIn)
	}
	if snapshot.Profile != nil && snapshot.Profile.IsBanned {
		return redirect(constants.RouteSignIn)
	}

	return allow()
}

// EvaluateRoleGated guards routes that require a specific role. A missing
// profile is treated as unauthorized. Role comparison ignores case and
// surrounding whitespace on both sides.
func EvaluateRoleGated(snapshot entity.BootstrapSnapshot, required entity.Role) GuardDecision {
	if base := EvaluateProtected(snapshot); base.Action != GuardAllow {
		return base
	}
	if snapshot.Profile == nil {
		return redirect(constants.RouteMemberDashboard)
	}
	if !snapshot.Profile.Role.Matches(required) {
		return redirect(constants.RouteMemberDashboard)
	}

	return allow()
}

// EvaluatePublicOnly guards routes that only make sense signed out, such as
// the sign-in page. Authenticated users are sent to their dashboard.
func EvaluatePublicOnly(snapshot entity.BootstrapSnapshot) GuardDecision {
	if snapshot.IsLoading() {
		return GuardDecision{Action: GuardPlaceholder}
	}
	if snapshot.Authenticated() {
		if snapshot.Profile != nil && snapshot.Profile.Role.Matches(entity.RoleAdmin) {
			return redirect(constants.RouteAdminDashboard)
		}

		return redirect(constants.RouteMemberDashboard)
	}

	return allow()
}
