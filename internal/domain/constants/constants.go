// Package constants holds shared constant values used across layers.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"
	// EnvProduction marks the production environment.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Client-side routes the API redirects to after guard decisions.
const (
	RouteSignIn          = "/signin"
	RouteMemberDashboard = "/dashboard"
	RouteAdminDashboard  = "/admin"
)
