// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Order listing bounds.
const (
	DefaultOrderPageLimit = 10
	MaxOrderPageLimit     = 100
)

// DashboardRecentOrders is how many orders the admin dashboard shows.
const DashboardRecentOrders = 5

// EnvLocal is the env.env value of a developer machine. Push authentication is skipped there.
const EnvLocal = "local"
