// Package constants defines shared domain constants.
package constants

// Environment names used by config and logging setup.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// Chat sender types.
const (
	SenderAdmin  = "admin"
	SenderSeller = "seller"
)
