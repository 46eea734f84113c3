// Package common provides the environment variable names and wire types
// shared by the crash reporter and the report collector.
package common

// Environment variable names for configuration.
const (
	// SupportURLEnv overrides the help channel opened by "Get Support".
	SupportURLEnv = "ASCENDARA_SUPPORT_URL"

	// EndpointEnv is the collector URL. Empty keeps submission local.
	EndpointEnv = "ASCENDARA_CRASH_ENDPOINT"

	// TokenEnv is sent to the collector as a bearer token.
	TokenEnv = "ASCENDARA_CRASH_TOKEN"

	// ProxyEnv routes collector traffic through an http, https or socks5 proxy.
	ProxyEnv = "ASCENDARA_CRASH_PROXY"

	// TimeoutEnv bounds a single submission.
	TimeoutEnv = "ASCENDARA_CRASH_TIMEOUT"

	// LogLevelEnv sets the diagnostic log level.
	LogLevelEnv = "ASCENDARA_LOG_LEVEL"
)

// DefaultSupportURL is the Ascendara community support channel.
const DefaultSupportURL = "https://ascendara.app/discord"
