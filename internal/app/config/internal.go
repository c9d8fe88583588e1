package config

type InternalConfig struct {
	App App
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	FrontendDomain            string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	MaxTimeRequestsPerSeconds int
	SessionPendingTTLInHours  int
	// SessionResyncIntervalInSeconds paces the event stream's store re-read,
	// the safety net for a completion whose publish never reached the
	// notifier.
	SessionResyncIntervalInSeconds int
}
