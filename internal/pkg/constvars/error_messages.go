package constvars

// Client-facing messages. Kept generic so internal details never leak.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientQuestionnaireNotFound         = "Questionnaire not found"
	ErrClientNoResponsesFound              = "No responses found for this questionnaire"
	ErrClientSessionNotFound               = "Session not found"
	ErrClientSessionAlreadyCompleted       = "This questionnaire has already been completed"
	ErrClientScoreCalculation              = "Could not calculate scores, please fill in the questionnaire again"
	ErrClientRemoteStoreUnreachable        = "Unable to connect to the server. If you are using an ad blocker, please disable it for this site and try again"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
)

// Developer-facing messages logged with the error location.
const (
	ErrDevCannotParseJSON            = "failed to decode request body"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevQuestionnaireNotFound      = "no questionnaire registered for id: %s"
	ErrDevQuestionnaireMisconfigured = "questionnaire definition invalid: %s"
	ErrDevNoResponsesFound           = "no local or remote responses under storage key: %s"
	ErrDevSessionNotFound            = "no session record for id: %s"
	ErrDevSessionAlreadyCompleted    = "session already completed: %s"
	ErrDevScoreCalculation           = "failed to calculate scores for %s"
	ErrDevRedisSet                   = "failed to write key to redis"
	ErrDevRedisGet                   = "failed to read key from redis"
	ErrDevRedisDelete                = "failed to delete key from redis"
	ErrDevRedisPublish               = "failed to publish session update"
	ErrDevMongoDBInsertDocument      = "failed to insert document"
	ErrDevMongoDBFindDocument        = "failed to find document"
	ErrDevMongoDBUpdateDocument      = "failed to update document"
	ErrDevCannotMarshalJSON          = "failed to marshal value to JSON"
	ErrDevCannotUnmarshalJSON        = "failed to unmarshal stored JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevProgressOutOfRange         = "progress values must be non-negative and current must not exceed total"
	ErrDevGenerateSessionID          = "failed to generate session id"
	ErrDevStreamingUnsupported       = "response writer does not support flushing"
)
