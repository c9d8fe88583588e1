package constvars

const (
	URLParamQuestionnaireID = "questionnaire_id"
	URLParamSessionID       = "session_id"
)
