package constvars

const (
	ListQuestionnairesSuccessMessage  = "Successfully retrieved questionnaires"
	FindQuestionnaireSuccessMessage   = "Successfully retrieved questionnaire"
	SaveResponsesSuccessMessage       = "Successfully saved responses"
	FindResponsesSuccessMessage       = "Successfully retrieved responses"
	DeleteResponsesSuccessMessage     = "Successfully deleted responses"
	CalculateResultSuccessMessage     = "Successfully calculated result"
	CreateSessionSuccessMessage       = "Successfully created session"
	FindSessionSuccessMessage         = "Successfully retrieved session"
	DescribeFillSessionSuccessMessage = "Successfully resolved fill session"
	UpdateProgressSuccessMessage      = "Successfully updated progress"
	CompleteSessionSuccessMessage     = "Successfully completed session"
)
