package responses

import "ortoform-service/internal/app/models"

// CreatedSession pairs the broker record with the shareable fill link that
// the initiating screen turns into a QR code.
type CreatedSession struct {
	Session  *models.FillSession `json:"session"`
	FillLink string              `json:"fillLink"`
}

// FillSessionView is what the remote filler needs to render the form.
type FillSessionView struct {
	SessionID       string                `json:"sessionId"`
	QuestionnaireID string                `json:"questionnaireId"`
	StorageKey      string                `json:"storageKey"`
	Questionnaire   *models.Questionnaire `json:"questionnaire"`
}
