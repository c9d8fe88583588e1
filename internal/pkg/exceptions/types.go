package exceptions

import (
	"fmt"
	"ortoform-service/internal/pkg/constvars"
)

var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed)
	}
	ErrQuestionnaireNotFound = func(questionnaireID string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientQuestionnaireNotFound, fmt.Sprintf(constvars.ErrDevQuestionnaireNotFound, questionnaireID))
	}
	ErrQuestionnaireMisconfigured = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevQuestionnaireMisconfigured, err.Error()))
	}
	ErrNoResponsesFound = func(storageKey string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientNoResponsesFound, fmt.Sprintf(constvars.ErrDevNoResponsesFound, storageKey))
	}
	ErrSessionNotFound = func(sessionID string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientSessionNotFound, fmt.Sprintf(constvars.ErrDevSessionNotFound, sessionID))
	}
	ErrSessionAlreadyCompleted = func(sessionID string) *CustomError {
		return WrapWithoutError(constvars.StatusGone, constvars.ErrClientSessionAlreadyCompleted, fmt.Sprintf(constvars.ErrDevSessionAlreadyCompleted, sessionID))
	}
	ErrScoreCalculation = func(err error, instrumentName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientScoreCalculation, fmt.Sprintf(constvars.ErrDevScoreCalculation, instrumentName))
	}
	ErrProgressOutOfRange = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevProgressOutOfRange)
	}
	ErrServerUnableToGenerateID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevGenerateSessionID)
	}
	ErrStreamingUnsupported = func() *CustomError {
		return WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStreamingUnsupported)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotUnmarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotUnmarshalJSON)
	}
	ErrRedisSet = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrDevRedisDelete)
	}
	ErrRedisPublish = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrDevRedisPublish)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrDevMongoDBInsertDocument)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrDevMongoDBFindDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrDevMongoDBUpdateDocument)
	}
)

// wrapStoreError keeps the connectivity split: failures that look like the
// store being unreachable (commonly an ad blocker or broken network on the
// filler's device) get a distinct, actionable client message.
func wrapStoreError(err error, devMessage string) *CustomError {
	if IsConnectivityError(err) {
		return WrapWithError(err, constvars.StatusServiceUnavailable, constvars.ErrClientRemoteStoreUnreachable, devMessage)
	}
	return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, devMessage)
}
