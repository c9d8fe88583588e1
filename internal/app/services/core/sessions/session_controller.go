package sessions

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ortoform-service/internal/pkg/constvars"
	"ortoform-service/internal/pkg/dto/requests"
	"ortoform-service/internal/pkg/exceptions"
	"ortoform-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase SessionUsecase
}

func NewSessionController(logger *zap.Logger, sessionUsecase SessionUsecase) *SessionController {
	return &SessionController{
		Log:            logger,
		SessionUsecase: sessionUsecase,
	}
}

func (ctrl *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSession)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := ctrl.SessionUsecase.CreateSession(ctx, request.QuestionnaireID, request.Title)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSessionSuccessMessage, created)
}

func (ctrl *SessionController) FindSessionByID(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := ctrl.SessionUsecase.FindSessionByID(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindSessionSuccessMessage, session)
}

// StreamSessionEvents pushes session record snapshots to the initiating
// screen over SSE until the session completes or the client disconnects.
// No request timeout here: the connection is expected to stay open while
// the patient fills the form on the other device.
func (ctrl *SessionController) StreamSessionEvents(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrStreamingUnsupported())
		return
	}

	updates, stop, err := ctrl.SessionUsecase.SubscribeSession(r.Context(), sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer stop()

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextEventStream)
	w.Header().Set(constvars.HeaderCacheControl, "no-cache")
	w.Header().Set(constvars.HeaderConnection, "keep-alive")
	w.WriteHeader(constvars.StatusOK)
	flusher.Flush()

	for {
		select {
		case session, open := <-updates:
			if !open {
				return
			}
			payload, err := json.Marshal(session)
			if err != nil {
				ctrl.Log.Error("failed to marshal session event",
					zap.String(constvars.LoggingSessionIDKey, sessionID),
					zap.Error(err),
				)
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}
