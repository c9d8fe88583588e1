package catalog

import (
	"net/http"
	"ortoform-service/internal/pkg/constvars"
	"ortoform-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) ListQuestionnaires(w http.ResponseWriter, r *http.Request) {
	summaries := ctrl.CatalogUsecase.ListQuestionnaires()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListQuestionnairesSuccessMessage, summaries)
}

func (ctrl *CatalogController) FindQuestionnaireByID(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)

	questionnaire, err := ctrl.CatalogUsecase.FindQuestionnaireByID(questionnaireID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindQuestionnaireSuccessMessage, questionnaire)
}
