package controllers

import (
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProviderController struct {
	Log             *zap.Logger
	ProviderUsecase contracts.ProviderUsecase
}

func NewProviderController(logger *zap.Logger, providerUsecase contracts.ProviderUsecase) *ProviderController {
	return &ProviderController{
		Log:             logger,
		ProviderUsecase: providerUsecase,
	}
}

func (ctrl *ProviderController) FindProviders(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ProviderController.FindProviders")
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ProviderUsecase.FindProviders(ctx, sessionData, r.URL.Query().Get("role"))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProvidersSuccessMessage, response)
}

func (ctrl *ProviderController) FindMyMidwife(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ProviderController.FindMyMidwife")
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ProviderUsecase.FindMyMidwife(ctx, sessionData)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMyMidwifeSuccessMessage, response)
}

func (ctrl *ProviderController) AssignMidwife(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ProviderController.AssignMidwife")
	if !ok {
		return
	}

	request := new(requests.AssignMidwife)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeAssignMidwifeRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ProviderUsecase.AssignMidwife(ctx, sessionData, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AssignMidwifeSuccessMessage, response)
}
