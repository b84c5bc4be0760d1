package controllers

import (
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ClinicVisitRequestController struct {
	Log                       *zap.Logger
	ClinicVisitRequestUsecase contracts.ClinicVisitRequestUsecase
}

func NewClinicVisitRequestController(logger *zap.Logger, clinicVisitRequestUsecase contracts.ClinicVisitRequestUsecase) *ClinicVisitRequestController {
	return &ClinicVisitRequestController{
		Log:                       logger,
		ClinicVisitRequestUsecase: clinicVisitRequestUsecase,
	}
}

func (ctrl *ClinicVisitRequestController) Create(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ClinicVisitRequestController.Create")
	if !ok {
		return
	}

	request := new(requests.CreateClinicVisitRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateClinicVisitRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ClinicVisitRequestUsecase.Create(ctx, sessionData, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateClinicVisitRequestSuccessMessage, response)
}

func (ctrl *ClinicVisitRequestController) FindMine(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ClinicVisitRequestController.FindMine")
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	filter := utils.BuildClinicVisitRequestFilter(r)
	response, err := ctrl.ClinicVisitRequestUsecase.FindAllByRequester(ctx, sessionData, filter)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicVisitRequestsSuccessMessage, response)
}

func (ctrl *ClinicVisitRequestController) FindByID(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ClinicVisitRequestController.FindByID")
	if !ok {
		return
	}

	requestID := chi.URLParam(r, constvars.URLParamID)
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ClinicVisitRequestUsecase.FindByID(ctx, sessionData, requestID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicVisitRequestSuccessMessage, response)
}

func (ctrl *ClinicVisitRequestController) Update(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ClinicVisitRequestController.Update")
	if !ok {
		return
	}

	requestID := chi.URLParam(r, constvars.URLParamID)
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}

	request := new(requests.UpdateClinicVisitRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpdateClinicVisitRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ClinicVisitRequestUsecase.Update(ctx, sessionData, requestID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateClinicVisitRequestSuccessMessage, response)
}

func (ctrl *ClinicVisitRequestController) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ClinicVisitRequestController.Cancel")
	if !ok {
		return
	}

	requestID := chi.URLParam(r, constvars.URLParamID)
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ClinicVisitRequestUsecase.Cancel(ctx, sessionData, requestID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelClinicVisitRequestSuccessMessage, response)
}

// FindAll is the staff queue across every requester.
func (ctrl *ClinicVisitRequestController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := newRequestContext(r)
	defer cancel()

	filter := utils.BuildClinicVisitRequestFilter(r)
	response, err := ctrl.ClinicVisitRequestUsecase.FindAll(ctx, filter)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicVisitRequestsSuccessMessage, response)
}

func (ctrl *ClinicVisitRequestController) Review(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ClinicVisitRequestController.Review")
	if !ok {
		return
	}

	requestID := chi.URLParam(r, constvars.URLParamID)
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}

	request := new(requests.ReviewClinicVisitRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeReviewClinicVisitRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ClinicVisitRequestUsecase.Review(ctx, sessionData, requestID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReviewClinicVisitRequestSuccessMessage, response)
}
