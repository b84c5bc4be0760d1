package controllers

import (
	"errors"
	"io"
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

type VaccinationController struct {
	Log                *zap.Logger
	VaccinationUsecase contracts.VaccinationUsecase
}

func NewVaccinationController(logger *zap.Logger, vaccinationUsecase contracts.VaccinationUsecase) *VaccinationController {
	return &VaccinationController{
		Log:                logger,
		VaccinationUsecase: vaccinationUsecase,
	}
}

func (ctrl *VaccinationController) Initialize(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "VaccinationController.Initialize")
	if !ok {
		return
	}

	request := new(requests.InitializeVaccinations)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeInitializeVaccinationsRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.VaccinationUsecase.Initialize(ctx, sessionData, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.InitializeVaccinationsSuccessMessage, response)
}

func (ctrl *VaccinationController) FindAll(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "VaccinationController.FindAll")
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.VaccinationUsecase.FindAll(ctx, sessionData)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVaccinationsSuccessMessage, response)
}

func (ctrl *VaccinationController) RequestAppointment(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "VaccinationController.RequestAppointment")
	if !ok {
		return
	}

	request := new(requests.VaccinationAppointment)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeVaccinationAppointmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.VaccinationUsecase.RequestAppointment(ctx, sessionData, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.VaccinationAppointmentSuccessMessage, response)
}

// MarkCompleted accepts an empty body, in which case the vaccination date
// defaults to today.
func (ctrl *VaccinationController) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "VaccinationController.MarkCompleted")
	if !ok {
		return
	}

	recordID := chi.URLParam(r, constvars.URLParamID)
	if recordID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}

	request := new(requests.CompleteVaccination)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil && !errors.Is(err, io.EOF) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCompleteVaccinationRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.VaccinationUsecase.MarkCompleted(ctx, sessionData, recordID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompleteVaccinationSuccessMessage, response)
}
