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

type MedicalReportController struct {
	Log                  *zap.Logger
	MedicalReportUsecase contracts.MedicalReportUsecase
}

func NewMedicalReportController(logger *zap.Logger, medicalReportUsecase contracts.MedicalReportUsecase) *MedicalReportController {
	return &MedicalReportController{
		Log:                  logger,
		MedicalReportUsecase: medicalReportUsecase,
	}
}

func (ctrl *MedicalReportController) FindReportedPatients(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "MedicalReportController.FindReportedPatients")
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.MedicalReportUsecase.FindReportedPatients(ctx, sessionData)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportedPatientsSuccessMessage, response)
}

func (ctrl *MedicalReportController) FindByPatient(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "MedicalReportController.FindByPatient")
	if !ok {
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.MedicalReportUsecase.FindByPatient(ctx, sessionData, patientID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalReportsSuccessMessage, response)
}

func (ctrl *MedicalReportController) FindMine(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "MedicalReportController.FindMine")
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.MedicalReportUsecase.FindMine(ctx, sessionData)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalReportsSuccessMessage, response)
}

func (ctrl *MedicalReportController) Create(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "MedicalReportController.Create")
	if !ok {
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	request, ok := ctrl.decodeReport(w, r)
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.MedicalReportUsecase.Create(ctx, sessionData, patientID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicalReportSuccessMessage, response)
}

func (ctrl *MedicalReportController) Update(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "MedicalReportController.Update")
	if !ok {
		return
	}

	reportID := chi.URLParam(r, constvars.URLParamID)
	if reportID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}

	request, ok := ctrl.decodeReport(w, r)
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.MedicalReportUsecase.Update(ctx, sessionData, reportID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMedicalReportSuccessMessage, response)
}

func (ctrl *MedicalReportController) Delete(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "MedicalReportController.Delete")
	if !ok {
		return
	}

	reportID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := newRequestContext(r)
	defer cancel()

	err := ctrl.MedicalReportUsecase.Delete(ctx, sessionData, reportID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMedicalReportSuccessMessage, nil)
}

func (ctrl *MedicalReportController) decodeReport(w http.ResponseWriter, r *http.Request) (*requests.MedicalReportContent, bool) {
	request := new(requests.MedicalReportContent)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return nil, false
	}
	utils.SanitizeMedicalReportRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil, false
	}
	return request, true
}
