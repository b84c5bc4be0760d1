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

type ProductController struct {
	Log            *zap.Logger
	ProductUsecase contracts.ProductUsecase
}

func NewProductController(logger *zap.Logger, productUsecase contracts.ProductUsecase) *ProductController {
	return &ProductController{
		Log:            logger,
		ProductUsecase: productUsecase,
	}
}

func (ctrl *ProductController) FindActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := newRequestContext(r)
	defer cancel()

	filter := utils.BuildProductFilterRequest(r)
	response, pagination, err := ctrl.ProductUsecase.FindActive(ctx, filter)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetProductsSuccessMessage, pagination, response)
}

func (ctrl *ProductController) FindCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ProductUsecase.FindCategories(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProductCategoriesSuccessMessage, response)
}

func (ctrl *ProductController) FindByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ProductUsecase.FindByID(ctx, productID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProductSuccessMessage, response)
}

func (ctrl *ProductController) TrackClick(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ProductUsecase.TrackClick(ctx, productID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TrackProductClickSuccessMessage, response)
}

func (ctrl *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ProductController.CreateProduct")
	if !ok {
		return
	}

	request := new(requests.CreateProduct)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateProductRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ProductUsecase.CreateProduct(ctx, sessionData, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateProductSuccessMessage, response)
}

func (ctrl *ProductController) FindMyProducts(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ProductController.FindMyProducts")
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ProductUsecase.FindMyProducts(ctx, sessionData)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProductsSuccessMessage, response)
}

func (ctrl *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ProductController.UpdateProduct")
	if !ok {
		return
	}

	productID := chi.URLParam(r, constvars.URLParamID)

	request := new(requests.UpdateProduct)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpdateProductRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ProductUsecase.UpdateProduct(ctx, sessionData, productID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProductSuccessMessage, response)
}

func (ctrl *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ProductController.DeleteProduct")
	if !ok {
		return
	}

	productID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := newRequestContext(r)
	defer cancel()

	err := ctrl.ProductUsecase.DeleteProduct(ctx, sessionData, productID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteProductSuccessMessage, nil)
}

func (ctrl *ProductController) ReviewProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, constvars.URLParamID)

	request := new(requests.ReviewProduct)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeReviewProductRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ProductUsecase.ReviewProduct(ctx, productID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReviewProductSuccessMessage, response)
}
