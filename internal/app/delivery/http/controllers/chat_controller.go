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

type ChatController struct {
	Log         *zap.Logger
	ChatUsecase contracts.ChatUsecase
}

func NewChatController(logger *zap.Logger, chatUsecase contracts.ChatUsecase) *ChatController {
	return &ChatController{
		Log:         logger,
		ChatUsecase: chatUsecase,
	}
}

func (ctrl *ChatController) FindConversations(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ChatController.FindConversations")
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ChatUsecase.FindConversations(ctx, sessionData)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetConversationsSuccessMessage, response)
}

func (ctrl *ChatController) FindMessages(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ChatController.FindMessages")
	if !ok {
		return
	}

	conversationID := chi.URLParam(r, constvars.URLParamID)
	if conversationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, pagination, err := ctrl.ChatUsecase.FindMessages(ctx, sessionData, conversationID, utils.BuildChatMessageFilter(r))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetChatMessagesSuccessMessage, pagination, response)
}

func (ctrl *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ChatController.SendMessage")
	if !ok {
		return
	}

	request := new(requests.SendChatMessage)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeSendChatMessageRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ChatUsecase.SendMessage(ctx, sessionData, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SendChatMessageSuccessMessage, response)
}

func (ctrl *ChatController) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ChatController.MarkConversationRead")
	if !ok {
		return
	}

	conversationID := chi.URLParam(r, constvars.URLParamID)
	if conversationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ChatUsecase.MarkConversationRead(ctx, sessionData, conversationID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkConversationReadSuccessMessage, response)
}

func (ctrl *ChatController) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ChatController.DeleteMessage")
	if !ok {
		return
	}

	messageID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := newRequestContext(r)
	defer cancel()

	err := ctrl.ChatUsecase.DeleteMessage(ctx, sessionData, messageID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteChatMessageSuccessMessage, nil)
}

func (ctrl *ChatController) CountUnread(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "ChatController.CountUnread")
	if !ok {
		return
	}

	ctx, cancel := newRequestContext(r)
	defer cancel()

	response, err := ctrl.ChatUsecase.CountUnread(ctx, sessionData)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUnreadCountSuccessMessage, response)
}
