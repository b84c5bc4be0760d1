package routers

import (
	"mommycare-service/internal/app/delivery/http/controllers"
	"mommycare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Chat routes are open to every authenticated user; the chat usecase decides
// which roles and conversations the caller may touch.
func attachChatRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	providerController *controllers.ProviderController,
	chatController *controllers.ChatController,
) {
	router.Use(middlewares.Authenticate)

	router.Get("/providers", providerController.FindProviders)
	router.Get("/conversations", chatController.FindConversations)
	router.Get("/conversations/{id}/messages", chatController.FindMessages)
	router.Patch("/conversations/{id}/read", chatController.MarkConversationRead)
	router.Post("/send", chatController.SendMessage)
	router.Delete("/messages/{id}", chatController.DeleteMessage)
	router.Get("/unread-count", chatController.CountUnread)
}
