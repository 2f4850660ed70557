package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ankur09868/whatsapp-automation/internal/handler"
	"github.com/ankur09868/whatsapp-automation/internal/middleware"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Liveness check, no tenant required.
	r.Get("/health", h.HealthCheck)

	// Every API route below is tenant-scoped.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Tenant)

		r.Route("/schedule_message", func(r chi.Router) {
			r.Post("/create_schedule_message", h.CreateScheduleMessage)
			r.Get("/get_schedule_messages", h.GetScheduleMessages)
			r.Put("/update_schedule_message/{id}", h.UpdateScheduleMessage)
			r.Delete("/delete_schedule_message/{id}", h.DeleteScheduleMessage)
		})

		r.Route("/bot_details", func(r chi.Router) {
			r.Post("/add_bot_config", h.AddBotConfig)
			r.Get("/get_bot_config", h.GetBotConfig)
			r.Put("/update_bot_config/{id}", h.UpdateBotConfig)
			r.Delete("/delete_bot_config/{id}", h.DeleteBotConfig)
		})

		r.Route("/group_details", func(r chi.Router) {
			r.Get("/get_groups", h.GetGroups)
			r.Get("/get_members", h.GetMembers)
			r.Get("/get_group_details/{id}", h.GetGroupDetails)
			r.Get("/get_group_activity/{group_name}", h.GetGroupActivity)
		})

		r.Get("/dashboard", h.GetDashboard)

		r.Route("/worker", func(r chi.Router) {
			r.Get("/get-qr", h.GetQR)
			r.Post("/tracking/start", h.StartTracking)
			r.Post("/tracking/stop", h.StopTracking)
		})
	})

	return r
}
