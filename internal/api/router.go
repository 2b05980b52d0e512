package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/zafesys/suite/docs" // swagger docs
	"github.com/zafesys/suite/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/v1", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Post("/auth/login", h.Login)
				r.Post("/auth/technician/login", h.TechnicianLogin)
				r.Post("/webhooks/voice-agent/conversation", h.VoiceConversation)
				r.Get("/webhooks/voice-agent/status", h.VoiceWebhookStatus)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.AdminAuth)

				r.Get("/auth/me", h.Me)
				r.With(mw.RequireRole(entity.RoleAdmin)).Post("/auth/register", h.Register)

				r.Route("/users", func(r chi.Router) {
					r.Use(mw.RequireRole(entity.RoleAdmin))

					r.Get("/", h.Users)
					r.Get("/{id}", h.User)
					r.Put("/{id}", h.UpdateUser)
					r.Delete("/{id}", h.DeleteUser)
				})

				r.Route("/warehouse", func(r chi.Router) {
					r.Use(mw.RequireRole(entity.RoleWarehouse))

					r.Get("/users", h.WarehouseStaff)
					r.With(mw.NoCache).Get("/orders", h.WarehouseOrders)
					r.Get("/orders/{id}", h.WarehouseOrder)
					r.Patch("/orders/{id}/prepare", h.PrepareOrder)
					r.Patch("/orders/{id}/deliver", h.DeliverOrder)
				})

				r.Route("/leads", func(r chi.Router) {
					r.Get("/", h.Leads)
					r.Post("/", h.CreateLead)
					r.Get("/kanban", h.LeadKanban)
					r.Post("/kanban/move", h.MoveLead)
					r.Get("/stats", h.LeadStats)
					r.Get("/{id}", h.Lead)
					r.Put("/{id}", h.UpdateLead)
					r.Patch("/{id}/status", h.UpdateLeadStatus)
					r.Delete("/{id}", h.DeleteLead)
				})

				r.Route("/customers", func(r chi.Router) {
					r.With(mw.NoCache).Get("/", h.Customers)
					r.Post("/", h.CreateCustomer)
					r.Post("/from-lead/{id}", h.ConvertLead)
					r.Get("/{id}", h.Customer)
					r.Put("/{id}", h.UpdateCustomer)
					r.Delete("/{id}", h.DeleteCustomer)
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", h.Products)
					r.Post("/", h.CreateProduct)
					r.Get("/search", h.SearchProducts)
					r.Get("/low-stock", h.LowStockProducts)
					r.Get("/{id}", h.Product)
					r.Put("/{id}", h.UpdateProduct)
					r.Patch("/{id}/stock", h.SetProductStock)
					r.With(mw.RequireRole(entity.RoleAdmin)).Delete("/{id}", h.DeleteProduct)
				})

				r.Route("/inventory", func(r chi.Router) {
					r.Get("/summary", h.InventorySummary)
					r.Get("/products", h.ProductInventory)
					r.Get("/movements", h.Movements)
					r.Post("/movements", h.CreateMovement)
					r.Post("/adjust", h.AdjustStock)
				})

				r.Route("/installations", func(r chi.Router) {
					r.Get("/", h.Installations)
					r.Post("/", h.CreateInstallation)
					r.Get("/pending", h.PendingInstallations)
					r.Get("/by-date", h.InstallationsByDate)
					r.Get("/calendar", h.InstallationCalendar)
					r.Get("/stats", h.InstallationStats)
					r.Post("/quote", h.QuoteInstallation)
					r.Get("/{id}", h.Installation)
					r.Put("/{id}", h.UpdateInstallation)
					r.Delete("/{id}", h.DeleteInstallation)
					r.Patch("/{id}/status", h.UpdateInstallationStatus)
					r.Patch("/{id}/payment", h.UpdateInstallationPayment)
					r.Post("/{id}/complete", h.CompleteInstallation)
					r.Get("/{id}/timer", h.Timer)
					r.Post("/{id}/timer/start", h.StartTimer)
					r.Post("/{id}/timer/stop", h.StopTimer)
					r.Post("/{id}/media/upload-url", h.MediaUploadURL)
				})

				r.Get("/technicians", h.Technicians)
				r.Post("/technicians", h.CreateTechnician)
				r.Get("/technicians/available", h.AvailableTechnicians)
				r.With(mw.NoCache).Get("/technicians/locations/latest", h.LatestLocations)
				r.Get("/technicians/{id}", h.Technician)
				r.Put("/technicians/{id}", h.UpdateTechnician)
				r.Delete("/technicians/{id}", h.DeleteTechnician)
				r.Get("/technicians/{id}/schedule", h.TechnicianSchedule)
				r.Patch("/technicians/{id}/availability", h.SetTechnicianAvailability)
				r.Put("/technicians/{id}/pin", h.SetTechnicianPIN)
				r.Get("/technicians/{id}/locations/history", h.LocationHistory)

				r.Route("/distributors", func(r chi.Router) {
					r.Get("/", h.Distributors)
					r.Post("/", h.CreateDistributor)
					r.Get("/sales", h.Sales)
					r.Post("/sales", h.CreateSale)
					r.Get("/sales/monthly", h.MonthlySales)
					r.Put("/sales/{id}", h.UpdateSale)
					r.Delete("/sales/{id}", h.DeleteSale)
					r.Get("/{id}", h.Distributor)
					r.Put("/{id}", h.UpdateDistributor)
					r.Delete("/{id}", h.DeleteDistributor)
				})

				r.Get("/analytics/installations", h.InstallationAnalytics)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.TechnicianAuth)

				r.Post("/technicians/me/location", h.ReportLocation)

				r.Route("/tech", func(r chi.Router) {
					r.Get("/my-installations", h.MyInstallations)
					r.Get("/profile", h.MyProfile)
					r.Patch("/availability", h.SetMyAvailability)
					r.Get("/installations/{id}", h.MyInstallation)
					r.Patch("/installations/{id}/status", h.SetMyInstallationStatus)
					r.Post("/installations/{id}/confirm-payment", h.ConfirmPayment)
					r.Post("/installations/{id}/complete", h.CompleteMyInstallation)
					r.Get("/installations/{id}/timer", h.MyTimer)
					r.Post("/installations/{id}/timer/start", h.StartMyTimer)
					r.Post("/installations/{id}/timer/stop", h.StopMyTimer)
					r.Post("/installations/{id}/media/upload-url", h.MyMediaUploadURL)
				})
			})
		})
	})

	return mux
}
