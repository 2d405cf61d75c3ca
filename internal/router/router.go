package routes

import (
	"net/http"

	_ "github.com/oggyb/portfolio-inbox/internal/docs" // swagger docs
	"github.com/oggyb/portfolio-inbox/internal/response"
	swaggerHandler "github.com/swaggo/http-swagger"
)

type AppDeps struct {
	Home    HomeHandler
	Contact ContactHandler
	Admin   AdminHandler

	// Metrics serves the Prometheus exposition.
	Metrics http.Handler
	// SubmitLimit wraps the public submit route.
	SubmitLimit func(http.Handler) http.Handler
	// AdminGate wraps every admin route.
	AdminGate func(http.Handler) http.Handler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type ContactHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListContacts(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteContact(w http.ResponseWriter, r *http.Request)
	Reply(w http.ResponseWriter, r *http.Request)
	TestEmail(w http.ResponseWriter, r *http.Request)
	Reconciler(w http.ResponseWriter, r *http.Request)
}

func passthrough(h http.Handler) http.Handler { return h }

func Register(mux *http.ServeMux, d AppDeps) {
	limit := d.SubmitLimit
	if limit == nil {
		limit = passthrough
	}
	gate := d.AdminGate
	if gate == nil {
		gate = passthrough
	}
	admin := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, gate(h))
	}

	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics)
	}

	mux.Handle("POST /api/contact/submit", limit(http.HandlerFunc(d.Contact.Submit)))

	admin("GET /api/admin/contacts", d.Admin.ListContacts)
	admin("GET /api/admin/stats", d.Admin.Stats)
	admin("PATCH /api/admin/contacts/{id}/status", d.Admin.UpdateStatus)
	admin("DELETE /api/admin/contacts/{id}", d.Admin.DeleteContact)
	admin("POST /api/admin/reply", d.Admin.Reply)
	admin("GET /api/admin/test-email", d.Admin.TestEmail)
	admin("POST /api/admin/reconciler", d.Admin.Reconciler)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
