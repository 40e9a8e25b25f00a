package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"renthub-backend/internal/storage"
)

// RouterDeps collects everything the HTTP surface needs.
type RouterDeps struct {
	Middleware *Middleware
	Items      *ItemHandler
	Rents      *RentHandler
	Users      *UserHandler

	// LocalStorage enables the /media/images route when blob storage
	// runs in local mode. Nil with GCS.
	LocalStorage *storage.LocalStorage
}

// NewRouter wires the full API surface.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()
	router.Use(LogRequests)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	if deps.LocalStorage != nil {
		media := NewMediaHandler(deps.LocalStorage)
		router.HandleFunc("/media/images/{name}", media.ServeImage).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public auth endpoints.
	api.HandleFunc("/auth/signup", deps.Users.SignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", deps.Users.SignIn).Methods(http.MethodPost)

	// Everything else requires a verified token.
	authed := api.NewRoute().Subrouter()
	authed.Use(mux.MiddlewareFunc(deps.Middleware.Authenticate))

	authed.HandleFunc("/auth/signout", deps.Users.SignOut).Methods(http.MethodPost)
	authed.HandleFunc("/users/me", deps.Users.GetMe).Methods(http.MethodGet)

	authed.HandleFunc("/items", deps.Items.ListItems).Methods(http.MethodGet)
	authed.HandleFunc("/items/{id}", deps.Items.GetItem).Methods(http.MethodGet)

	authed.HandleFunc("/rent", deps.Rents.StartRent).Methods(http.MethodPost)
	authed.HandleFunc("/return", deps.Rents.EndRent).Methods(http.MethodPost)
	authed.HandleFunc("/rent/price", deps.Rents.PreviewPrice).Methods(http.MethodGet)
	authed.HandleFunc("/rents", deps.Rents.ListRents).Methods(http.MethodGet)

	// Admin-only catalog and user management.
	admin := authed.NewRoute().Subrouter()
	admin.Use(mux.MiddlewareFunc(deps.Middleware.RequireAdmin))

	admin.HandleFunc("/items", deps.Items.RegisterItem).Methods(http.MethodPost)
	admin.HandleFunc("/items/{id}", deps.Items.UpdateItem).Methods(http.MethodPut)
	admin.HandleFunc("/items/{id}", deps.Items.DeleteItem).Methods(http.MethodDelete)
	admin.HandleFunc("/classify", deps.Items.ClassifyImage).Methods(http.MethodPost)

	admin.HandleFunc("/users", deps.Users.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/admin", deps.Users.SetAdmin).Methods(http.MethodPut)

	return router
}
