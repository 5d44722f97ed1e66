package http

import (
	"net/http"
	"time"

	"rentmarket-backend/internal/security"
	"rentmarket-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the router hands to the handlers.
type Services struct {
	Items    service.RentalItemService
	Requests service.RentalRequestService
	Types    service.RentalTypeService
	Users    service.UserService
	Auth     service.AuthService
}

func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger)

	r.HandleFunc("/health-check", handleHealthCheck).Methods("GET")

	auth := NewAuthenticator(tokens)
	api := r.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	typeHandler := NewRentalTypeHandler(svcs.Types)
	api.HandleFunc("/rental-types", typeHandler.List).Methods("GET")

	itemHandler := NewRentalItemHandler(svcs.Items)
	requestHandler := NewRentalRequestHandler(svcs.Requests)
	userHandler := NewUserHandler(svcs.Users)

	// Catalog reads are public but resolve the actor when a token is sent.
	public := api.NewRoute().Subrouter()
	public.Use(auth.Resolve)
	public.HandleFunc("/rental-items", itemHandler.List).Methods("GET")
	public.HandleFunc("/rental-items/{id:[0-9]+}", itemHandler.Show).Methods("GET")

	protected := api.NewRoute().Subrouter()
	protected.Use(auth.Require)
	protected.HandleFunc("/rental-items", itemHandler.Create).Methods("POST")
	protected.HandleFunc("/rental-items/{id:[0-9]+}", itemHandler.Update).Methods("PUT")
	protected.HandleFunc("/rental-items/{id:[0-9]+}", itemHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/my/rental-items", itemHandler.ListMine).Methods("GET")

	protected.HandleFunc("/rental-requests", requestHandler.Index).Methods("GET")
	protected.HandleFunc("/rental-requests", requestHandler.Submit).Methods("POST")
	protected.HandleFunc("/rental-requests/{id:[0-9]+}", requestHandler.Show).Methods("GET")
	protected.HandleFunc("/rental-requests/{id:[0-9]+}", requestHandler.Respond).Methods("PUT")

	protected.HandleFunc("/users/me", userHandler.Me).Methods("GET")
	protected.HandleFunc("/users/me", userHandler.UpdateMe).Methods("PUT")

	return r
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
