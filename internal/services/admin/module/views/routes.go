package views

import (
	"net/http"

	routepath "github.com/buryatvpn/adminpanel/internal/services/admin/routepath"
)

// Service defines shell and view route handlers consumed by this route module.
type Service interface {
	HandleShell(w http.ResponseWriter, r *http.Request)
	HandleView(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires shell and view routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Root, service.HandleShell)
	mux.HandleFunc(routepath.ViewsPrefix, service.HandleView)
}
