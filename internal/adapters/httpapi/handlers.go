package httpapi

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/kamal-hamza/gallery/internal/core/services"
)

// errorResponse is the body of every failed API call
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Could not encode response", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) imagesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	assets, err := s.catalog.Catalog(r.Context())
	if err != nil {
		s.logger.Error("Error fetching images", "error", err, "request_id", requestIDFrom(r.Context()))
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch images"})
		return
	}

	s.writeJSON(w, r, http.StatusOK, assets)
}

func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	assets, err := s.catalog.Catalog(r.Context())
	if err != nil {
		s.logger.Error("Error fetching categories", "error", err, "request_id", requestIDFrom(r.Context()))
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch categories"})
		return
	}

	s.writeJSON(w, r, http.StatusOK, services.CountByCategory(assets))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// staticHandler serves the asset root without directory listings
func staticHandler(root string) http.Handler {
	return http.FileServer(noListingFS{http.Dir(root)})
}

// noListingFS hides directories so the file server never renders an index
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
