package api

import "time"

const shutdownTimeout = 10 * time.Second

// setupRoutes initializes all API routes
func (s *Server) setupRoutes() {
	s.router.Use(s.CORSMiddleware)
	s.router.Use(s.RequestLogMiddleware)

	r := s.router.PathPrefix("/api").Subrouter()

	// Health check endpoint
	r.HandleFunc("/health", s.handleHealthCheck).Methods("GET", "OPTIONS")

	// Workbook processing: upload in, processed workbook out
	r.HandleFunc("/process", s.handleProcessWorkbook).Methods("POST", "OPTIONS")

	// Live GIFT Nifty quote
	r.HandleFunc("/giftnifty", s.handleGiftNifty).Methods("GET", "OPTIONS")
}
