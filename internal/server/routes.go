package server

// registerRoutes registers all available routes. Listing, fetch-one, and
// creation are public; mutation sits behind the admin gate.
func (s *Server) registerRoutes() {
	authRoutes := s.echo.Group("/api/auth")
	authRoutes.POST("/login", s.handleLogin)
	authRoutes.GET("/verify", s.handleVerify)

	tasks := s.echo.Group("/api/tasks")
	tasks.GET("", s.handleListTasks)
	tasks.POST("", s.handleCreateTask)
	tasks.GET("/:id", s.handleGetTask)
	tasks.PUT("/:id", s.handleUpdateTask, requireAdmin(s.authService))
}
