package httpserver

func (srv *Server) mapHandlers() {
	srv.gin.Use(srv.recovery(), requestID(), srv.requestLogger())

	srv.gin.GET("/healthz", srv.healthCheck)

	api := srv.gin.Group("/api")
	timer := api.Group("/timer")
	{
		timer.POST("/start", srv.startTimer)
		timer.POST("/stop", srv.stopTimer)
		timer.POST("/switch", srv.switchTask)
		timer.GET("/status", srv.timerStatus)
	}
	entries := api.Group("/entries")
	{
		entries.GET("", srv.entriesForDate)
		entries.GET("/range", srv.entriesForRange)
		entries.GET("/:id", srv.getEntry)
		entries.PUT("/:id", srv.updateEntry)
		entries.DELETE("/:id", srv.deleteEntry)
	}
	stats := api.Group("/stats")
	{
		stats.GET("", srv.statsForDate)
		stats.GET("/range", srv.statsForRange)
	}
	api.GET("/tasks/recent", srv.recentTasks)
	api.GET("/summary", srv.trackSummary)
	api.GET("/export", srv.exportIntervals)
	api.POST("/import", srv.importIntervals)
}
