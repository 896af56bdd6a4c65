package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/attendance-insights-go/internal/config"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	appHTTP "github.com/cmlabs-hris/attendance-insights-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/aiclient"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-insights-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/attendance-insights-go/internal/service/enhance"
	insightsService "github.com/cmlabs-hris/attendance-insights-go/internal/service/insights"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	var enhancer insights.EnhanceService
	if cfg.AI.Enabled {
		insightClient := aiclient.NewClient(cfg.AI)
		enhancer = enhance.NewEnhanceService(insightClient, cfg.AI.Timeout, logger)
	}

	insightsSvc := insightsService.NewInsightsService(attendanceRepo, enhancer, logger)

	insightsHandler := appHTTP.NewInsightsHandler(insightsSvc)

	router := appHTTP.NewRouter(JWTService, insightsHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
