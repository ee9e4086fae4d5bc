package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/analytics-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/analytics-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/analytics-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/analytics-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/analytics-backend-go/internal/repository/postgresql"
	analyticsService "github.com/cmlabs-hris/analytics-backend-go/internal/service/analytics"
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

	userDirectory := postgresql.NewUserDirectory(db)
	attendanceStore := postgresql.NewAttendanceStore(db)
	leaveStore := postgresql.NewLeaveStore(db)
	snapshotRunner := postgresql.NewSnapshotRunner(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	analyticsSvc := analyticsService.NewAnalyticsService(userDirectory, attendanceStore, leaveStore, snapshotRunner)

	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		analyticsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
