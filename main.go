package main

import (
	"fmt"
	"os"
	"time"

	"clinicdesk/api"
	"clinicdesk/cli"
	"clinicdesk/config"
	"clinicdesk/services/admin"
	"clinicdesk/services/patient"
	"clinicdesk/services/session"
	"clinicdesk/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	client := api.NewClient(&config.AppConfig)

	store, err := newSessionStore()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize session store: %v", err)
	}

	sessionService := session.NewSessionService(client, store)
	sessionService.Initialize()

	patientService, err := patient.NewPatientService(
		client,
		config.AppConfig.DirectoryCacheSize,
		time.Duration(config.AppConfig.DirectoryCacheTTLSeconds)*time.Second,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize patient service: %v", err)
	}

	adminService := admin.NewAdminService(client, sessionService)

	app := &cli.App{
		Session: sessionService,
		Patient: patientService,
		Admin:   adminService,
	}

	if err := cli.NewRootCommand(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newSessionStore() (session.Store, error) {
	if config.AppConfig.SessionBackend == "redis" {
		return session.NewRedisStore(&config.AppConfig)
	}
	return session.NewFileStore(config.AppConfig.SessionFile)
}
