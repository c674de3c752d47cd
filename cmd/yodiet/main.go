package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"yodiet/internal/backup"
	"yodiet/internal/cli"
	"yodiet/internal/config"
	"yodiet/internal/db"
	"yodiet/internal/logging"
	"yodiet/internal/services"
)

var CLI struct {
	Version kong.VersionFlag

	Signup        cli.SignupCmd        `cmd:"" help:"Register a new account."`
	Login         cli.LoginCmd         `cmd:"" help:"Sign in with email or username."`
	Logout        cli.LogoutCmd        `cmd:"" help:"Sign out of the current session."`
	Whoami        cli.WhoamiCmd        `cmd:"" help:"Show the logged-in user."`
	Profile       cli.ProfileCmd       `cmd:"" help:"Show or edit the profile."`
	Health        cli.HealthCmd        `cmd:"" help:"Track daily health goals."`
	Goal          cli.GoalCmd          `cmd:"" help:"Manage personal goals."`
	Meal          cli.MealCmd          `cmd:"" help:"Manage the meal catalog."`
	Export        cli.ExportCmd        `cmd:"" help:"Export progress history as CSV."`
	Backup        cli.BackupCmd        `cmd:"" help:"Snapshot or list database backups."`
	DeleteAccount cli.DeleteAccountCmd `cmd:"" help:"Delete the account and all local data."`
	ResetPassword cli.ResetPasswordCmd `cmd:"" help:"Set a temporary password for an account."`
}

func main() {
	parsed := kong.Parse(&CLI,
		kong.Name("yodiet"),
		kong.Description("Local diet and health goal tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if location, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = location
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Error: create data directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Error: create log directory: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogPath)
	defer log.Sync()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open database: %v\n", err)
		os.Exit(1)
	}
	repos := db.NewRepositories(database)

	sessions := services.NewSessionService(repos.Users, cfg.SessionSecret, cfg.SessionTTL, cfg.SessionTokenPath())
	appCtx := &cli.Context{
		Config:   cfg,
		Log:      log,
		Users:    repos.Users,
		Auth:     services.NewAuthService(repos.Users, sessions),
		Sessions: sessions,
		Profile:  services.NewProfileService(repos.Users),
		Health:   services.NewHealthService(repos.Health),
		Goals:    services.NewGoalService(repos.Goals),
		Meals:    services.NewMealService(repos.Meals),
		Settings: services.NewSettingsService(repos.Users, sessions),
		Export:   services.NewExportService(repos.Health),
		Backups:  backup.NewManager(cfg.DBPath),
	}

	if err := parsed.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
