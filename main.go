package main

import (
	"context"
	"embed"
	"log"
	"os"

	"camerakitsample/internal/appinfo"
	"camerakitsample/internal/database"
	"camerakitsample/internal/debug"
	"camerakitsample/internal/events"
	"camerakitsample/internal/repositories"
	"camerakitsample/internal/services"
	"camerakitsample/internal/utils"

	"github.com/wailsapp/wails/v2"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
)

//go:embed all:frontend/dist
var assets embed.FS

// appID keeps the single-instance lock stable across renames.
const appID = "com.snap.camerakit.sample"

func main() {
	if err := utils.LoadEnv(); err != nil {
		log.Printf("Warning: failed to load .env: %v", err)
	}
	cfg := utils.LoadConfig()
	info := appinfo.Bundled()

	db, err := database.Init(database.Config{
		Path:     cfg.DBPath,
		LogLevel: database.DefaultLogLevel(),
	})
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	ring, err := services.OpenKeyring(cfg)
	if err != nil {
		log.Fatalf("Error opening keyring: %v", err)
	}

	dbDefaults := services.NewDefaultsService(repositories.NewDefaultsRepository(db))
	defaults := services.NewKeyringService(ring, dbDefaults)

	store, err := debug.New(defaultGroupIDs(cfg, info), info, defaults,
		debug.WithLogger(func(format string, args ...any) { events.Logf(format, args...) }),
	)
	if err != nil {
		// An unconfigured token must never reach the camera session.
		log.Fatalf("Error loading debug settings: %v", err)
	}

	debugSettings := services.NewDebugSettingsService(store, info)
	app := NewApp(debugSettings, os.Args[1:])
	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	err = wails.Run(&options.App{
		Title:  "CameraKit Sample",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "CameraKit Sample",
		},
		Mac: &mac.Options{
			OnUrlOpen: app.onUrlOpen,
		},
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId:               appID,
			OnSecondInstanceLaunch: app.onSecondInstanceLaunch,
		},
		LogLevel:         wailslogger.INFO,
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			dbDefaults.Startup(ctx)
			debugSettings.Startup(ctx)
		},
		OnDomReady: app.domReady,
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			debugSettings,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}

// defaultGroupIDs uses CAMERAKIT_LENS_GROUPS when set, otherwise the bundled
// group followed by the bundled LensGroupId.
func defaultGroupIDs(cfg utils.Config, info appinfo.Info) []string {
	if cfg.LensGroups != nil {
		return cfg.LensGroups
	}
	groups := []string{debug.BundledGroupID}
	if id, ok := info.GroupID(); ok && id != "" {
		groups = append(groups, id)
	}
	return groups
}
