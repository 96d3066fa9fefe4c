package main

import (
	"context"
	"fmt"
	"sync"

	"camerakitsample/internal/appinfo"
	"camerakitsample/internal/debug"
	"camerakitsample/internal/events"
	"camerakitsample/internal/services"

	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct
type App struct {
	ctx           context.Context
	DebugSettings *services.DebugSettingsService
	dbClose       func() error
	launchArgs    []string
	launchOnce    sync.Once
}

// NewApp creates a new App application struct. Deep links in launchArgs are
// applied once the frontend is ready.
func NewApp(debugSettings *services.DebugSettingsService, launchArgs []string) *App {
	return &App{DebugSettings: debugSettings, launchArgs: launchArgs}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()
	events.EnableRuntimeLogger(ctx)
}

// domReady runs after the frontend has registered its event listeners, so
// results of launch deep links are visible.
func (a *App) domReady(ctx context.Context) {
	a.launchOnce.Do(func() {
		a.DebugSettings.HandleArgs(a.launchArgs)
	})
}

// onSecondInstanceLaunch receives the arguments of a second launch, which is
// how the OS hands deep links to an already running app.
func (a *App) onSecondInstanceLaunch(data options.SecondInstanceData) {
	if a.ctx != nil {
		runtime.WindowUnminimise(a.ctx)
		runtime.Show(a.ctx)
	}
	a.DebugSettings.HandleArgs(data.Args)
}

// onUrlOpen receives deep links on macOS, where the OS delivers them as an
// open-URL event instead of launch arguments.
func (a *App) onUrlOpen(url string) {
	a.DebugSettings.HandleArgs([]string{url})
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	a.DebugSettings.Shutdown()

	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// GetAppInfo returns the bundled build and version
func (a *App) GetAppInfo() appinfo.VersionInfo {
	return a.DebugSettings.GetAppInfo()
}

// GetDebugSettings returns the current debug settings
func (a *App) GetDebugSettings() debug.Settings {
	return a.DebugSettings.Get()
}

// OpenDeepLink applies a debug deep link typed into the frontend
func (a *App) OpenDeepLink(link string) (bool, error) {
	if a.DebugSettings == nil {
		return false, fmt.Errorf("debug settings service not available")
	}
	return a.DebugSettings.OpenDeepLink(link)
}
