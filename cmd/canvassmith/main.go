package main

import (
	"context"
	"log"
	"net/url"
	"os"

	"canvassmith/internal/core/probe"
	"canvassmith/internal/platform"
	"canvassmith/internal/storage"
	"canvassmith/internal/ui/preferences"
	"canvassmith/internal/ui/statuspanel"
	"canvassmith/internal/ui/tray"
	"canvassmith/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName   = "CanvasSmith"
	apiURLEnv = "CANVASSMITH_API_URL"
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	fyneApp := app.NewWithID("com.canvassmith.app")
	fyneApp.SetIcon(resources.MustIcon("logo.svg"))

	// The base address is resolved exactly once at startup; a changed
	// setting takes effect on the next launch.
	prober := probe.New(resolveBaseURL(settings), nil)
	ctx := context.Background()

	poller := probe.NewPoller(prober, settings.PollInterval)

	var panel *statuspanel.Window
	var prefsWindow *preferences.Window
	var trayManager *tray.Manager

	openDocs := func() {
		parsed, err := url.Parse(prober.DocsURL())
		if err != nil {
			log.Printf("docs url: %v", err)
			return
		}
		if err := fyneApp.OpenURL(parsed); err != nil {
			log.Printf("open docs: %v", err)
		}
	}

	panel = statuspanel.New(fyneApp, statuspanel.Callbacks{
		OnRetry: func() {
			prober.Check(ctx)
		},
		OnOpenDocs: openDocs,
		OnPreferences: func() {
			prefsWindow.Show()
		},
	})

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}

		poller.Stop()
		if settings.PollEnabled {
			poller = probe.NewPoller(prober, settings.PollInterval)
			poller.Start(ctx)
		}
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(resources.MustIcon("logo.svg"))
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				panel.Show()
			},
			OnCheckNow: func() {
				prober.Check(ctx)
			},
			OnOpenDocs: openDocs,
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnQuit: func() {
				poller.Stop()
				prober.Close()
				fyneApp.Quit()
			},
		})
		panel.SetCloseIntercept(func() {
			panel.Hide()
		})
	}

	events := prober.Subscribe(8)
	go func() {
		for event := range events {
			panel.ApplyState(event.State)
			if trayManager != nil {
				state := event.State
				fyne.Do(func() {
					trayManager.SetStatus(statusSummary(state))
					trayManager.SetChecking(state.Status == probe.StatusChecking)
				})
			}
		}
	}()

	if settings.PollEnabled {
		poller.Start(ctx)
	} else if settings.CheckOnStart {
		prober.Check(ctx)
	}

	panel.Show()
	fyneApp.Run()
}

func resolveBaseURL(settings preferences.Settings) string {
	if override := os.Getenv(apiURLEnv); override != "" {
		if err := preferences.ValidateBackendURL(override); err == nil {
			return override
		}
		log.Printf("ignoring invalid %s value", apiURLEnv)
	}
	return settings.BackendURL
}

func statusSummary(state probe.State) string {
	switch state.Status {
	case probe.StatusChecking:
		return "checking..."
	case probe.StatusConnected:
		if state.BackendStatus != "" {
			return state.BackendStatus
		}
		return "connected"
	case probe.StatusDisconnected:
		return "disconnected"
	default:
		return "not checked yet"
	}
}
