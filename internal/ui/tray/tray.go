package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnCheckNow    func()
	OnOpenDocs    func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	checkItem   *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "not checked yet",
	}

	manager.statusItem = fyne.NewMenuItem("Backend: not checked yet", nil)
	manager.statusItem.Disabled = true

	manager.checkItem = fyne.NewMenuItem("Check now", func() {
		if manager.callbacks.OnCheckNow != nil {
			manager.callbacks.OnCheckNow()
		}
	})

	app.SetSystemTrayMenu(manager.buildMenu())
	return manager
}

// SetStatus updates the status label shown in the tray menu.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Backend: %s", status)
	manager.refreshMenu()
}

// SetChecking toggles the check item while a probe is in flight.
func (manager *Manager) SetChecking(checking bool) {
	manager.checkItem.Disabled = checking
	manager.refreshMenu()
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu("Canvas Smith",
		manager.statusItem,
		fyne.NewMenuItem("Open Canvas Smith", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.checkItem,
		fyne.NewMenuItem("Open API docs", func() {
			if manager.callbacks.OnOpenDocs != nil {
				manager.callbacks.OnOpenDocs()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}
