package statuspanel

import (
	"image/color"

	"canvassmith/internal/core/probe"
	"canvassmith/internal/ui/control"
	"canvassmith/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines panel action handlers.
type Callbacks struct {
	OnRetry       func()
	OnOpenDocs    func()
	OnPreferences func()
}

// Window is the main client window: the tri-state connectivity display
// plus the retry and docs controls.
type Window struct {
	window       fyne.Window
	statusIcon   *canvas.Image
	statusLabel  *canvas.Text
	messageLabel *canvas.Text
	checkedLabel *canvas.Text
	retry        *control.Control
	docs         *control.Control
	callbacks    Callbacks
}

// New creates the status panel window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Canvas Smith")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	titleLabel := canvas.NewText("Canvas Smith", color.NRGBA{R: 31, G: 41, B: 55, A: 255})
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 21

	statusIcon := canvas.NewImageFromResource(resources.MustIcon("status_unknown.svg"))
	statusIcon.FillMode = canvas.ImageFillContain
	statusIcon.SetMinSize(fyne.NewSize(16, 16))

	statusLabel := canvas.NewText("Not checked yet", statusColor(probe.StatusUnknown))
	statusLabel.TextStyle = fyne.TextStyle{Bold: true}
	statusLabel.TextSize = 16

	messageLabel := canvas.NewText("", color.NRGBA{R: 75, G: 85, B: 99, A: 255})
	messageLabel.TextSize = 14

	checkedLabel := canvas.NewText("", color.NRGBA{R: 156, G: 163, B: 175, A: 255})
	checkedLabel.TextSize = 12

	panel := &Window{
		window:       window,
		statusIcon:   statusIcon,
		statusLabel:  statusLabel,
		messageLabel: messageLabel,
		checkedLabel: checkedLabel,
		callbacks:    callbacks,
	}

	panel.retry = control.NewPrimary("Retry Connection", func(*fyne.PointEvent) {
		if panel.callbacks.OnRetry != nil {
			panel.callbacks.OnRetry()
		}
	})
	panel.docs = control.New("API Docs", control.VariantSecondary, control.SizeSmall, func(*fyne.PointEvent) {
		if panel.callbacks.OnOpenDocs != nil {
			panel.callbacks.OnOpenDocs()
		}
	})

	prefsButton := widget.NewButton("Settings", func() {
		if panel.callbacks.OnPreferences != nil {
			panel.callbacks.OnPreferences()
		}
	})

	content := container.NewVBox(
		titleLabel,
		container.NewHBox(statusIcon, statusLabel),
		messageLabel,
		checkedLabel,
		layout.NewSpacer(),
		container.NewHBox(panel.retry, panel.docs, layout.NewSpacer(), prefsButton),
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(380, 220))
	window.CenterOnScreen()

	return panel
}

// Show displays the panel window.
func (panel *Window) Show() {
	panel.window.Show()
	panel.window.RequestFocus()
}

// Hide conceals the panel window without destroying it.
func (panel *Window) Hide() {
	panel.window.Hide()
}

// SetCloseIntercept overrides the window close action, letting the app
// hide to the tray instead of quitting.
func (panel *Window) SetCloseIntercept(handler func()) {
	panel.window.SetCloseIntercept(handler)
}

// ApplyState renders a probe snapshot. Safe to call from any goroutine.
func (panel *Window) ApplyState(state probe.State) {
	fyne.Do(func() {
		panel.statusIcon.Resource = resources.MustIcon(statusIconName(state.Status))
		panel.statusIcon.Refresh()

		panel.statusLabel.Text = statusDescription(state)
		panel.statusLabel.Color = statusColor(state.Status)
		panel.statusLabel.Refresh()

		panel.messageLabel.Text = state.Message
		panel.messageLabel.Refresh()

		if state.LastCheckedAt.IsZero() {
			panel.checkedLabel.Text = ""
		} else {
			panel.checkedLabel.Text = "Last checked " + state.LastCheckedAt.Format("15:04:05")
		}
		panel.checkedLabel.Refresh()

		if state.Status == probe.StatusChecking {
			panel.retry.Disable()
		} else {
			panel.retry.Enable()
		}
	})
}

func statusDescription(state probe.State) string {
	switch state.Status {
	case probe.StatusChecking:
		return "Checking..."
	case probe.StatusConnected:
		if state.BackendStatus != "" {
			return "Connected (" + state.BackendStatus + ")"
		}
		return "Connected"
	case probe.StatusDisconnected:
		return "Disconnected"
	default:
		return "Not checked yet"
	}
}

func statusColor(status probe.Status) color.Color {
	switch status {
	case probe.StatusConnected:
		return color.NRGBA{R: 22, G: 163, B: 74, A: 255}
	case probe.StatusDisconnected:
		return color.NRGBA{R: 220, G: 38, B: 38, A: 255}
	case probe.StatusChecking:
		return color.NRGBA{R: 217, G: 119, B: 6, A: 255}
	default:
		return color.NRGBA{R: 107, G: 114, B: 128, A: 255}
	}
}

func statusIconName(status probe.Status) string {
	switch status {
	case probe.StatusConnected:
		return "status_connected.svg"
	case probe.StatusDisconnected:
		return "status_disconnected.svg"
	case probe.StatusChecking:
		return "status_checking.svg"
	default:
		return "status_unknown.svg"
	}
}
