package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	onCancel     func()
	backendURL   *widget.Entry
	checkOnStart *widget.Check
	pollEnabled  *widget.Check
	pollInterval *widget.Entry
	errorLabel   *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Canvas Smith Settings")

	backendURL := widget.NewEntry()
	backendURL.SetText(settings.BackendURL)
	backendURL.SetPlaceHolder(DefaultBackendURL)

	checkOnStart := widget.NewCheck("Check connection on start", nil)
	checkOnStart.SetChecked(settings.CheckOnStart)

	pollEnabled := widget.NewCheck("Re-check periodically", nil)
	pollEnabled.SetChecked(settings.PollEnabled)

	pollInterval := widget.NewEntry()
	pollInterval.SetText(fmt.Sprintf("%d", int(settings.PollInterval.Seconds())))

	errorLabel := widget.NewLabel("")
	errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Backend", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Backend address"),
		backendURL,
		checkOnStart,
		pollEnabled,
		container.NewHBox(widget.NewLabel("Re-check every"), pollInterval, widget.NewLabel("sec")),
		errorLabel,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(420, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:       window,
		settings:     settings,
		onSave:       onSave,
		backendURL:   backendURL,
		checkOnStart: checkOnStart,
		pollEnabled:  pollEnabled,
		pollInterval: pollInterval,
		errorLabel:   errorLabel,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.backendURL.SetText(settings.BackendURL)
	prefs.checkOnStart.SetChecked(settings.CheckOnStart)
	prefs.pollEnabled.SetChecked(settings.PollEnabled)
	prefs.pollInterval.SetText(fmt.Sprintf("%d", int(settings.PollInterval.Seconds())))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	candidate := prefs.backendURL.Text
	if err := ValidateBackendURL(candidate); err != nil {
		prefs.errorLabel.SetText(err.Error())
		prefs.errorLabel.Show()
		return
	}
	settings.BackendURL = candidate

	if seconds, ok := parsePositiveInt(prefs.pollInterval.Text); ok {
		settings.PollInterval = time.Duration(seconds) * time.Second
	}

	settings.CheckOnStart = prefs.checkOnStart.Checked
	settings.PollEnabled = prefs.pollEnabled.Checked

	prefs.errorLabel.Hide()
	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
