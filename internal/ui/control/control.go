package control

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Control is a clickable element whose appearance encodes enabled state
// and pointer interaction. It has no I/O and cannot fail; its only output
// is the OnTapped callback, fired when tapped while enabled.
type Control struct {
	widget.BaseWidget

	Text     string
	OnTapped func(*fyne.PointEvent)

	variant  Variant
	size     Size
	disabled bool
	hovered  bool
	pressed  bool
}

var _ fyne.Tappable = (*Control)(nil)
var _ fyne.Disableable = (*Control)(nil)
var _ desktop.Hoverable = (*Control)(nil)
var _ desktop.Mouseable = (*Control)(nil)

// New creates a control with the given look and tap handler.
func New(text string, variant Variant, size Size, tapped func(*fyne.PointEvent)) *Control {
	control := &Control{
		Text:     text,
		OnTapped: tapped,
		variant:  variant,
		size:     size,
	}
	control.ExtendBaseWidget(control)
	return control
}

// NewPrimary creates a medium primary control, the default look.
func NewPrimary(text string, tapped func(*fyne.PointEvent)) *Control {
	return New(text, VariantPrimary, SizeMedium, tapped)
}

// Tapped emits the click callback when the control is enabled. A tap on a
// disabled control is a silent no-op.
func (control *Control) Tapped(event *fyne.PointEvent) {
	if control.disabled {
		return
	}
	if control.OnTapped != nil {
		control.OnTapped(event)
	}
}

// MouseIn marks the control hovered.
func (control *Control) MouseIn(event *desktop.MouseEvent) {
	if control.disabled {
		return
	}
	control.hovered = true
	control.Refresh()
}

// MouseMoved is required by desktop.Hoverable.
func (control *Control) MouseMoved(event *desktop.MouseEvent) {}

// MouseOut clears both hover and press. A pointer leaving the control
// must never leave it visually pressed.
func (control *Control) MouseOut() {
	control.hovered = false
	control.pressed = false
	control.Refresh()
}

// MouseDown marks the control pressed.
func (control *Control) MouseDown(event *desktop.MouseEvent) {
	if control.disabled {
		return
	}
	control.pressed = true
	control.Refresh()
}

// MouseUp clears the pressed state.
func (control *Control) MouseUp(event *desktop.MouseEvent) {
	control.pressed = false
	control.Refresh()
}

// Disable suppresses click emission and clears transient pointer state.
func (control *Control) Disable() {
	control.disabled = true
	control.hovered = false
	control.pressed = false
	control.Refresh()
}

// Enable restores click emission.
func (control *Control) Enable() {
	control.disabled = false
	control.Refresh()
}

// Disabled reports whether the control suppresses clicks.
func (control *Control) Disabled() bool {
	return control.disabled
}

// Hovered reports the transient hover state.
func (control *Control) Hovered() bool {
	return control.hovered
}

// Pressed reports the transient press state.
func (control *Control) Pressed() bool {
	return control.pressed
}

// Variant returns the visual role.
func (control *Control) Variant() Variant {
	return control.variant
}

// SizeClass returns the footprint selector. Named to avoid colliding with
// the geometry Size method every canvas object carries.
func (control *Control) SizeClass() Size {
	return control.size
}

// StyleTags returns the ordered tag set derived from the current state.
func (control *Control) StyleTags() []string {
	return StyleTags(control.variant, control.size, control.disabled, control.hovered, control.pressed)
}

// SetText updates the label text.
func (control *Control) SetText(text string) {
	control.Text = text
	control.Refresh()
}

// CreateRenderer builds the canvas objects for the control.
func (control *Control) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(palette(control.variant, control.disabled, control.hovered, control.pressed).Background)
	background.CornerRadius = 6

	label := canvas.NewText(control.Text, palette(control.variant, control.disabled, control.hovered, control.pressed).Text)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = textSize(control.size)

	return &controlRenderer{
		control:    control,
		background: background,
		label:      label,
	}
}

type controlRenderer struct {
	control    *Control
	background *canvas.Rectangle
	label      *canvas.Text
}

func (renderer *controlRenderer) Layout(size fyne.Size) {
	renderer.background.Resize(size)
	renderer.background.Move(fyne.NewPos(0, 0))

	labelSize := renderer.label.MinSize()
	renderer.label.Resize(labelSize)
	renderer.label.Move(fyne.NewPos(
		(size.Width-labelSize.Width)/2,
		(size.Height-labelSize.Height)/2,
	))
}

func (renderer *controlRenderer) MinSize() fyne.Size {
	labelSize := renderer.label.MinSize()
	pad := padding(renderer.control.size)
	return fyne.NewSize(labelSize.Width+pad.Width*2, labelSize.Height+pad.Height*2)
}

func (renderer *controlRenderer) Refresh() {
	state := renderer.control
	colors := palette(state.variant, state.disabled, state.hovered, state.pressed)

	renderer.background.FillColor = colors.Background
	renderer.background.Refresh()

	renderer.label.Text = state.Text
	renderer.label.Color = colors.Text
	renderer.label.TextSize = textSize(state.size)
	renderer.label.Refresh()
}

func (renderer *controlRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{renderer.background, renderer.label}
}

func (renderer *controlRenderer) Destroy() {}
