package control

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Variant selects the visual role of a control.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
)

func (variant Variant) String() string {
	if variant == VariantSecondary {
		return "secondary"
	}
	return "primary"
}

// Size selects the footprint of a control.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (size Size) String() string {
	switch size {
	case SizeSmall:
		return "sm"
	case SizeLarge:
		return "lg"
	default:
		return "md"
	}
}

// StyleTags maps a full control state tuple to an ordered tag set. The
// mapping is pure: the same input always yields the same output, in the
// same order. Disabled suppresses the interaction tags entirely.
func StyleTags(variant Variant, size Size, disabled, hovered, pressed bool) []string {
	tags := []string{
		"control",
		"control-" + variant.String(),
		"control-" + size.String(),
	}
	if disabled {
		return append(tags, "disabled")
	}
	if hovered {
		tags = append(tags, "hover")
	}
	if pressed {
		tags = append(tags, "active")
	}
	return tags
}

// Palette holds the resolved colors for one control state.
type Palette struct {
	Background color.Color
	Text       color.Color
}

func palette(variant Variant, disabled, hovered, pressed bool) Palette {
	if disabled {
		return Palette{
			Background: color.NRGBA{R: 156, G: 163, B: 175, A: 255},
			Text:       color.NRGBA{R: 229, G: 231, B: 235, A: 255},
		}
	}

	if variant == VariantSecondary {
		background := color.NRGBA{R: 229, G: 231, B: 235, A: 255}
		if pressed {
			background = color.NRGBA{R: 156, G: 163, B: 175, A: 255}
		} else if hovered {
			background = color.NRGBA{R: 209, G: 213, B: 219, A: 255}
		}
		return Palette{
			Background: background,
			Text:       color.NRGBA{R: 31, G: 41, B: 55, A: 255},
		}
	}

	background := color.NRGBA{R: 37, G: 99, B: 235, A: 255}
	if pressed {
		background = color.NRGBA{R: 29, G: 78, B: 216, A: 255}
	} else if hovered {
		background = color.NRGBA{R: 59, G: 130, B: 246, A: 255}
	}
	return Palette{
		Background: background,
		Text:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func textSize(size Size) float32 {
	switch size {
	case SizeSmall:
		return 12
	case SizeLarge:
		return 18
	default:
		return 14
	}
}

func padding(size Size) fyne.Size {
	switch size {
	case SizeSmall:
		return fyne.NewSize(12, 6)
	case SizeLarge:
		return fyne.NewSize(24, 12)
	default:
		return fyne.NewSize(16, 8)
	}
}
