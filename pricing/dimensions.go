package pricing

import "unicode"

// SizeTier is a named sign-size preset. The string values are what the
// storefront customizer form submits and what sign rows persist.
type SizeTier string

const (
	SizeRegular SizeTier = "regular"
	SizeMedium  SizeTier = "medium"
	SizeLarge   SizeTier = "large"
	SizeCustom  SizeTier = "custom"
)

// Manufacturing limits in inches.
const (
	MaxWidth        = 96.0
	MinCustomWidth  = 10.0
	MinCustomHeight = 10.0
	MaxCustomHeight = 48.0
)

// Dimensions is a billable sign size in inches.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LetterCount counts the characters of text excluding whitespace.
// Empty or whitespace-only text yields 0.
func LetterCount(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

// tierSpec returns the per-letter width multiplier and the fixed height for
// a derived tier. Unknown tiers behave like regular.
func tierSpec(size SizeTier) (multiplier, height float64) {
	switch size {
	case SizeMedium:
		return 4, 13
	case SizeLarge:
		return 5, 15
	default:
		return 3, 10
	}
}

// TierDimensions derives billable dimensions for the derived tiers
// (regular/medium/large): width grows per letter, height is fixed per tier,
// and width is capped at MaxWidth. Over-long text is silently capped, not
// rejected; input fields truncate separately using MaxLetters.
func TierDimensions(text string, size SizeTier) Dimensions {
	multiplier, height := tierSpec(size)

	width := float64(LetterCount(text)) * multiplier
	if width > MaxWidth {
		width = MaxWidth
	}

	return Dimensions{Width: width, Height: height}
}

// CustomDimensions clamps user-supplied custom dimensions into the
// manufacturable range. A value of exactly 0 means the field has not been
// filled in yet and passes through unchanged.
func CustomDimensions(width, height float64) Dimensions {
	if width != 0 && width < MinCustomWidth {
		width = MinCustomWidth
	}
	if width > MaxWidth {
		width = MaxWidth
	}

	if height != 0 && height < MinCustomHeight {
		height = MinCustomHeight
	}
	if height > MaxCustomHeight {
		height = MaxCustomHeight
	}

	return Dimensions{Width: width, Height: height}
}

// FinalDimensions is the single entry point callers use: custom signs take
// the user-entered size, every other tier derives from the text.
func FinalDimensions(text string, size SizeTier, customWidth, customHeight float64) Dimensions {
	if size == SizeCustom {
		return CustomDimensions(customWidth, customHeight)
	}
	return TierDimensions(text, size)
}

// MaxLetters reports how many letters fit within MaxWidth for a derived
// tier (regular 32, medium 24, large 19). Input fields use it to truncate
// typed or pasted text before it reaches the deriver.
func MaxLetters(size SizeTier) int {
	multiplier, _ := tierSpec(size)
	return int(MaxWidth / multiplier)
}
