package pricing

// DiscountType selects how a discount value is interpreted. The string
// values are persisted on neon sign rows, so they must not change.
type DiscountType string

const (
	DiscountNone       DiscountType = ""
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED_AMOUNT"
)

// AreaPrice prices a sign at ratePerSquareInch currency units per square
// inch of billable area.
func AreaPrice(width, height, ratePerSquareInch float64) float64 {
	area := width * height
	return area * ratePerSquareInch
}

// ApplyDiscount reduces a gross price by the configured discount. A missing
// discount type or a non-positive value leaves the price untouched, and the
// net price never goes below zero.
func ApplyDiscount(gross float64, kind DiscountType, value float64) float64 {
	if kind == DiscountNone || value <= 0 {
		return gross
	}

	amount := value
	if kind == DiscountPercentage {
		amount = gross * (value / 100)
	}

	net := gross - amount
	if net < 0 {
		return 0
	}
	return net
}

// ProportionalPrice scales a catalog base price, defined at a minimum sign
// size, linearly by area. Incomplete input (zero minimum area, zero base
// price, or a zero target dimension) yields 0 rather than an error so that
// form previews can run on every keystroke.
func ProportionalPrice(minWidth, minHeight, basePrice, targetWidth, targetHeight float64) float64 {
	minArea := minWidth * minHeight
	targetArea := targetWidth * targetHeight

	if minArea == 0 || basePrice == 0 || targetArea == 0 {
		return 0
	}

	return (targetArea / minArea) * basePrice
}
