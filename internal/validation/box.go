package validation

// Box-volume form checks. Dimensions are in cm. Like the composite
// validators above, a missing value is not an error.

func ValidatePositiveDimensions(width, height, depth *float64) error {
	if width == nil || height == nil || depth == nil {
		return nil
	}
	if !IsPositive(*width) || !IsPositive(*height) || !IsPositive(*depth) {
		return notPositive("All dimensions")
	}
	return nil
}

// ValidatePanelThickness requires the panel to be thinner than half of
// every external dimension.
func ValidatePanelThickness(panel, extWidth, extHeight, extDepth *float64) error {
	if panel == nil || extWidth == nil || extHeight == nil || extDepth == nil {
		return nil
	}
	if !IsPositive(*panel) {
		return notPositive("Panel thickness")
	}
	if *panel >= *extWidth/2 || *panel >= *extHeight/2 || *panel >= *extDepth/2 {
		return &FieldError{Kind: ErrPanelTooThick, Field: "Panel thickness"}
	}
	return nil
}

func ValidateInternalDimensionInputs(width, height, depth, panel *float64) error {
	if err := ValidatePositiveDimensions(width, height, depth); err != nil {
		return err
	}
	if panel != nil && !IsPositive(*panel) {
		return notPositive("Panel thickness")
	}
	return nil
}

func ValidateExternalDimensionInputs(width, height, depth, panel *float64) error {
	if err := ValidatePositiveDimensions(width, height, depth); err != nil {
		return err
	}
	return ValidatePanelThickness(panel, width, height, depth)
}
