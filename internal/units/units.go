package units

// Conversions between the units the calculator forms use and SI.

func GramsToKilograms(g float64) float64 {
	return g / 1000
}

func KilogramsToGrams(kg float64) float64 {
	return kg * 1000
}

func MillimetersToMeters(mm float64) float64 {
	return mm / 1000
}

func MetersToMillimeters(m float64) float64 {
	return m * 1000
}

func CentimetersToMeters(cm float64) float64 {
	return cm / 100
}

// Thin-film forms enter resistivity in units of 10^-8 Ω·m.
const resistivityScale = 1e-8

func ResistivityToOhmMeters(r1e8 float64) float64 {
	return r1e8 * resistivityScale
}

func OhmMetersToResistivity(ohmM float64) float64 {
	return ohmM / resistivityScale
}

// NewtonPerMmToNewtonPerM converts a stiffness in N/mm to N/m.
func NewtonPerMmToNewtonPerM(k float64) float64 {
	return k * 1000
}
