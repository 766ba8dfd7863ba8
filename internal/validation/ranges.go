package validation

// Parameter names accepted by ValidateParameter.
const (
	Frequency         = "frequency"
	F0                = "f0"
	SPL               = "spl"
	AirDensity        = "airDensity"
	Mms               = "mms"
	Re                = "re"
	Rms               = "rms"
	Kms               = "kms"
	Bl                = "bl"
	EffectiveRadius   = "effectiveRadius"
	MicDistance       = "micDistance"
	InputVoltage      = "inputVoltage"
	Power             = "power"
	VolumeResistivity = "volumeResistivity"
	LineWidth         = "lineWidth"
	LineThickness     = "lineThickness"
	LineLength        = "lineLength"
	VCWindingWidth    = "vcWindingWidth"
	PlateThickness    = "plateThickness"
	SoundSpeed        = "soundSpeed"
	TubeLength        = "tubeLength"
)

type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// Ranges is read-only after init.
var Ranges = map[string]Range{
	Frequency: {1, 100000, "Hz"},
	F0:        {1, 1000, "Hz"},

	SPL:        {0, 150, "dB"},
	AirDensity: {0.5, 2.0, "kg/m³"},

	Mms: {0.001, 1000, "g"},
	Re:  {0.001, 1000, "Ω"},
	Rms: {0.001, 1000, "kg/s"},
	Kms: {0.001, 100000, "N/mm"},
	Bl:  {0.001, 100, "N/A"},

	EffectiveRadius: {0.1, 1000, "mm"},
	MicDistance:     {0.01, 100, "m"},

	InputVoltage: {0, 1000, "V"},
	Power:        {0, 10000, "W"},

	VolumeResistivity: {1e-10, 1e10, "Ω·m"},
	LineWidth:         {0.001, 1000, "mm"},
	LineThickness:     {0.001, 1000, "mm"},
	LineLength:        {0.001, 100000, "mm"},

	VCWindingWidth: {0.01, 1000, "mm"},
	PlateThickness: {0.01, 1000, "mm"},

	SoundSpeed: {100, 1000, "m/s"},
	TubeLength: {0.1, 100000, "mm"},
}
