package thinfilm

// Material is a named conductor with its resistivity in ×10⁻⁸ Ω·m.
type Material struct {
	Name        string  `json:"name"`
	NameJa      string  `json:"nameJa"`
	Resistivity float64 `json:"resistivity"`
}

// Materials is sorted by resistivity. Values are defaults only.
var Materials = []Material{
	{"Silver", "銀", 1.6},
	{"Copper", "銅", 1.7},
	{"Gold", "金", 2.4},
	{"Aluminium", "アルミニウム", 2.8},
	{"Magnesium", "マグネシウム", 4.5},
	{"Molybdenum", "モリブデン", 5.3},
	{"Tungsten", "タングステン", 5.6},
	{"Beryllium", "ベリリウム", 6.1},
	{"Brass 70-30", "ブラス 70-30", 6.3},
	{"Nickel", "ニッケル", 6.9},
	{"Mercury", "水銀", 9.7},
	{"Platinum", "プラチナ", 9.9},
	{"Iron", "鉄", 10.2},
	{"Tin", "すず", 11.4},
	{"Chromium", "クロム", 12.7},
	{"Steel, Low C", "スチール 低C", 12.7},
	{"Steel, 1.0 C", "スチール 1.0C", 18.8},
	{"Lead", "鉛", 20.8},
	{"Uranium", "ウラン", 32.0},
	{"Antimony", "アンチモニー", 39.4},
	{"Zirconium", "ジルコニウム", 40.6},
	{"Monel", "モネル", 44.2},
	{"Titanium", "チタン", 53.3},
	{"Stainless Steel 410", "SUS 410", 62.2},
	{"Stainless Steel Nonmagnetic", "ステンレス 非磁性", 73.7},
	{"Nichrome", "ニクロム", 108.0},
	{"Manganese", "マンガン", 185.4},
	{"Carbon", "カーボン", 3352.8},
}

// FindMaterial matches an English or Japanese name.
func FindMaterial(name string) (Material, bool) {
	for _, m := range Materials {
		if m.Name == name || m.NameJa == name {
			return m, true
		}
	}
	return Material{}, false
}
