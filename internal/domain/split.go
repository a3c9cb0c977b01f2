package domain

// SplitConfig bundles the three parallel per-user split maps: split name to
// its ordered exercise list, split name to a color tag, and split name to the
// muscles it covers. Split names are free text and user-renameable; a rename
// must cascade across all three maps and every stored workout.
type SplitConfig struct {
	Splits  map[string][]string `bson:"splits" json:"splits"`
	Colors  map[string]string   `bson:"colors" json:"colors"`
	Muscles map[string][]string `bson:"muscles" json:"muscles"`
}

// AvailableMuscles is the fixed catalogue a split's muscle list is chosen from.
var AvailableMuscles = []string{
	"Pecho", "Espalda", "Hombros", "Bíceps", "Tríceps", "Antebrazos",
	"Cuádriceps", "Femorales", "Glúteos", "Pantorrillas", "Abdominales", "Trapecio",
}

// DefaultSplitConfig is the three-way split seeded for a user with no stored
// configuration. The seed is written back on first load.
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{
		Splits: map[string][]string{
			"Pecho y Espalda":  {"Press Banca", "Remo con Barra", "Press Inclinado", "Dominadas", "Aperturas", "Pull Over"},
			"Hombros y Brazos": {"Press Militar", "Elevaciones Laterales", "Curl con Barra", "Press Francés", "Curl Martillo", "Extensiones Tríceps"},
			"Pierna":           {"Sentadilla", "Peso Muerto Rumano", "Prensa", "Extensiones de Cuádriceps", "Curl Femoral", "Pantorrillas"},
		},
		Colors: map[string]string{
			"Pecho y Espalda":  "orange",
			"Hombros y Brazos": "amber",
			"Pierna":           "red",
		},
		Muscles: map[string][]string{
			"Pecho y Espalda":  {"Pecho", "Espalda"},
			"Hombros y Brazos": {"Hombros", "Bíceps", "Tríceps"},
			"Pierna":           {"Cuádriceps", "Femorales", "Glúteos", "Pantorrillas"},
		},
	}
}

// IsEmpty reports whether no splits are configured (first load).
func (c SplitConfig) IsEmpty() bool {
	return len(c.Splits) == 0
}

// Clone returns a deep copy so callers can build a modified configuration
// without aliasing the maps of the original.
func (c SplitConfig) Clone() SplitConfig {
	out := SplitConfig{
		Splits:  make(map[string][]string, len(c.Splits)),
		Colors:  make(map[string]string, len(c.Colors)),
		Muscles: make(map[string][]string, len(c.Muscles)),
	}
	for name, exercises := range c.Splits {
		out.Splits[name] = append([]string(nil), exercises...)
	}
	for name, color := range c.Colors {
		out.Colors[name] = color
	}
	for name, muscles := range c.Muscles {
		out.Muscles[name] = append([]string(nil), muscles...)
	}
	return out
}
