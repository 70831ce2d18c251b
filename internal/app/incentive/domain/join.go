package domain

// UnknownBrandName is shown for programs whose brand no longer exists.
const UnknownBrandName = "Unknown Brand"

// WithBrandName resolves each program's brand id to the brand's name.
// Unresolvable ids degrade to UnknownBrandName rather than failing.
func WithBrandName(programs []Program, brands []Brand) []ProgramWithBrand {
	names := make(map[string]string, len(brands))
	for _, b := range brands {
		names[b.ID] = b.Name
	}

	out := make([]ProgramWithBrand, 0, len(programs))
	for _, p := range programs {
		name, ok := names[p.BrandID]
		if !ok {
			name = UnknownBrandName
		}
		out = append(out, ProgramWithBrand{Program: p, BrandName: name})
	}
	return out
}
