package styles

import "sort"

// Palette is a named, ordered set of highlight colors. The order fixes
// the rotation: phase N renders a keyword in Colors[N mod len].
type Palette struct {
	Name        string
	Description string
	Colors      []string
}

// DefaultPalette is the 9-color baseline every configuration starts
// from.
var DefaultPalette = Palette{
	Name:        "default",
	Description: "Vibrant 9-color rotation",
	Colors: []string{
		"#FF6B6B", "#FECA57", "#48DBFB",
		"#1DD1A1", "#F368E0", "#FF9FF3",
		"#54A0FF", "#5F27CD", "#01A3A4",
	},
}

// Palettes contains all built-in highlight palettes.
var Palettes = map[string]Palette{
	"default": DefaultPalette,
	"catppuccin": {
		Name:        "catppuccin",
		Description: "Catppuccin Mocha accents",
		Colors: []string{
			"#CBA6F7", "#F38BA8", "#FAB387",
			"#F9E2AF", "#A6E3A1", "#94E2D5",
			"#89B4FA", "#B4BEFE", "#F5C2E7",
		},
	},
	"nord": {
		Name:        "nord",
		Description: "Nord frost and aurora",
		Colors: []string{
			"#88C0D0", "#81A1C1", "#5E81AC",
			"#BF616A", "#D08770", "#EBCB8B",
			"#A3BE8C", "#B48EAD", "#8FBCBB",
		},
	},
	"monochrome": {
		Name:        "monochrome",
		Description: "Grays only, for quiet terminals",
		Colors: []string{
			"#FFFFFF", "#D0D0D0", "#A8A8A8", "#808080",
		},
	},
}

// PaletteNames returns the built-in palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPalette returns the named palette, falling back to the default
// for unknown names.
func LookupPalette(name string) Palette {
	if p, ok := Palettes[name]; ok {
		return p
	}
	return DefaultPalette
}
