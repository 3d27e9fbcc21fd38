// Package mounttype catalogs the vanilla Icarus mount types and the
// rules for rewriting a saved mount's identity properties when its
// type changes.
package mounttype

import "strings"

// Skin is one cosmetic skin variant of a mount type, selected through
// the CosmeticSkinIndex property.
type Skin struct {
	Index       int
	Name        string
	Description string
}

// MountType describes one spawnable mount class.
type MountType struct {
	// Name is the catalog key and display name.
	Name string
	// AISetup is the AISetupRowName data table row.
	AISetup string
	// Blueprint is the actor class name, with the _C suffix.
	Blueprint   string
	Description string
	// Rideable is false for companion-only creatures that can be
	// summoned but not mounted.
	Rideable bool
	Skins    []Skin
}

// The save files conflate two different "horses". Mount_Horse with
// BP_Mount_Horse_C is the Terrenus, a wild boar-horse alien tamed on
// Icarus. Mount_Horse_Standard_A1/A2/A3 with BP_Mount_Horse_Standard_C
// is the actual Earth horse unlocked through the Workshop; the A
// suffix picks its color, not a cosmetic skin index.
var catalog = []MountType{
	{
		Name:        "Terrenus",
		AISetup:     "Mount_Horse",
		Blueprint:   "BP_Mount_Horse_C",
		Description: "Wild alien creature (boar-horse hybrid). Tamed from the wild on Icarus.",
		Rideable:    true,
		Skins: []Skin{
			{0, "Default", "Orange and white coat"},
			{1, "Brown", "Solid brown coat"},
			{2, "Brown & White", "Brown and white patterned coat"},
		},
	},
	{
		Name:        "Horse",
		AISetup:     "Mount_Horse_Standard_A3",
		Blueprint:   "BP_Mount_Horse_Standard_C",
		Description: "Actual Earth horse. Unlocked via Workshop (3 color variants: A1/A2/A3).",
		Rideable:    true,
	},
	{
		Name:        "Moa",
		AISetup:     "Mount_Moa",
		Blueprint:   "BP_Mount_Moa_C",
		Description: "Fastest mount. Small inventory, two slots.",
		Rideable:    true,
	},
	{
		Name:        "ArcticMoa",
		AISetup:     "Mount_Arctic_Moa",
		Blueprint:   "BP_Mount_Arctic_Moa_C",
		Description: "Cold-resistant arctic variant of Moa.",
		Rideable:    true,
	},
	{
		Name:        "Buffalo",
		AISetup:     "Mount_Buffalo",
		Blueprint:   "BP_Mount_Buffalo_C",
		Description: "Strong, slow mount. Large carrying capacity.",
		Rideable:    true,
	},
	{
		Name:        "Tusker",
		AISetup:     "Mount_Tusker",
		Blueprint:   "BP_Mount_Tusker_C",
		Description: "Slowest but strongest. Found in arctic Styx regions.",
		Rideable:    true,
	},
	{
		Name:        "Zebra",
		AISetup:     "Mount_Zebra",
		Blueprint:   "BP_Mount_Zebra_C",
		Description: "Fast mount similar to Horse.",
		Rideable:    true,
	},
	{
		Name:        "WoolyZebra",
		AISetup:     "Mount_Zebra_Shaggy",
		Blueprint:   "BP_Mount_Wooly_Zebra_C",
		Description: "Cold-resistant woolly variant of Zebra.",
		Rideable:    true,
	},
	{
		Name:        "SwampBird",
		AISetup:     "Mount_SwampBird",
		Blueprint:   "BP_Mount_SwampBird_C",
		Description: "Swamp-dwelling bird mount.",
		Rideable:    true,
	},
	{
		Name:        "WoollyMammoth",
		AISetup:     "Mount_WoollyMammoth",
		Blueprint:   "BP_Mount_WoollyMammoth_C",
		Description: "Massive arctic mount with huge carrying capacity.",
		Rideable:    true,
	},
	{
		Name:        "BluebackDaisy",
		AISetup:     "Mount_Blueback_Daisy",
		Blueprint:   "BP_Mount_Blueback_Daisy_C",
		Description: "Companion only. Has skill tree. Summons as follower.",
	},
	{
		Name:        "MiniHippo",
		AISetup:     "Mount_MiniHippo",
		Blueprint:   "BP_Mount_MiniHippo_Quest_C",
		Description: "Companion only. No skill tree. Quest reward creature.",
	},
	// BP_Mount_Blueback_C exists in game data but spawns with 1 HP.
}

// All returns the catalog in its display order.
func All() []MountType {
	out := make([]MountType, len(catalog))
	copy(out, catalog)
	return out
}

// Get looks a mount type up by name, case-insensitively. The second
// return is false when no such type exists.
func Get(name string) (MountType, bool) {
	for _, mt := range catalog {
		if strings.EqualFold(mt.Name, name) {
			return mt, true
		}
	}
	return MountType{}, false
}

// ByAISetup finds the mount type owning an AISetupRowName value. The
// Workshop horse matches any of its A1/A2/A3 rows.
func ByAISetup(row string) (MountType, bool) {
	for _, mt := range catalog {
		if strings.EqualFold(mt.AISetup, row) {
			return mt, true
		}
	}
	if strings.HasPrefix(row, "Mount_Horse_Standard_A") {
		return Get("Horse")
	}
	return MountType{}, false
}
