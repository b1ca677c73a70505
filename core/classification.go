// SPDX-License-Identifier: MIT
//
// File: classification.go
// Role: Territory classification, a closed tagged union:
//
//	Sea
//	Land ─┬─ Normal
//	      └─ SupplyCenter ─┬─ Core(owner)
//	                       └─ Neutral
//
// Zero values are valid at every level: Classification{} is Sea, a Land
// without a LandType is Normal, a SupplyCenter without an owner is Neutral.

package core

// Terrain is the top-level variant of a Classification.
type Terrain uint8

const (
	// Sea is open water.
	Sea Terrain = iota
	// Land is any land territory.
	Land
)

// String implements fmt.Stringer.
func (t Terrain) String() string {
	switch t {
	case Sea:
		return "Sea"
	case Land:
		return "Land"
	default:
		return "Terrain(?)"
	}
}

// LandType refines Land.
type LandType uint8

const (
	// Normal is an ordinary land territory.
	Normal LandType = iota
	// SupplyCenter is a land territory with strategic ownership status.
	SupplyCenter
)

// String implements fmt.Stringer.
func (l LandType) String() string {
	switch l {
	case Normal:
		return "Normal"
	case SupplyCenter:
		return "SupplyCenter"
	default:
		return "LandType(?)"
	}
}

// Classification is the immutable terrain class of a territory.
// Build it with SeaTerritory, LandTerritory, CoreCenter or NeutralCenter.
type Classification struct {
	terrain Terrain
	land    LandType
	owner   string // non-empty iff Core supply center
}

// SeaTerritory returns the Sea classification.
func SeaTerritory() Classification { return Classification{terrain: Sea} }

// LandTerritory returns the Land/Normal classification.
func LandTerritory() Classification { return Classification{terrain: Land, land: Normal} }

// CoreCenter returns a Land/SupplyCenter classification owned by owner as a home center.
// Panics on an empty owner: use NeutralCenter for unowned centers.
func CoreCenter(owner string) Classification {
	if owner == "" {
		panic("core: CoreCenter(\"\")")
	}
	return Classification{terrain: Land, land: SupplyCenter, owner: owner}
}

// NeutralCenter returns a Land/SupplyCenter classification with no owner.
func NeutralCenter() Classification {
	return Classification{terrain: Land, land: SupplyCenter}
}

// Terrain returns the top-level variant.
func (c Classification) Terrain() Terrain { return c.terrain }

// LandType returns the land refinement and false for Sea.
func (c Classification) LandType() (LandType, bool) {
	if c.terrain != Land {
		return Normal, false
	}
	return c.land, true
}

// IsSea reports whether c is Sea.
func (c Classification) IsSea() bool { return c.terrain == Sea }

// IsLand reports whether c is any Land variant.
func (c Classification) IsLand() bool { return c.terrain == Land }

// IsSupplyCenter reports whether c is a Land/SupplyCenter (Core or Neutral).
func (c Classification) IsSupplyCenter() bool {
	return c.terrain == Land && c.land == SupplyCenter
}

// IsNeutral reports whether c is a SupplyCenter without a core owner.
func (c Classification) IsNeutral() bool {
	return c.IsSupplyCenter() && c.owner == ""
}

// Owner returns the core owner of a supply center.
// ok is false for Sea, Normal land and Neutral centers.
func (c Classification) Owner() (owner string, ok bool) {
	if !c.IsSupplyCenter() || c.owner == "" {
		return "", false
	}
	return c.owner, true
}

// String renders the variant path, e.g. "Sea", "Land/Normal",
// "Land/SupplyCenter/Core(Turkey)", "Land/SupplyCenter/Neutral".
func (c Classification) String() string {
	if c.terrain != Land {
		return c.terrain.String()
	}
	if c.land != SupplyCenter {
		return "Land/" + c.land.String()
	}
	if c.owner == "" {
		return "Land/SupplyCenter/Neutral"
	}
	return "Land/SupplyCenter/Core(" + c.owner + ")"
}
