// SPDX-License-Identifier: MIT
// Package: territory/builder
//
// impl_turkey.go — sample maps around Turkey.
//
//	Turkey():       3 Turkish home centers, fully connected (3 edges).
//	TurkeyRegion(): 8 territories, 14 borders.

package builder

import "github.com/katalvlaran/territory/core"

// Territory names used by the sample maps.
const (
	Constantinople = "Constantinople"
	Ankara         = "Ankara"
	Smyrna         = "Smyrna"
	Sevastopol     = "Sevastopol"
	BlackSea       = "Black Sea"
	EasternMed     = "Eastern Mediterranean"
	Armenia        = "Armenia"
	Syria          = "Syria"
)

// Powers owning home centers in the sample maps.
const (
	PowerTurkey = "Turkey"
	PowerRussia = "Russia"
)

// turkishCenters registers the three Turkish home centers.
func turkishCenters() Constructor {
	return Compose(
		Territory(Constantinople, core.CoreCenter(PowerTurkey)),
		Territory(Smyrna, core.CoreCenter(PowerTurkey)),
		Territory(Ankara, core.CoreCenter(PowerTurkey)),
	)
}

// Turkey returns a Constructor for the 3-node Turkey map:
// Constantinople, Ankara and Smyrna, every pair adjacent.
func Turkey() Constructor {
	return Compose(
		turkishCenters(),
		Clique(Constantinople, Ankara, Smyrna),
	)
}

// RegionBorders lists the borders of TurkeyRegion in insertion order.
var RegionBorders = [][2]string{
	{Constantinople, Ankara},
	{Constantinople, Smyrna},
	{Constantinople, BlackSea},

	{Ankara, BlackSea},
	{Ankara, Smyrna},
	{Ankara, Armenia},

	{Smyrna, EasternMed},
	{Smyrna, Armenia},
	{Smyrna, Syria},

	{Sevastopol, BlackSea},
	{Sevastopol, Armenia},

	{EasternMed, Syria},
	{BlackSea, Armenia},
	{Armenia, Syria},
}

// TurkeyRegion returns a Constructor for the 8-node map around Turkey:
// the Turkish centers, Sevastopol (Russian home center), the Black Sea and
// the Eastern Mediterranean, and the inland provinces Armenia and Syria.
func TurkeyRegion() Constructor {
	borders := append([][2]string(nil), RegionBorders...)

	return Compose(
		turkishCenters(),
		Territory(Sevastopol, core.CoreCenter(PowerRussia)),
		Territory(BlackSea, core.SeaTerritory()),
		Territory(EasternMed, core.SeaTerritory()),
		Territory(Armenia, core.LandTerritory()),
		Territory(Syria, core.LandTerritory()),
		Borders(borders...),
	)
}
