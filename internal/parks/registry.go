// Package parks holds the static park and attraction registry.
//
// The registry stands in for the metadata tables owned by the planning
// service; this subsystem only needs enough of it to resolve canonical IDs
// to provider external IDs, area tags, and capacity figures. Unknown-ID
// errors carry the full list of valid identifiers so callers can self-correct.
package parks

import (
	"fmt"
	"sort"
)

// Park describes one registered theme park.
type Park struct {
	ID           string // canonical ID, used in API paths
	ExternalID   string // live data provider entity ID
	Name         string
	Timezone     string
	OutdoorHeavy bool // predominantly outdoor attractions (weather-sensitive)
}

// Attraction describes one registered attraction.
type Attraction struct {
	ID            string // canonical ID, used in API paths
	ExternalID    string // live data provider entity ID
	ParkID        string
	Name          string
	Area          string // land / themed area tag
	RatedCapacity int    // guests per hour at full dispatch
	Popularity    int    // 1-10 editorial ranking
	Indoor        bool
}

// Registry maps canonical park IDs to parks and attraction IDs to attractions.
var parkRegistry = map[string]Park{
	"magic-kingdom": {
		ID: "magic-kingdom", ExternalID: "75ea578a-adc8-4116-a54d-dccb60765ef9",
		Name: "Magic Kingdom", Timezone: "America/New_York", OutdoorHeavy: true,
	},
	"epcot": {
		ID: "epcot", ExternalID: "47f90d2c-e191-4239-a466-5892ef59a88b",
		Name: "EPCOT", Timezone: "America/New_York", OutdoorHeavy: false,
	},
	"hollywood-studios": {
		ID: "hollywood-studios", ExternalID: "288747d1-8b4f-4a64-867e-ea7c9b27bad8",
		Name: "Disney's Hollywood Studios", Timezone: "America/New_York", OutdoorHeavy: false,
	},
	"animal-kingdom": {
		ID: "animal-kingdom", ExternalID: "1c84a229-8862-4648-9c71-378ddd2c7693",
		Name: "Disney's Animal Kingdom", Timezone: "America/New_York", OutdoorHeavy: true,
	},
}

var attractionRegistry = map[string]Attraction{
	// Magic Kingdom
	"space-mountain": {
		ID: "space-mountain", ExternalID: "9167db1d-e5e7-46da-a07f-ae30a87bc71c",
		ParkID: "magic-kingdom", Name: "Space Mountain", Area: "Tomorrowland",
		RatedCapacity: 2000, Popularity: 9, Indoor: true,
	},
	"seven-dwarfs-mine-train": {
		ID: "seven-dwarfs-mine-train", ExternalID: "8382e137-3c44-4cad-9a25-07e5b7be7d28",
		ParkID: "magic-kingdom", Name: "Seven Dwarfs Mine Train", Area: "Fantasyland",
		RatedCapacity: 1600, Popularity: 10, Indoor: false,
	},
	"pirates-of-the-caribbean": {
		ID: "pirates-of-the-caribbean", ExternalID: "f62711b4-eb49-40ca-9a9a-6cf08ef1dcbc",
		ParkID: "magic-kingdom", Name: "Pirates of the Caribbean", Area: "Adventureland",
		RatedCapacity: 3400, Popularity: 8, Indoor: true,
	},
	"haunted-mansion": {
		ID: "haunted-mansion", ExternalID: "5a2dfeed-ccbe-4cfc-8fc8-f35ae318c65e",
		ParkID: "magic-kingdom", Name: "Haunted Mansion", Area: "Liberty Square",
		RatedCapacity: 2600, Popularity: 8, Indoor: true,
	},
	"big-thunder-mountain": {
		ID: "big-thunder-mountain", ExternalID: "6f6998e8-a629-412a-a837-51133d5e5a46",
		ParkID: "magic-kingdom", Name: "Big Thunder Mountain Railroad", Area: "Frontierland",
		RatedCapacity: 2400, Popularity: 8, Indoor: false,
	},
	"jungle-cruise": {
		ID: "jungle-cruise", ExternalID: "796b0a25-c51e-456e-9bb8-50a324e301b3",
		ParkID: "magic-kingdom", Name: "Jungle Cruise", Area: "Adventureland",
		RatedCapacity: 1200, Popularity: 7, Indoor: false,
	},
	"tron-lightcycle-run": {
		ID: "tron-lightcycle-run", ExternalID: "f163ddcd-43e2-4a73-9d22-0f3c70298c4d",
		ParkID: "magic-kingdom", Name: "TRON Lightcycle / Run", Area: "Tomorrowland",
		RatedCapacity: 1700, Popularity: 10, Indoor: true,
	},

	// EPCOT
	"guardians-cosmic-rewind": {
		ID: "guardians-cosmic-rewind", ExternalID: "f4b8a420-3f9f-4a19-a7a4-3d5c4d22dbb0",
		ParkID: "epcot", Name: "Guardians of the Galaxy: Cosmic Rewind", Area: "World Discovery",
		RatedCapacity: 2100, Popularity: 10, Indoor: true,
	},
	"test-track": {
		ID: "test-track", ExternalID: "7b9ba638-42b1-4b86-b4a4-6d2e4e2bc912",
		ParkID: "epcot", Name: "Test Track", Area: "World Discovery",
		RatedCapacity: 1600, Popularity: 8, Indoor: false,
	},
	"frozen-ever-after": {
		ID: "frozen-ever-after", ExternalID: "5cd0c9ab-0532-47bc-94f3-a4467bbd06f4",
		ParkID: "epcot", Name: "Frozen Ever After", Area: "World Showcase",
		RatedCapacity: 1100, Popularity: 8, Indoor: true,
	},
	"remy-ratatouille-adventure": {
		ID: "remy-ratatouille-adventure", ExternalID: "2b94a6c5-3c9e-4e1e-8a9a-ef2c06a4a1cf",
		ParkID: "epcot", Name: "Remy's Ratatouille Adventure", Area: "World Showcase",
		RatedCapacity: 2000, Popularity: 7, Indoor: true,
	},
	"soarin": {
		ID: "soarin", ExternalID: "8f353879-d6ac-4211-9352-4029efb47c18",
		ParkID: "epcot", Name: "Soarin' Around the World", Area: "World Nature",
		RatedCapacity: 1800, Popularity: 7, Indoor: true,
	},

	// Hollywood Studios
	"rise-of-the-resistance": {
		ID: "rise-of-the-resistance", ExternalID: "34b1d70f-11c4-42df-935e-d5582c9f1a8e",
		ParkID: "hollywood-studios", Name: "Star Wars: Rise of the Resistance", Area: "Galaxy's Edge",
		RatedCapacity: 1700, Popularity: 10, Indoor: true,
	},
	"millennium-falcon": {
		ID: "millennium-falcon", ExternalID: "e9c2ae8c-ba27-4b3a-b109-41aa4a1e6514",
		ParkID: "hollywood-studios", Name: "Millennium Falcon: Smugglers Run", Area: "Galaxy's Edge",
		RatedCapacity: 1800, Popularity: 8, Indoor: true,
	},
	"slinky-dog-dash": {
		ID: "slinky-dog-dash", ExternalID: "86a41273-5f15-4b54-93b6-829f140e5161",
		ParkID: "hollywood-studios", Name: "Slinky Dog Dash", Area: "Toy Story Land",
		RatedCapacity: 1400, Popularity: 9, Indoor: false,
	},
	"tower-of-terror": {
		ID: "tower-of-terror", ExternalID: "e1d9cf7e-dcf3-4ed9-8cd9-e2d6d4aee0c8",
		ParkID: "hollywood-studios", Name: "The Twilight Zone Tower of Terror", Area: "Sunset Boulevard",
		RatedCapacity: 1700, Popularity: 9, Indoor: true,
	},
	"rock-n-roller-coaster": {
		ID: "rock-n-roller-coaster", ExternalID: "0e466489-3a2e-4406-8cde-eac1ea19f1a9",
		ParkID: "hollywood-studios", Name: "Rock 'n' Roller Coaster", Area: "Sunset Boulevard",
		RatedCapacity: 1500, Popularity: 8, Indoor: true,
	},

	// Animal Kingdom
	"flight-of-passage": {
		ID: "flight-of-passage", ExternalID: "4e7f09b6-ed6c-4f62-a5b7-f0cf5f2e8e41",
		ParkID: "animal-kingdom", Name: "Avatar Flight of Passage", Area: "Pandora",
		RatedCapacity: 1400, Popularity: 10, Indoor: true,
	},
	"navi-river-journey": {
		ID: "navi-river-journey", ExternalID: "f4bdbf0d-7e3e-4a2c-8b68-3dbb7a3d1f4e",
		ParkID: "animal-kingdom", Name: "Na'vi River Journey", Area: "Pandora",
		RatedCapacity: 1100, Popularity: 7, Indoor: true,
	},
	"expedition-everest": {
		ID: "expedition-everest", ExternalID: "6e118e37-5002-408d-9cc5-7e0d0736cd6c",
		ParkID: "animal-kingdom", Name: "Expedition Everest", Area: "Asia",
		RatedCapacity: 1900, Popularity: 8, Indoor: false,
	},
	"kilimanjaro-safaris": {
		ID: "kilimanjaro-safaris", ExternalID: "c5452d19-88c9-4c41-b546-b1e77c5bfe56",
		ParkID: "animal-kingdom", Name: "Kilimanjaro Safaris", Area: "Africa",
		RatedCapacity: 3000, Popularity: 8, Indoor: false,
	},
}

// ErrUnknownID is returned when a caller references an unregistered park or
// attraction. ValidIDs lets the API surface the full identifier list.
type ErrUnknownID struct {
	Kind     string // "park" or "attraction"
	ID       string
	ValidIDs []string
}

func (e *ErrUnknownID) Error() string {
	return fmt.Sprintf("unknown %s id %q", e.Kind, e.ID)
}

// ParkByID resolves a canonical park ID.
func ParkByID(id string) (Park, error) {
	p, ok := parkRegistry[id]
	if !ok {
		return Park{}, &ErrUnknownID{Kind: "park", ID: id, ValidIDs: ParkIDs()}
	}
	return p, nil
}

// AttractionByID resolves a canonical attraction ID.
func AttractionByID(id string) (Attraction, error) {
	a, ok := attractionRegistry[id]
	if !ok {
		return Attraction{}, &ErrUnknownID{Kind: "attraction", ID: id, ValidIDs: AttractionIDs()}
	}
	return a, nil
}

// AttractionByExternalID resolves a provider entity ID back to the registry.
func AttractionByExternalID(externalID string) (Attraction, bool) {
	for _, a := range attractionRegistry {
		if a.ExternalID == externalID {
			return a, true
		}
	}
	return Attraction{}, false
}

// ParkAttractions returns all registered attractions for a park, sorted by
// canonical ID so callers see a stable order.
func ParkAttractions(parkID string) []Attraction {
	out := make([]Attraction, 0, 8)
	for _, a := range attractionRegistry {
		if a.ParkID == parkID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllParks returns every registered park, sorted by canonical ID.
func AllParks() []Park {
	out := make([]Park, 0, len(parkRegistry))
	for _, p := range parkRegistry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ParkIDs returns the sorted list of valid park identifiers.
func ParkIDs() []string {
	ids := make([]string, 0, len(parkRegistry))
	for id := range parkRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AttractionIDs returns the sorted list of valid attraction identifiers.
func AttractionIDs() []string {
	ids := make([]string, 0, len(attractionRegistry))
	for id := range attractionRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
