package domain

import "fmt"

// Region is a named point-forecast location.
type Region struct {
	Name string
	Lat  float64
	Lon  float64
}

// RegionGroup is one ordered presentation section of the bulletin. Members
// reference regions by name; order is significant and fixed.
type RegionGroup struct {
	Header  string
	Members []string
}

// Catalog is the fixed, validated set of regions and their grouping. It is
// built once at startup and read-only thereafter.
type Catalog struct {
	regions map[string]Region
	groups  []RegionGroup
}

// NewCatalog builds a catalog and checks its referential integrity: region
// names are unique, every group member resolves to a region, and every
// region appears in some group.
func NewCatalog(regions []Region, groups []RegionGroup) (*Catalog, error) {
	byName := make(map[string]Region, len(regions))
	for _, r := range regions {
		if _, dup := byName[r.Name]; dup {
			return nil, fmt.Errorf("duplicate region name %q", r.Name)
		}
		byName[r.Name] = r
	}

	grouped := make(map[string]bool, len(byName))
	for _, g := range groups {
		for _, name := range g.Members {
			if _, ok := byName[name]; !ok {
				return nil, fmt.Errorf("group %q references unknown region %q", g.Header, name)
			}
			if grouped[name] {
				return nil, fmt.Errorf("region %q appears in more than one group", name)
			}
			grouped[name] = true
		}
	}
	for name := range byName {
		if !grouped[name] {
			return nil, fmt.Errorf("region %q belongs to no group", name)
		}
	}

	return &Catalog{regions: byName, groups: groups}, nil
}

// Region looks up a region by name.
func (c *Catalog) Region(name string) (Region, bool) {
	r, ok := c.regions[name]
	return r, ok
}

// Groups returns the presentation sections in bulletin order.
func (c *Catalog) Groups() []RegionGroup {
	return c.groups
}

// Len reports the number of regions in the catalog.
func (c *Catalog) Len() int {
	return len(c.regions)
}

// DefaultCatalog returns the Utah weather-net catalog: 41 regions across
// ten sections, from the Wasatch Front down to St. George.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(defaultRegions, defaultGroups)
}

var defaultRegions = []Region{
	{Name: "Salt Lake City (Wasatch Front)", Lat: 40.7608, Lon: -111.8910},
	{Name: "Bountiful/Layton", Lat: 40.8787, Lon: -111.9020},
	{Name: "Ogden", Lat: 41.2230, Lon: -111.9738},
	{Name: "Logan/Cache Valley", Lat: 41.7355, Lon: -111.8344},
	{Name: "Park City", Lat: 40.6461, Lon: -111.4980},
	{Name: "Heber/Midway", Lat: 40.5070, Lon: -111.4127},
	{Name: "Alta/Snowbird (LCC)", Lat: 40.5885, Lon: -111.6350},
	{Name: "Brighton/Solitude (BCC)", Lat: 40.6075, Lon: -111.5916},
	{Name: "Powder Mountain", Lat: 41.3789, Lon: -111.7818},
	{Name: "Snowbasin", Lat: 41.2137, Lon: -111.8573},

	{Name: "Provo/Orem", Lat: 40.2338, Lon: -111.6585},
	{Name: "Spanish Fork/Nephi", Lat: 39.7106, Lon: -111.8350},

	{Name: "Tooele/Grantsville", Lat: 40.6097, Lon: -112.4636},
	{Name: "Bonneville Salt Flats (Wendover)", Lat: 40.7377, Lon: -114.0353},

	{Name: "Mirror Lake Hwy (Uintas)", Lat: 40.6022, Lon: -110.8897},
	{Name: "Vernal/Uintah Basin", Lat: 40.4556, Lon: -109.5287},
	{Name: "Roosevelt/Duchesne", Lat: 40.2991, Lon: -110.0090},
	{Name: "Bear Lake (Garden City)", Lat: 41.9460, Lon: -111.3966},

	{Name: "Price/Helper", Lat: 39.5994, Lon: -110.8107},
	{Name: "Emery/Green River", Lat: 38.9952, Lon: -110.1587},
	{Name: "Hanksville", Lat: 38.3736, Lon: -110.7137},

	{Name: "Moab", Lat: 38.5733, Lon: -109.5498},
	{Name: "Arches National Park", Lat: 38.7331, Lon: -109.5925},
	{Name: "Canyonlands (Island in the Sky)", Lat: 38.3897, Lon: -109.8866},
	{Name: "Monticello/Blanding", Lat: 37.8714, Lon: -109.3426},
	{Name: "Bluff/Monument Valley (UT side)", Lat: 37.2890, Lon: -109.5510},

	{Name: "Torrey/Capitol Reef", Lat: 38.3006, Lon: -111.4165},
	{Name: "Boulder Mountain (Aquarius)", Lat: 38.9256, Lon: -111.5796},
	{Name: "Escalante", Lat: 37.7705, Lon: -111.6023},

	{Name: "Bryce Canyon", Lat: 37.5930, Lon: -112.1871},
	{Name: "Panguitch", Lat: 37.8225, Lon: -112.4358},
	{Name: "Duck Creek/Cedar Mtn", Lat: 37.5419, Lon: -112.6702},

	{Name: "Cedar City", Lat: 37.6775, Lon: -113.0619},
	{Name: "Zion (Springdale)", Lat: 37.2019, Lon: -112.9963},
	{Name: "Hurricane/La Verkin", Lat: 37.1753, Lon: -113.2899},
	{Name: "St. George/Washington", Lat: 37.0965, Lon: -113.5684},
	{Name: "Kanab", Lat: 37.0475, Lon: -112.5250},
	{Name: "Big Water/Lake Powell (UT)", Lat: 37.0774, Lon: -111.6505},

	{Name: "Goblin Valley", Lat: 38.5722, Lon: -110.7130},
	{Name: "San Rafael Swell (Temple Mtn)", Lat: 38.6656, Lon: -110.6621},
	{Name: "Caineville Factory Butte", Lat: 38.3750, Lon: -110.8820},
}

var defaultGroups = []RegionGroup{
	{Header: "Wasatch Front & Canyons", Members: []string{
		"Salt Lake City (Wasatch Front)", "Bountiful/Layton", "Ogden",
		"Logan/Cache Valley", "Park City", "Heber/Midway",
		"Alta/Snowbird (LCC)", "Brighton/Solitude (BCC)",
		"Powder Mountain", "Snowbasin",
	}},
	{Header: "Utah County & Central Wasatch", Members: []string{
		"Provo/Orem", "Spanish Fork/Nephi",
	}},
	{Header: "West Desert / Tooele / Salt Flats", Members: []string{
		"Tooele/Grantsville", "Bonneville Salt Flats (Wendover)",
	}},
	{Header: "Uinta Mountains & NE Utah", Members: []string{
		"Mirror Lake Hwy (Uintas)", "Vernal/Uintah Basin",
		"Roosevelt/Duchesne", "Bear Lake (Garden City)",
	}},
	{Header: "Castle Country / Central", Members: []string{
		"Price/Helper", "Emery/Green River", "Hanksville",
	}},
	{Header: "Moab & Canyon Country", Members: []string{
		"Moab", "Arches National Park", "Canyonlands (Island in the Sky)",
		"Monticello/Blanding", "Bluff/Monument Valley (UT side)",
	}},
	{Header: "Capitol Reef / Boulder Mtn / Escalante", Members: []string{
		"Torrey/Capitol Reef", "Boulder Mountain (Aquarius)", "Escalante",
	}},
	{Header: "Bryce / Panguitch / Cedar Mountain", Members: []string{
		"Bryce Canyon", "Panguitch", "Duck Creek/Cedar Mtn",
	}},
	{Header: "SW Utah / Zion / St. George", Members: []string{
		"Cedar City", "Zion (Springdale)", "Hurricane/La Verkin",
		"St. George/Washington", "Kanab", "Big Water/Lake Powell (UT)",
	}},
	{Header: "San Rafael / Dirty Devil / Remote", Members: []string{
		"Goblin Valley", "San Rafael Swell (Temple Mtn)",
		"Caineville Factory Butte",
	}},
}
