package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, 41, c.Len())
	require.Len(t, c.Groups(), 10)
	assert.Equal(t, "Wasatch Front & Canyons", c.Groups()[0].Header)

	// Every group member must resolve, and group traversal must cover the
	// whole catalog exactly once.
	total := 0
	for _, g := range c.Groups() {
		for _, name := range g.Members {
			_, ok := c.Region(name)
			assert.True(t, ok, "group %q references unknown region %q", g.Header, name)
			total++
		}
	}
	assert.Equal(t, c.Len(), total)

	ogden, ok := c.Region("Ogden")
	require.True(t, ok)
	assert.Equal(t, 41.2230, ogden.Lat)
	assert.Equal(t, -111.9738, ogden.Lon)
}

func TestNewCatalog_DuplicateRegion(t *testing.T) {
	_, err := NewCatalog(
		[]Region{{Name: "Moab"}, {Name: "Moab"}},
		[]RegionGroup{{Header: "Canyon Country", Members: []string{"Moab"}}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate region")
}

func TestNewCatalog_UnknownMember(t *testing.T) {
	_, err := NewCatalog(
		[]Region{{Name: "Moab"}},
		[]RegionGroup{{Header: "Canyon Country", Members: []string{"Moab", "Atlantis"}}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown region")
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestNewCatalog_OrphanRegion(t *testing.T) {
	_, err := NewCatalog(
		[]Region{{Name: "Moab"}, {Name: "Ogden"}},
		[]RegionGroup{{Header: "Canyon Country", Members: []string{"Moab"}}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no group")
}

func TestNewCatalog_MemberInTwoGroups(t *testing.T) {
	_, err := NewCatalog(
		[]Region{{Name: "Moab"}},
		[]RegionGroup{
			{Header: "Canyon Country", Members: []string{"Moab"}},
			{Header: "Desert", Members: []string{"Moab"}},
		},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one group")
}
