package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citylaw/internal/domain/types"
)

func TestSponsorshipStatus_Valid(t *testing.T) {
	for _, s := range types.SponsorshipStatuses {
		assert.True(t, s.Valid(), "status %q", s)
	}
	assert.False(t, types.SponsorshipStatus("pending").Valid())
	assert.False(t, types.SponsorshipStatus("").Valid())
	assert.False(t, types.SponsorshipStatus("Available").Valid())
}

func TestSponsorshipStatus_Label(t *testing.T) {
	assert.Equal(t, "Available", types.StatusAvailable.Label())
	assert.Equal(t, "Reserved", types.StatusReserved.Label())
	assert.Equal(t, "Sold", types.StatusSold.Label())
	assert.Equal(t, "—", types.SponsorshipStatus("").Label())
}

func TestPracticeKey_Label(t *testing.T) {
	assert.Equal(t, "personal injury", types.PracticeKey("personal_injury").Label())
	assert.Equal(t, "dui", types.PracticeDUI.Label())
}

func TestClusterFile_Sponsorship(t *testing.T) {
	setup := 250.0
	c := types.ClusterFile{
		Pricing: map[types.PracticeKey]types.Pricing{
			"dui":             {MonthlyUSD: 1500, SetupUSD: &setup},
			"personal_injury": {MonthlyUSD: 2000},
		},
		Sponsorships: map[types.PracticeKey]types.Sponsorship{
			"dui":             {Status: types.StatusSold},
			"personal_injury": {Status: types.StatusAvailable},
			"traffic":         {Status: types.StatusReserved},
		},
	}

	dui := c.Sponsorship("dui")
	assert.Equal(t, types.StatusSold, dui.Status)
	require.NotNil(t, dui.MonthlyUSD)
	assert.Equal(t, 1500.0, *dui.MonthlyUSD)
	assert.Equal(t, 250.0, dui.SetupUSD)

	pi := c.Sponsorship("personal_injury")
	assert.Equal(t, 0.0, pi.SetupUSD, "setup defaults to zero")

	traffic := c.Sponsorship("traffic")
	assert.Equal(t, types.StatusReserved, traffic.Status)
	assert.Nil(t, traffic.MonthlyUSD)

	none := c.Sponsorship("bankruptcy")
	assert.Equal(t, types.SponsorshipStatus(""), none.Status)
	assert.Nil(t, none.MonthlyUSD)

	assert.Equal(t, []types.PracticeKey{"dui", "personal_injury", "traffic"}, c.Practices())
}

func TestClusterFile_HasCity(t *testing.T) {
	c := types.ClusterFile{Cities: []types.ClusterCity{{Slug: "apex-nc"}, {Slug: "cary-nc"}}}
	assert.True(t, c.HasCity("cary-nc"))
	assert.False(t, c.HasCity("raleigh-nc"))
}

func TestCityPack_ClusterID(t *testing.T) {
	_, ok := types.CityPack{}.ClusterID()
	assert.False(t, ok)

	id, ok := types.CityPack{Cluster: &types.ClusterRef{ID: "wake-nc"}}.ClusterID()
	assert.True(t, ok)
	assert.Equal(t, types.ClusterID("wake-nc"), id)
}
