package calculation

import (
	"testing"

	"github.com/rgehrsitz/donorcast/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveParameters_InfersEmpiricalByEquality(t *testing.T) {
	table := domain.DefaultEmpiricalTable()
	p := domain.CampaignParameters{
		BoothDays:            100,
		DonorsPerDay:         3.5,
		AnnualDonation:       261.48,
		RetentionRatePercent: 83.0,
		BoothCostPerDay:      830,
	}

	rp := ResolveParameters(p, table)

	assert.True(t, rp.EmpiricalDonors)
	assert.True(t, rp.EmpiricalDonation)
	assert.True(t, rp.EmpiricalRetention)
	assert.Equal(t, 3.5, rp.DonorsPerDay)
	assert.Equal(t, 261.48, rp.AnnualDonation)
}

func TestResolveParameters_CallerValues(t *testing.T) {
	table := domain.DefaultEmpiricalTable()
	p := domain.CampaignParameters{
		BoothDays:            100,
		DonorsPerDay:         4.2,
		AnnualDonation:       180,
		RetentionRatePercent: 70,
		BoothCostPerDay:      830,
	}

	rp := ResolveParameters(p, table)

	assert.False(t, rp.EmpiricalDonors)
	assert.False(t, rp.EmpiricalDonation)
	assert.False(t, rp.EmpiricalRetention)
	assert.Equal(t, 4.2, rp.DonorsPerDay)
	assert.Equal(t, 180.0, rp.AnnualDonation)
	assert.Equal(t, 70.0, rp.RetentionPercent)
}

func TestResolveParameters_ToleranceBoundary(t *testing.T) {
	table := domain.DefaultEmpiricalTable()
	p := domain.CampaignParameters{DonorsPerDay: 3.50005, AnnualDonation: 261.4802, RetentionRatePercent: 83.0}

	rp := ResolveParameters(p, table)

	assert.True(t, rp.EmpiricalDonors, "within epsilon counts as empirical")
	assert.Equal(t, 3.5, rp.DonorsPerDay, "empirical mode substitutes the table mean")
	assert.False(t, rp.EmpiricalDonation, "outside epsilon keeps caller value")
}

func TestResolveParameters_ExplicitFlagsWin(t *testing.T) {
	table := domain.DefaultEmpiricalTable()

	t.Run("default value used as a plain number", func(t *testing.T) {
		p := domain.CampaignParameters{
			DonorsPerDay:         3.5,
			AnnualDonation:       261.48,
			RetentionRatePercent: 83.0,
			Empirical:            domain.Explicit(false, false, false),
		}
		rp := ResolveParameters(p, table)
		assert.False(t, rp.EmpiricalDonors)
		assert.False(t, rp.EmpiricalDonation)
		assert.False(t, rp.EmpiricalRetention)
	})

	t.Run("empirical requested for other values", func(t *testing.T) {
		p := domain.CampaignParameters{
			DonorsPerDay:         5,
			AnnualDonation:       400,
			RetentionRatePercent: 60,
			Empirical:            domain.Explicit(true, true, true),
		}
		rp := ResolveParameters(p, table)
		assert.True(t, rp.EmpiricalRetention)
		assert.Equal(t, 3.5, rp.DonorsPerDay)
		assert.Equal(t, 261.48, rp.AnnualDonation)
		assert.Equal(t, 83.0, rp.RetentionPercent)
	})
}
