package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5))
	assert.Equal(t, 0.0, Clamp(math.NaN()))
	assert.Equal(t, 0.0, Clamp(0))
	assert.Equal(t, 12.5, Clamp(12.5))
}

func TestSavings(t *testing.T) {
	t.Run("Typical Bill", func(t *testing.T) {
		r, err := Savings(SavingsInput{MonthlyBill: 3000, SunHours: 5, ElectricityRate: 8, Efficiency: 50})
		require.NoError(t, err)
		assert.InDelta(t, 1500.0, r.MonthlySavings, 1e-9)
		assert.InDelta(t, 18000.0, r.AnnualSavings, 1e-9)
		assert.InDelta(t, 450000.0, r.LifetimeSavings, 1e-9)
		// 375 kWh a month is 12.5 kWh a day
		assert.InDelta(t, 5.0, r.SystemSizeKW, 1e-9)

		outputs := r.outputs()
		require.Len(t, outputs, 4)
		assert.Equal(t, "1,500", outputs[0].Display)
		assert.Equal(t, "18,000", outputs[1].Display)
		assert.Equal(t, "4,50,000", outputs[2].Display)
		assert.Equal(t, "5.00", outputs[3].Display)
	})

	t.Run("Negative Bill Clamped", func(t *testing.T) {
		r, err := Savings(SavingsInput{MonthlyBill: -3000, SunHours: 5, ElectricityRate: 8, Efficiency: 80})
		require.NoError(t, err)
		assert.Equal(t, SavingsResult{}, r)
	})

	t.Run("Zero Divisors", func(t *testing.T) {
		_, err := Savings(SavingsInput{MonthlyBill: 3000, SunHours: 5, ElectricityRate: 0, Efficiency: 80})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorContains(t, err, "electricityRate")

		_, err = Savings(SavingsInput{MonthlyBill: 3000, SunHours: -1, ElectricityRate: 8, Efficiency: 80})
		assert.ErrorContains(t, err, "sunHours")

		_, err = Savings(SavingsInput{MonthlyBill: 3000, SunHours: 5, ElectricityRate: 8})
		assert.ErrorContains(t, err, "efficiency")
	})
}

func TestPanelSize(t *testing.T) {
	t.Run("Rounds Panels Up", func(t *testing.T) {
		r, err := PanelSize(PanelSizeInput{MonthlyUsage: 300, SunHours: 5, PanelWattage: 400, SystemLosses: 14})
		require.NoError(t, err)
		assert.Equal(t, 6, r.NumberOfPanels)
		assert.InDelta(t, 2.4, r.SystemSizeKW, 1e-9)
		assert.Equal(t, 105.0, r.RoofAreaSqFt)

		outputs := r.outputs()
		assert.Equal(t, "6", outputs[0].Display)
		assert.Equal(t, "2.40", outputs[1].Display)
		assert.Equal(t, "105", outputs[2].Display)
	})

	t.Run("Roof Area Rounded Up", func(t *testing.T) {
		r, err := PanelSize(PanelSizeInput{MonthlyUsage: 150, SunHours: 5, PanelWattage: 1000, SystemLosses: 0})
		require.NoError(t, err)
		assert.Equal(t, 1, r.NumberOfPanels)
		assert.Equal(t, 18.0, r.RoofAreaSqFt)
	})

	t.Run("No Usage", func(t *testing.T) {
		r, err := PanelSize(PanelSizeInput{MonthlyUsage: 0, SunHours: 5, PanelWattage: 400, SystemLosses: 14})
		require.NoError(t, err)
		assert.Equal(t, 0, r.NumberOfPanels)
	})

	t.Run("Total Losses", func(t *testing.T) {
		_, err := PanelSize(PanelSizeInput{MonthlyUsage: 300, SunHours: 5, PanelWattage: 400, SystemLosses: 100})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Zero Wattage", func(t *testing.T) {
		_, err := PanelSize(PanelSizeInput{MonthlyUsage: 300, SunHours: 5, SystemLosses: 14})
		assert.ErrorContains(t, err, "panelWattage")
	})
}

func TestBatteryStorage(t *testing.T) {
	t.Run("One Day Backup", func(t *testing.T) {
		r, err := BatteryStorage(BatteryInput{DailyUsage: 10, BackupDays: 1, DepthOfDischarge: 80, SystemVoltage: 48})
		require.NoError(t, err)
		assert.InDelta(t, 12.5, r.CapacityKWh, 1e-9)
		assert.Equal(t, 261.0, r.AmpHours)
		assert.Equal(t, 2, r.BatteryCount)
		assert.Equal(t, "12.50", r.outputs()[0].Display)
	})

	t.Run("Exact Module Multiple", func(t *testing.T) {
		r, err := BatteryStorage(BatteryInput{DailyUsage: 10, BackupDays: 2, DepthOfDischarge: 100, SystemVoltage: 24})
		require.NoError(t, err)
		assert.Equal(t, 2, r.BatteryCount)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := BatteryStorage(BatteryInput{DailyUsage: 10, BackupDays: 1, DepthOfDischarge: 0, SystemVoltage: 48})
		assert.ErrorContains(t, err, "depthOfDischarge")
		_, err = BatteryStorage(BatteryInput{DailyUsage: 10, BackupDays: 1, DepthOfDischarge: 80, SystemVoltage: -12})
		assert.ErrorContains(t, err, "systemVoltage")
	})
}

func TestROI(t *testing.T) {
	t.Run("With Subsidy", func(t *testing.T) {
		r, err := ROI(ROIInput{SystemCost: 250000, AnnualSavings: 36000, TaxCredit: 30, MaintenanceCost: 2000})
		require.NoError(t, err)
		assert.InDelta(t, 175000.0/34000.0, r.PaybackYears, 1e-9)
		assert.InDelta(t, 675000.0, r.NetSavings, 1e-9)
		assert.InDelta(t, 675000.0/175000.0*100, r.ROIPercentage, 1e-9)

		outputs := r.outputs()
		assert.Equal(t, "5.1", outputs[0].Display)
		assert.Equal(t, "6,75,000", outputs[1].Display)
		assert.Equal(t, "385.7", outputs[2].Display)
	})

	t.Run("Full Subsidy", func(t *testing.T) {
		_, err := ROI(ROIInput{SystemCost: 250000, AnnualSavings: 36000, TaxCredit: 100})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Maintenance Eats Savings", func(t *testing.T) {
		_, err := ROI(ROIInput{SystemCost: 250000, AnnualSavings: 2000, MaintenanceCost: 2000})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorContains(t, err, "maintenanceCost")
	})

	t.Run("Never Pays Back", func(t *testing.T) {
		r, err := ROI(ROIInput{SystemCost: 100000, AnnualSavings: 1000, MaintenanceCost: 2000})
		require.NoError(t, err)
		assert.InDelta(t, -100.0, r.PaybackYears, 1e-9)
		assert.InDelta(t, -125000.0, r.NetSavings, 1e-9)
		assert.InDelta(t, -125.0, r.ROIPercentage, 1e-9)

		outputs := r.outputs()
		assert.Equal(t, "-100.0", outputs[0].Display)
		assert.Equal(t, "-1,25,000", outputs[1].Display)
		assert.Equal(t, "-125.0", outputs[2].Display)
	})
}

func TestCarbonOffset(t *testing.T) {
	t.Run("Coal", func(t *testing.T) {
		r, err := CarbonOffset(CarbonInput{MonthlyProduction: 600, SystemLife: 25, GridSource: GridSourceCoal})
		require.NoError(t, err)
		assert.InDelta(t, 7.92, r.AnnualCO2Tons, 1e-9)
		assert.InDelta(t, 198.0, r.LifetimeCO2Tons, 1e-9)
		assert.Equal(t, 9167, r.TreesPlanted)
		assert.Equal(t, "7.9", r.outputs()[0].Display)
		assert.Equal(t, "9,167", r.outputs()[2].Display)
	})

	t.Run("Natural Gas", func(t *testing.T) {
		r, err := CarbonOffset(CarbonInput{MonthlyProduction: 600, SystemLife: 25, GridSource: GridSourceNaturalGas})
		require.NoError(t, err)
		assert.InDelta(t, 3.24, r.AnnualCO2Tons, 1e-9)
		assert.Equal(t, 3750, r.TreesPlanted)
	})

	t.Run("Unknown Source Is Mixed", func(t *testing.T) {
		r, err := CarbonOffset(CarbonInput{MonthlyProduction: 600, SystemLife: 25, GridSource: "hydro"})
		require.NoError(t, err)
		assert.InDelta(t, 5.4, r.AnnualCO2Tons, 1e-9)
	})

	assert.Equal(t, 1.5, GridSourceMixed.CO2PerKWh())
}
