package calculator

import "math"

// batteryUnitKWh is the capacity of a single battery module.
const batteryUnitKWh = 10

// BatteryInput describes the backup requirement.
type BatteryInput struct {
	DailyUsage       float64 `json:"dailyUsage"`       // kWh per day
	BackupDays       float64 `json:"backupDays"`       // days of autonomy
	DepthOfDischarge float64 `json:"depthOfDischarge"` // percent usable
	SystemVoltage    float64 `json:"systemVoltage"`    // V
}

// BatteryResult is the storage bank required.
type BatteryResult struct {
	CapacityKWh  float64 `json:"capacityKWh"`
	AmpHours     float64 `json:"ampHours"`
	BatteryCount int     `json:"batteryCount"`
}

// BatteryStorage sizes a battery bank for the backup requirement, accounting
// for the depth of discharge.
func BatteryStorage(in BatteryInput) (BatteryResult, error) {
	daily := Clamp(in.DailyUsage)
	days := Clamp(in.BackupDays)
	dod := Clamp(in.DepthOfDischarge)
	voltage := Clamp(in.SystemVoltage)

	if err := requirePositive("depthOfDischarge", dod); err != nil {
		return BatteryResult{}, err
	}
	if err := requirePositive("systemVoltage", voltage); err != nil {
		return BatteryResult{}, err
	}

	capacity := daily * days / (dod / 100)
	return BatteryResult{
		CapacityKWh:  capacity,
		AmpHours:     math.Ceil(capacity * 1000 / voltage),
		BatteryCount: int(math.Ceil(capacity / batteryUnitKWh)),
	}, nil
}

func (r BatteryResult) outputs() []Output {
	return []Output{
		decimalOutput("batteryCapacity", "Battery Capacity", "kWh", r.CapacityKWh, 2),
		integerOutput("ampHours", "Amp Hours", "Ah", r.AmpHours),
		integerOutput("batteryCount", "Batteries Needed", "", float64(r.BatteryCount)),
	}
}

var batteryDefinition = Definition{
	ID:          "battery",
	Name:        "Battery Storage",
	Description: "Size a battery bank for backup power.",
	Fields: []Field{
		{Name: "dailyUsage", Label: "Daily Usage", Unit: "kWh", Type: FieldTypeNumber, Default: 10.0},
		{Name: "backupDays", Label: "Days of Backup", Unit: "days", Type: FieldTypeNumber, Default: 1.0},
		{Name: "depthOfDischarge", Label: "Depth of Discharge", Unit: "%", Type: FieldTypeNumber, Default: 80.0},
		{Name: "systemVoltage", Label: "System Voltage", Unit: "V", Type: FieldTypeNumber, Default: 48.0},
	},
	evaluate: evaluateBattery,
}

func evaluateBattery(d Definition, v Values) ([]Output, error) {
	r, err := BatteryStorage(BatteryInput{
		DailyUsage:       v.number(d.field("dailyUsage")),
		BackupDays:       v.number(d.field("backupDays")),
		DepthOfDischarge: v.number(d.field("depthOfDischarge")),
		SystemVoltage:    v.number(d.field("systemVoltage")),
	})
	if err != nil {
		return nil, err
	}
	return r.outputs(), nil
}
