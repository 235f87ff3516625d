package models

// Department identifies a city department represented by an agent.
type Department string

const (
	// DepartmentEnergy manages the city's power generation and grid.
	DepartmentEnergy Department = "Energy"
	// DepartmentTransportation manages transit, roads, and mobility.
	DepartmentTransportation Department = "Transportation"
	// DepartmentHousing manages housing and urban development.
	DepartmentHousing Department = "Housing"
	// DepartmentWaste manages waste collection and diversion.
	DepartmentWaste Department = "Waste"
	// DepartmentWater manages water supply and watershed health.
	DepartmentWater Department = "Water"
	// DepartmentEconomicDev manages business growth and jobs.
	DepartmentEconomicDev Department = "EconomicDevelopment"
	// DepartmentMayor is the decision-maker's office.
	DepartmentMayor Department = "Mayor"
	// DepartmentCitizens represents organized citizen groups.
	DepartmentCitizens Department = "Citizens"
)

// AllDepartments lists every department in roster order.
func AllDepartments() []Department {
	return []Department{
		DepartmentMayor,
		DepartmentEnergy,
		DepartmentTransportation,
		DepartmentHousing,
		DepartmentWaste,
		DepartmentWater,
		DepartmentEconomicDev,
		DepartmentCitizens,
	}
}

// Valid returns true if the department is a known value.
func (d Department) Valid() bool {
	switch d {
	case DepartmentEnergy, DepartmentTransportation, DepartmentHousing,
		DepartmentWaste, DepartmentWater, DepartmentEconomicDev,
		DepartmentMayor, DepartmentCitizens:
		return true
	default:
		return false
	}
}
