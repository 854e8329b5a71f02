package pickup

import "math"

// Base cost per service type in rupees.
var baseCosts = map[ServiceType]int64{
	ServiceLetter:   150,
	ServiceDocument: 250,
	ServicePackage:  500,
	ServiceGoods:    800,
}

// Surcharge per started kilogram.
const weightRate = 100

// Priority multipliers applied to base + weight cost.
var priorityMultipliers = map[Priority]float64{
	PriorityStandard: 1.0,
	PriorityExpress:  1.5,
	PriorityUrgent:   2.0,
}

// ComputeCost prices a pickup request from its service type, weight and
// priority. Weight is rounded up to the next whole kilogram before the
// per-kg surcharge applies, so a 0.1 kg letter carries the same weight
// surcharge as a 1.0 kg one. The final amount is rounded half away from
// zero. Pure function; weight <= 0 is rejected by validation upstream.
func ComputeCost(serviceType ServiceType, weight float64, priority Priority) (int64, error) {
	base, ok := baseCosts[serviceType]
	if !ok {
		return 0, ErrInvalidServiceType
	}

	multiplier, ok := priorityMultipliers[priority]
	if !ok {
		multiplier = priorityMultipliers[PriorityStandard]
	}

	weightCost := int64(math.Ceil(weight)) * weightRate
	return int64(math.Round(float64(base+weightCost) * multiplier)), nil
}
