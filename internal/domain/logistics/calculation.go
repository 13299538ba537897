package logistics

import (
	"fmt"
	"math"

	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

// volumetricDivisor converts cubic meters to chargeable kilograms. Carriers
// bill the greater of actual and volumetric weight.
const volumetricDivisor = 167.0

// insuranceRate is applied to the freight cost, not the declared cargo value.
const insuranceRate = 0.04

// Shipment describes one consignment to be priced.
type Shipment struct {
	From     string
	To       string
	Method   string
	WeightKg float64
	VolumeM3 float64
}

// Calculation is the priced, scheduled result for one shipment. Ephemeral:
// only the ordering decision it informs is persisted.
type Calculation struct {
	Route  *Route
	Method Method

	ChargeableKg float64

	TransitDays   float64
	ClearanceDays float64
	TotalDays     float64
	Inspected     bool

	FreightCost   float64
	InsuranceCost float64
	HandlingCost  float64
	TotalCost     float64

	OnTimeProbability float64
	ExpectedDelayDays float64
}

// Calculate prices and schedules one shipment. The customs inspection delay
// is probability-gated and must draw from the shared engine context so a
// round replays identically.
func Calculate(catalog *Catalog, s Shipment, ctx *shared.EngineContext) (*Calculation, error) {
	if s.WeightKg <= 0 || s.VolumeM3 < 0 {
		return nil, fmt.Errorf("weight %.1fkg volume %.2fm3: %w", s.WeightKg, s.VolumeM3, ErrInvalidShipment)
	}

	route, err := catalog.Find(s.From, s.To)
	if err != nil {
		return nil, err
	}
	method, err := route.Method(s.Method)
	if err != nil {
		return nil, err
	}

	chargeable := math.Max(s.WeightKg, s.VolumeM3*volumetricDivisor)

	transit := route.BaseLeadDays * method.TimeMultiplier

	clearance := route.ClearanceBaseDays
	inspected := false
	inspectionProb := (1 - route.CustomsEfficiency) * 0.5
	if ctx.Chance(inspectionProb) {
		inspected = true
		clearance += float64(ctx.IntBetween(1, 4))
	}

	infraFactor := 1 + (1-route.InfrastructureQuality)*0.3
	congestionSurcharge := 1 + route.Congestion*0.25

	freight := route.BaseRate * method.CostMultiplier * chargeable *
		route.DistanceFactor * infraFactor * congestionSurcharge
	insurance := freight * insuranceRate
	handling := method.HandlingFee

	onTime := method.Reliability * (0.7 + 0.3*route.CustomsEfficiency) * (1 - route.Congestion*0.2)
	onTime = shared.Clamp(onTime, 0.05, 0.99)

	total := transit + clearance
	expectedDelay := (1 - onTime) * total * 0.3

	return &Calculation{
		Route:             route,
		Method:            method,
		ChargeableKg:      chargeable,
		TransitDays:       transit,
		ClearanceDays:     clearance,
		TotalDays:         total,
		Inspected:         inspected,
		FreightCost:       freight,
		InsuranceCost:     insurance,
		HandlingCost:      handling,
		TotalCost:         freight + insurance + handling,
		OnTimeProbability: onTime,
		ExpectedDelayDays: expectedDelay,
	}, nil
}

// baseline prices a shipment without consuming randomness: clearance uses the
// expected inspection delay instead of a draw. Used by comparison and
// recommendation paths, which must not disturb the round's draw sequence.
func baseline(route *Route, method Method, weightKg, volumeM3 float64) Calculation {
	chargeable := math.Max(weightKg, volumeM3*volumetricDivisor)

	transit := route.BaseLeadDays * method.TimeMultiplier
	inspectionProb := (1 - route.CustomsEfficiency) * 0.5
	clearance := route.ClearanceBaseDays + inspectionProb*2.5 // E[delay] = 2.5 days

	infraFactor := 1 + (1-route.InfrastructureQuality)*0.3
	congestionSurcharge := 1 + route.Congestion*0.25

	freight := route.BaseRate * method.CostMultiplier * chargeable *
		route.DistanceFactor * infraFactor * congestionSurcharge
	insurance := freight * insuranceRate

	onTime := method.Reliability * (0.7 + 0.3*route.CustomsEfficiency) * (1 - route.Congestion*0.2)
	onTime = shared.Clamp(onTime, 0.05, 0.99)

	total := transit + clearance

	return Calculation{
		Route:             route,
		Method:            method,
		ChargeableKg:      chargeable,
		TransitDays:       transit,
		ClearanceDays:     clearance,
		TotalDays:         total,
		FreightCost:       freight,
		InsuranceCost:     insurance,
		HandlingCost:      method.HandlingFee,
		TotalCost:         freight + insurance + method.HandlingFee,
		OnTimeProbability: onTime,
		ExpectedDelayDays: (1 - onTime) * total * 0.3,
	}
}
