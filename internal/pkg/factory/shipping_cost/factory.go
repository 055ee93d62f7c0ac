package shipping_cost

import "shipping/internal/entities"

const (
	baseCost         = 10.0
	costPerWeight    = 2.0
	valueInsurance   = 0.01
	fragileSurcharge = 5.0
)

type CostFactory struct{}

func New() *CostFactory {
	return &CostFactory{}
}

// Calculate адреса пока не влияют на цену, в расчете только вес, стоимость и хрупкость.
func (f *CostFactory) Calculate(_, _ entities.Address, pkg entities.PackageDetails) float64 {
	cost := baseCost + pkg.Weight*costPerWeight + pkg.Value*valueInsurance
	if pkg.Fragile {
		cost += fragileSurcharge
	}
	return cost
}
