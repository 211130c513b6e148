// README: Pricing service computes fares from the per-class rate table.
package pricing

import (
	"errors"
	"math"

	"mishwar/internal/types"
)

var ErrUnknownClass = errors.New("unknown vehicle class")

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Quote returns base + perKm * distance for the class. Distance must be a
// finite non-negative number of kilometres.
func (s *Service) Quote(class string, distanceKm float64) (types.Money, error) {
	rate, ok := rates[class]
	if !ok {
		return types.Money{}, ErrUnknownClass
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return types.Money{}, errors.New("invalid distance")
	}
	return types.Money{
		Amount:   rate.BaseFare + rate.PerKm*distanceKm,
		Currency: rate.Currency,
	}, nil
}
