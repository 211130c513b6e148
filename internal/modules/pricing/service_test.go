// README: Pricing service tests for the rate table and input validation.
package pricing

import (
	"math"
	"testing"
)

func TestQuote_RateTable(t *testing.T) {
	svc := NewService()

	cases := []struct {
		name       string
		class      string
		distanceKm float64
		want       float64
	}{
		{"economy base fare only", ClassEconomy, 0, 20},
		{"economy 10km", ClassEconomy, 10, 70},
		{"large base fare only", ClassLarge, 0, 30},
		{"large 10km", ClassLarge, 10, 100},
		{"vip 10km", ClassVIP, 10, 150},
		{"pet 4.5km", ClassPet, 4.5, 52},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Quote(tc.class, tc.distanceKm)
			if err != nil {
				t.Fatalf("Quote(%s, %f): %v", tc.class, tc.distanceKm, err)
			}
			if math.Abs(got.Amount-tc.want) > 1e-9 {
				t.Errorf("Quote(%s, %f) = %f, want %f", tc.class, tc.distanceKm, got.Amount, tc.want)
			}
			if got.Currency == "" {
				t.Errorf("Quote(%s, %f) has empty currency", tc.class, tc.distanceKm)
			}
		})
	}
}

func TestQuote_UnknownClass(t *testing.T) {
	svc := NewService()
	if _, err := svc.Quote("Limousine", 5); err != ErrUnknownClass {
		t.Fatalf("expected ErrUnknownClass, got %v", err)
	}
}

func TestQuote_InvalidDistance(t *testing.T) {
	svc := NewService()
	for _, d := range []float64{math.NaN(), math.Inf(1), -1} {
		if _, err := svc.Quote(ClassEconomy, d); err == nil {
			t.Errorf("Quote(Economy, %f): expected error", d)
		}
	}
}

func TestKnownClass(t *testing.T) {
	for _, class := range []string{ClassEconomy, ClassLarge, ClassVIP, ClassPet} {
		if !KnownClass(class) {
			t.Errorf("KnownClass(%s) = false", class)
		}
	}
	if KnownClass("Bike") {
		t.Error("KnownClass(Bike) = true")
	}
}
