package geo

import (
	"math"
	"testing"

	"mishwar/internal/types"
)

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: 30.0444, Lng: 31.2357},
			b:         types.Point{Lat: 30.0444, Lng: 31.2357},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "short city hop (~6.9km)",
			a:         types.Point{Lat: 30.0, Lng: 31.0},
			b:         types.Point{Lat: 30.05, Lng: 31.05},
			wantKm:    6.9,
			tolerance: 0.5,
		},
		{
			name:      "Cairo to Alexandria (~181km)",
			a:         types.Point{Lat: 30.0444, Lng: 31.2357},
			b:         types.Point{Lat: 31.2001, Lng: 29.9187},
			wantKm:    181,
			tolerance: 5,
		},
		{
			name:      "New York to Los Angeles (~3944km)",
			a:         types.Point{Lat: 40.7128, Lng: -74.0060},
			b:         types.Point{Lat: 34.0522, Lng: -118.2437},
			wantKm:    3944,
			tolerance: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("DistanceKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := types.Point{Lat: 25.0, Lng: 121.0}
	b := types.Point{Lat: 26.0, Lng: 122.0}
	d1 := DistanceKm(a, b)
	d2 := DistanceKm(b, a)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}

func TestDistanceKm_NonFiniteInput(t *testing.T) {
	a := types.Point{Lat: math.NaN(), Lng: 31.0}
	b := types.Point{Lat: 30.0, Lng: 31.0}
	if d := DistanceKm(a, b); !math.IsNaN(d) {
		t.Errorf("expected NaN for NaN input, got %f", d)
	}
}

func TestPointValid(t *testing.T) {
	cases := []struct {
		name string
		p    types.Point
		want bool
	}{
		{"ordinary", types.Point{Lat: 30.0, Lng: 31.0}, true},
		{"zero value", types.Point{}, true},
		{"nan lat", types.Point{Lat: math.NaN(), Lng: 31.0}, false},
		{"inf lng", types.Point{Lat: 30.0, Lng: math.Inf(1)}, false},
		{"lat out of range", types.Point{Lat: 91.0, Lng: 0}, false},
		{"lng out of range", types.Point{Lat: 0, Lng: -181.0}, false},
	}
	for _, tc := range cases {
		if got := tc.p.Valid(); got != tc.want {
			t.Errorf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
