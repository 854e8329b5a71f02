package pickup

import (
	"math"
	"testing"
)

func TestComputeCost(t *testing.T) {
	tests := []struct {
		name        string
		serviceType ServiceType
		weight      float64
		priority    Priority
		want        int64
	}{
		{
			name:        "letter half kilo standard",
			serviceType: ServiceLetter,
			weight:      0.5,
			priority:    PriorityStandard,
			// 150 + ceil(0.5)*100 = 250
			want: 250,
		},
		{
			name:        "package urgent fractional weight",
			serviceType: ServicePackage,
			weight:      2.3,
			priority:    PriorityUrgent,
			// (500 + ceil(2.3)*100) * 2 = 800 * 2 = 1600
			want: 1600,
		},
		{
			name:        "document express rounds half up",
			serviceType: ServiceDocument,
			weight:      1.0,
			priority:    PriorityExpress,
			// (250 + 100) * 1.5 = 525
			want: 525,
		},
		{
			name:        "goods express odd base rounds away from zero",
			serviceType: ServiceGoods,
			weight:      0.1,
			priority:    PriorityExpress,
			// (800 + 100) * 1.5 = 1350
			want: 1350,
		},
		{
			name:        "minimum weight charged as one kilogram",
			serviceType: ServiceLetter,
			weight:      0.1,
			priority:    PriorityStandard,
			want:        250,
		},
		{
			name:        "exact kilogram boundary not rounded up",
			serviceType: ServiceGoods,
			weight:      3.0,
			priority:    PriorityStandard,
			want:        1100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeCost(tt.serviceType, tt.weight, tt.priority)
			if err != nil {
				t.Fatalf("ComputeCost() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeCost() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeCostUnknownServiceType(t *testing.T) {
	if _, err := ComputeCost("parcel", 1, PriorityStandard); err == nil {
		t.Fatal("expected error for unknown service type")
	}
}

func TestComputeCostStandardFormula(t *testing.T) {
	// base(type) + ceil(w)*100 for every type and a spread of weights.
	bases := map[ServiceType]int64{
		ServiceLetter:   150,
		ServiceDocument: 250,
		ServicePackage:  500,
		ServiceGoods:    800,
	}
	weights := []float64{0.1, 0.99, 1.0, 1.01, 4.5, 30}

	for serviceType, base := range bases {
		for _, w := range weights {
			got, err := ComputeCost(serviceType, w, PriorityStandard)
			if err != nil {
				t.Fatalf("ComputeCost(%s, %v) error = %v", serviceType, w, err)
			}
			want := base + int64(math.Ceil(w))*100
			if got != want {
				t.Errorf("ComputeCost(%s, %v, standard) = %d, want %d", serviceType, w, got, want)
			}
		}
	}
}

func TestComputeCostPriorityRelations(t *testing.T) {
	weights := []float64{0.3, 1.0, 2.3, 7.7}

	for _, serviceType := range ValidServiceTypes() {
		for _, w := range weights {
			standard, err := ComputeCost(serviceType, w, PriorityStandard)
			if err != nil {
				t.Fatal(err)
			}
			express, err := ComputeCost(serviceType, w, PriorityExpress)
			if err != nil {
				t.Fatal(err)
			}
			urgent, err := ComputeCost(serviceType, w, PriorityUrgent)
			if err != nil {
				t.Fatal(err)
			}

			wantExpress := int64(math.Round(1.5 * float64(standard)))
			if express != wantExpress {
				t.Errorf("express(%s, %v) = %d, want round(1.5*%d)=%d", serviceType, w, express, standard, wantExpress)
			}
			if urgent != 2*standard {
				t.Errorf("urgent(%s, %v) = %d, want 2*%d", serviceType, w, urgent, standard)
			}
		}
	}
}

func TestComputeCostDeterministic(t *testing.T) {
	first, err := ComputeCost(ServicePackage, 2.3, PriorityUrgent)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ComputeCost(ServicePackage, 2.3, PriorityUrgent)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("ComputeCost not deterministic: %d != %d", first, second)
	}
}
