package billing

import "testing"

func TestQuantity(t *testing.T) {
	cases := []struct {
		name      string
		weight    float64
		noOfTrays int
		want      float64
	}{
		{"typical weigh-in", 100, 5, 90},
		{"no trays", 42.5, 0, 42.5},
		{"zero weight", 0, 0, 0},
		{"fractional weight", 10.5, 2, 6.5},
		{"tare exceeds gross, negative passes through", 3, 4, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Quantity(tc.weight, tc.noOfTrays); got != tc.want {
				t.Errorf("Quantity(%v, %d) = %v, want %v", tc.weight, tc.noOfTrays, got, tc.want)
			}
		})
	}
}

func TestBillAmount(t *testing.T) {
	cases := []struct {
		name      string
		quantity  float64
		unitPrice float64
		want      float64
	}{
		{"typical line", 90, 50, 4500},
		{"zero quantity", 0, 120, 0},
		{"zero price", 35, 0, 0},
		{"negative quantity propagates sign", -5, 10, -50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BillAmount(tc.quantity, tc.unitPrice); got != tc.want {
				t.Errorf("BillAmount(%v, %v) = %v, want %v", tc.quantity, tc.unitPrice, got, tc.want)
			}
		})
	}
}
