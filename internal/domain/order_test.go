package domain

import "testing"

func TestCanAdvanceTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusShipped, true},
		{StatusPending, StatusShipped, false},
		{StatusConfirmed, StatusPending, false},
		{StatusShipped, StatusConfirmed, false},
		{StatusShipped, StatusPending, false},
		{StatusPending, StatusPending, false},
		{StatusShipped, StatusShipped, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanAdvanceTo(tt.to); got != tt.want {
			t.Errorf("%s.CanAdvanceTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "shipped"} {
		if _, ok := ParseOrderStatus(valid); !ok {
			t.Errorf("ParseOrderStatus(%q) not ok", valid)
		}
	}
	for _, invalid := range []string{"", "delivered", "cancelled", "PENDING"} {
		if _, ok := ParseOrderStatus(invalid); ok {
			t.Errorf("ParseOrderStatus(%q) ok, want rejection", invalid)
		}
	}
}
