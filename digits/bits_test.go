package digits

import (
	"fmt"
	"math"
	"testing"
)

func TestWidthUint64(t *testing.T) {
	type args struct {
		num uint64
	}
	tests := []struct {
		args args
		want int
	}{
		{args{0}, 1},
		{args{1}, 1},
		{args{7}, 1},
		{args{8}, 2},
		{args{0o77}, 2},
		{args{0o100}, 3},
		{args{0o777}, 3},
		{args{0o1000}, 4},
		{args{math.MaxUint64}, MaxWidthUint64},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%o -> %d", tt.args.num, tt.want), func(t *testing.T) {
			if got := WidthUint64(tt.args.num); got != tt.want {
				t.Errorf("WidthUint64() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBitLength(t *testing.T) {
	type args struct {
		num uint64
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"0 -> 0", args{0}, 0},
		{"1 -> 1", args{1}, 1},
		{"7 -> 3", args{7}, 3},
		{"8 -> 4", args{8}, 4},
		{"max -> 64", args{math.MaxUint64}, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitLength(tt.args.num); got != tt.want {
				t.Errorf("BitLength() = %v, want %v", got, tt.want)
			}
		})
	}
}
