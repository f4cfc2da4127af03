package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStepsPerTick(t *testing.T) {
	tests := []struct {
		name     string
		stepRate int
		tickRate int
		want     int
	}{
		{name: "defaults", stepRate: DefaultStepRate, tickRate: DefaultTickRate, want: 8},
		{name: "exact ratio", stepRate: 600, tickRate: 60, want: 10},
		{name: "rate below tick rate", stepRate: 30, tickRate: 60, want: 1},
		{name: "no tick rate", stepRate: 500, tickRate: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Emulation{StepRate: tt.stepRate, TickRate: tt.tickRate}
			assert.Equal(t, tt.want, e.StepsPerTick())
		})
	}
}
