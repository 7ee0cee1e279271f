package factorymethod

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoriesProduceTheRightProduct(t *testing.T) {
	market := Market{SpotPrice: 100, FuturePrice: 105}

	tests := []struct {
		name      string
		factory   Factory
		wantPrice float64
	}{
		{
			name:      "option factory prices spot minus strike",
			factory:   OptionFactory{Strike: 90, Expiry: "2024-12-31"},
			wantPrice: 10,
		},
		{
			name:      "future factory prices at future level",
			factory:   FutureFactory{Expiry: "2024-12-31"},
			wantPrice: 105,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.factory.NewDerivative()
			assert.Equal(t, tt.wantPrice, d.Price(market))
		})
	}
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	out := buf.String()
	assert.Contains(t, out, "option (strike 90, expiry 2024-12-31) priced at 10.00")
	assert.Contains(t, out, "future (expiry 2024-12-31) priced at 105.00")
}
