package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veskov/courtside/internal/format"
)

func TestHeightToMetric(t *testing.T) {
	// 6*0.3048 + 9*0.0254 = 2.0574 -> 2.06
	assert.Equal(t, "2.06 м", format.HeightToMetric("6-9"))
	assert.Equal(t, "1.85 м", format.HeightToMetric("6-1"))
	assert.Equal(t, "2.13 м", format.HeightToMetric("7-0"))
}

func TestHeightToMetric_FailSoft(t *testing.T) {
	assert.Equal(t, "tall", format.HeightToMetric("tall"))
	assert.Equal(t, "", format.HeightToMetric(""))
	assert.Equal(t, "6-x", format.HeightToMetric("6-x"))
}

func TestWeightToMetric(t *testing.T) {
	// 250*0.453592 = 113.398 -> 113
	assert.Equal(t, "113 кг", format.WeightToMetric("250"))
	assert.Equal(t, "98 кг", format.WeightToMetric("215"))
}

func TestWeightToMetric_FailSoft(t *testing.T) {
	assert.Equal(t, "heavy", format.WeightToMetric("heavy"))
	assert.Equal(t, "", format.WeightToMetric(""))
}
