package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	metersPerFoot = 0.3048
	metersPerInch = 0.0254
	kilosPerPound = 0.453592
)

// HeightToMetric converts a "feet-inches" string like "6-9" to meters with
// two decimals ("2.06 м"). Unparseable input is returned unchanged.
func HeightToMetric(height string) string {
	feetPart, inchesPart, ok := strings.Cut(height, "-")
	if !ok {
		return height
	}
	feet, err := strconv.Atoi(strings.TrimSpace(feetPart))
	if err != nil {
		return height
	}
	inches, err := strconv.Atoi(strings.TrimSpace(inchesPart))
	if err != nil {
		return height
	}
	meters := float64(feet)*metersPerFoot + float64(inches)*metersPerInch
	return fmt.Sprintf("%.2f м", meters)
}

// WeightToMetric converts a pounds string like "250" to whole kilograms
// ("113 кг"). Unparseable input is returned unchanged.
func WeightToMetric(weight string) string {
	pounds, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil {
		return weight
	}
	kilos := math.Round(pounds * kilosPerPound)
	return fmt.Sprintf("%d кг", int(kilos))
}
