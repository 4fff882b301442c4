// Package condition classifies reaction-condition label text (temperature,
// reaction time, stir speed, pressure, gas) and normalizes quantitative
// readings to a canonical unit.
package condition

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	timeUnits        = []string{"h", "hr", "hrs", "hour", "hours", "min"}
	stirSpeedUnits   = []string{"rpm", "RPM"}
	temperatureUnits = []string{"C", "°", "°C", "℃"}
	pressureUnits    = []string{"bar", "psi", "Mpa", "MPa", "atm"}
	gasTokens        = []string{"N2", "H2", "O2", "He", "CO2"}
)

var hasDigit = regexp.MustCompile(`\d`)
var leadingInt = regexp.MustCompile(`^\d+`)

func containsDigit(text string) bool { return hasDigit.MatchString(text) }

func endsWithAny(text string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(text, s) {
			return true
		}
	}
	return false
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// IsTemperatureText reports whether text reads as a temperature: a bare
// "rt"/"RT" mention, or a number ending in a recognized temperature unit.
func IsTemperatureText(text string) bool {
	if strings.Contains(text, "rt") || strings.Contains(text, "RT") {
		return true
	}
	return containsDigit(text) && endsWithAny(text, temperatureUnits)
}

// IsTimeText reports whether text reads as a reaction time: "overnight",
// or a number ending in a recognized time unit.
func IsTimeText(text string) bool {
	if strings.Contains(text, "overnight") {
		return true
	}
	return containsDigit(text) && endsWithAny(text, timeUnits)
}

// IsStirSpeedText reports whether text reads as a stir speed: a number
// ending in a recognized stir-speed unit.
func IsStirSpeedText(text string) bool {
	return containsDigit(text) && endsWithAny(text, stirSpeedUnits)
}

// IsPressureText reports whether text reads as a pressure: a number ending
// in a recognized pressure unit.
func IsPressureText(text string) bool {
	return containsDigit(text) && endsWithAny(text, pressureUnits)
}

// IsGasText reports whether text names a recognized gas.
func IsGasText(text string) bool {
	return containsAny(text, gasTokens)
}

// IsConditionText reports whether text matches any of the five condition
// kinds.
func IsConditionText(text string) bool {
	return IsTemperatureText(text) || IsTimeText(text) || IsStirSpeedText(text) ||
		IsPressureText(text) || IsGasText(text)
}

// uniformUnit maps a raw unit string to its canonical form and the
// multiplicative factor its accompanying quantity must be scaled by.
func uniformUnit(unit string) (string, float64) {
	for _, u := range timeUnits {
		if unit == u {
			if unit == "min" {
				return "hr", 1.0 / 60.0
			}
			return "hr", 1
		}
	}
	for _, u := range stirSpeedUnits {
		if unit == u {
			return "RPM", 1
		}
	}
	for _, u := range temperatureUnits {
		if unit == u {
			return "C", 1
		}
	}
	return unit, 1
}

// Normalize rewrites a leading-integer quantity to its canonical unit,
// e.g. "30min" -> "0.5 hr". Text with no leading integer, more than one
// leading-integer match, or a unit that itself still contains a digit is
// returned unchanged.
func Normalize(text string) string {
	m := leadingInt.FindString(text)
	if m == "" {
		return text
	}
	unit := strings.TrimSpace(strings.ReplaceAll(text, m, ""))
	if containsDigit(unit) {
		return text
	}
	canonicalUnit, factor := uniformUnit(unit)
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return text
	}
	return fmt.Sprintf("%v %s", n*factor, canonicalUnit)
}

// Classify reports every condition field text matches, each mapped to its
// normalized value (quantitative fields) or the raw text (gas). Its
// signature matches target.Classifier so it can be passed directly to
// target.Condition.Apply.
func Classify(text string) map[string]string {
	out := map[string]string{}
	if IsTemperatureText(text) {
		out["temperature"] = Normalize(text)
	}
	if IsTimeText(text) {
		out["reaction_time"] = Normalize(text)
	}
	if IsStirSpeedText(text) {
		out["stir_speed"] = Normalize(text)
	}
	if IsPressureText(text) {
		out["pressure"] = Normalize(text)
	}
	if IsGasText(text) {
		out["gas"] = text
	}
	return out
}
