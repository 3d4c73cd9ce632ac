// Package format holds the display formatting helpers for runner
// estimates and schedule timestamps.
package format

import "regexp"

var (
	hourPattern   = regexp.MustCompile(`(\d+)H`)
	minutePattern = regexp.MustCompile(`(\d+)M`)
	secondPattern = regexp.MustCompile(`(\d+)S`)
)

// Duration converts an abbreviated estimate string such as "PT4H30M"
// into a clock display "04:30:00". Components are matched independently;
// a missing component renders as "00". Malformed input never fails, it
// just falls back to zeroes. Hours keep all their digits when the value
// exceeds two.
func Duration(estimate string) string {
	return component(hourPattern, estimate) + ":" +
		component(minutePattern, estimate) + ":" +
		component(secondPattern, estimate)
}

func component(re *regexp.Regexp, estimate string) string {
	m := re.FindStringSubmatch(estimate)
	if m == nil {
		return "00"
	}
	v := m[1]
	if len(v) < 2 {
		v = "0" + v
	}
	return v
}
