// Package report renders a weather.Report as the console summary.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/swelljoe/duskgold/internal/i18n"
	"github.com/swelljoe/duskgold/internal/sun"
	"github.com/swelljoe/duskgold/internal/weather"
)

const (
	// NA stands in for any value the provider did not supply.
	NA = "NA"

	ruleHeavy = "=============================="
	ruleLight = "------------------------------"
	dateFmt   = "2006-01-02"
)

// Render writes the localized report for r to w
func Render(w io.Writer, r *weather.Report, lang i18n.Lang) error {
	bw := bufio.NewWriter(w)
	t := func(k i18n.Key) string { return i18n.T(lang, k) }

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, ruleHeavy)
	fmt.Fprintf(bw, "📅 %s: %s\n", t(i18n.Date), r.Date.Format(dateFmt))
	fmt.Fprintf(bw, "🕒 %s: %s\n", t(i18n.Timezone), r.Location.Timezone)
	fmt.Fprintf(bw, "📍 %s: %s, %s\n", t(i18n.Location), r.Location.Name, r.Location.Country)
	fmt.Fprintf(bw, "📐 %s: lat=%.3f, lon=%.3f\n", t(i18n.Coordinates), r.Location.Latitude, r.Location.Longitude)
	fmt.Fprintln(bw, ruleLight)

	if r.SunErr != nil {
		fmt.Fprintf(bw, "🌅 %s: %s\n", t(i18n.Sunrise), NA)
		fmt.Fprintf(bw, "🌇 %s: %s\n", t(i18n.Sunset), NA)
		fmt.Fprintf(bw, "⚠️ %s\n", t(i18n.NoSunEvent))
	} else {
		fmt.Fprintf(bw, "🌅 %s: %s\n", t(i18n.Sunrise), sun.FormatClock(r.Sun.Sunrise))
		fmt.Fprintf(bw, "🌇 %s: %s\n", t(i18n.Sunset), sun.FormatClock(r.Sun.Sunset))
	}

	if s := r.Weather; s != nil {
		fmt.Fprintln(bw, ruleLight)
		fmt.Fprintf(bw, "🌡️ %s: %s\n", t(i18n.Temperature), value(s.Temperature, "°C"))
		fmt.Fprintf(bw, "🤗 %s: %s\n", t(i18n.FeelsLike), value(s.ApparentTemperature, "°C"))
		fmt.Fprintf(bw, "🌧️ %s: %s\n", t(i18n.Precipitation), value(s.Precipitation, " mm"))
		fmt.Fprintf(bw, "💨 %s: %s\n", t(i18n.Wind), value(s.WindSpeed, " km/h"))
		fmt.Fprintf(bw, "☁️ %s: %s\n", t(i18n.Cloud), value(s.CloudCover, " %"))
	} else {
		fmt.Fprintf(bw, "⚠️ %s\n", t(i18n.WeatherUnavailable))
	}

	fmt.Fprintln(bw, ruleHeavy)
	fmt.Fprintln(bw)

	return bw.Flush()
}

// value formats v with its unit suffix, or NA when v is absent
func value(v *float64, unit string) string {
	if v == nil {
		return NA
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + unit
}
