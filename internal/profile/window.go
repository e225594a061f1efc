package profile

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cheryl9/project-iceman/internal/models"
)

// Dates written as "15 Mar 2026" or "1 Sept 2026".
var dateRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec)\s+(\d{4})\b`)

var monthNums = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"sept": time.September, "oct": time.October, "nov": time.November,
	"dec": time.December,
}

var openAllYearMarkers = []string{
	"throughout the year", "all year", "all year round", "year-round", "year round", "open throughout",
}

// ExtractApplicationWindow parses the "when to apply" section. Dates are
// deduplicated and sorted ascending; invalid calendar dates are dropped
// silently. All fields stay zero when the text is empty.
func ExtractApplicationWindow(text string) models.ApplicationWindow {
	raw := CleanText(text)
	if raw == "" {
		return models.ApplicationWindow{Dates: []string{}}
	}
	low := strings.ToLower(raw)

	openAllYear := containsAny(low, openAllYearMarkers)

	seen := make(map[string]struct{})
	var dates []string
	for _, m := range dateRe.FindAllStringSubmatch(raw, -1) {
		iso, ok := toISODate(m[1], m[2], m[3])
		if !ok {
			continue
		}
		if _, dup := seen[iso]; dup {
			continue
		}
		seen[iso] = struct{}{}
		dates = append(dates, iso)
	}
	sort.Strings(dates)
	if dates == nil {
		dates = []string{}
	}

	w := models.ApplicationWindow{
		IsOpenAllYear: &openAllYear,
		Dates:         dates,
		Raw:           raw,
	}
	if len(dates) > 0 {
		w.StartDate = dates[0]
		w.EndDate = dates[len(dates)-1]
	}
	return w
}

// toISODate validates a day/month/year triple and renders it as ISO 8601.
// Rejects impossible combinations like 31 Feb instead of normalizing them.
func toISODate(dayStr, monStr, yearStr string) (string, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return "", false
	}
	mon, ok := monthNums[strings.ToLower(monStr)]
	if !ok {
		return "", false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return "", false
	}

	t := time.Date(year, mon, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != mon || t.Year() != year {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(mon), day), true
}
