package dates

import "time"

// Season is one group of months on the seasonal overview page. The groupings
// are fixed and deliberately asymmetric; the overview page's vertical rhythm
// depends on them, so they must not be "corrected" to calendar-standard
// three-month seasons.
type Season struct {
	Name   string
	Months []time.Month
}

// Seasons returns the four season groupings in page order.
func Seasons() []Season {
	return []Season{
		{Name: "Winter", Months: []time.Month{time.January, time.February}},
		{Name: "Spring", Months: []time.Month{time.March, time.April, time.May, time.June}},
		{Name: "Summer", Months: []time.Month{time.July, time.August}},
		{Name: "Fall", Months: []time.Month{time.September, time.October, time.November, time.December}},
	}
}

// SeasonFor returns the season containing month m.
func SeasonFor(m time.Month) Season {
	for _, s := range Seasons() {
		for _, sm := range s.Months {
			if sm == m {
				return s
			}
		}
	}
	// Unreachable: every month belongs to a season.
	return Season{}
}

// SeasonHeightBoxes returns the vertical extent of a season block on the
// overview page: eight boxes per mini month plus one box of spacing each.
func SeasonHeightBoxes(monthCount int) int {
	return monthCount*8 + monthCount*1
}

// HeightBoxes returns the season's own height on the overview page.
func (s Season) HeightBoxes() int {
	return SeasonHeightBoxes(len(s.Months))
}
