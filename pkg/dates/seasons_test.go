package dates

import (
	"testing"
	"time"
)

// TestSeasonGroupings pins the asymmetric month groupings. The overview
// page's vertical rhythm depends on these exact groups; they must never be
// normalized to calendar-standard three-month seasons.
func TestSeasonGroupings(t *testing.T) {
	want := map[string][]time.Month{
		"Winter": {time.January, time.February},
		"Spring": {time.March, time.April, time.May, time.June},
		"Summer": {time.July, time.August},
		"Fall":   {time.September, time.October, time.November, time.December},
	}

	seasons := Seasons()
	if len(seasons) != 4 {
		t.Fatalf("Seasons() returned %d seasons", len(seasons))
	}
	for _, s := range seasons {
		months, ok := want[s.Name]
		if !ok {
			t.Errorf("unexpected season %q", s.Name)
			continue
		}
		if len(s.Months) != len(months) {
			t.Errorf("%s has %d months, want %d", s.Name, len(s.Months), len(months))
			continue
		}
		for i, m := range months {
			if s.Months[i] != m {
				t.Errorf("%s month %d = %v, want %v", s.Name, i, s.Months[i], m)
			}
		}
	}

	// Page order: Winter, Spring, Summer, Fall.
	order := []string{"Winter", "Spring", "Summer", "Fall"}
	for i, s := range seasons {
		if s.Name != order[i] {
			t.Errorf("season %d = %q, want %q", i, s.Name, order[i])
		}
	}
}

func TestSeasonForCoversEveryMonth(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		s := SeasonFor(m)
		if s.Name == "" {
			t.Errorf("SeasonFor(%v) returned no season", m)
		}
	}
	if SeasonFor(time.February).Name != "Winter" {
		t.Errorf("February = %q, want Winter", SeasonFor(time.February).Name)
	}
	if SeasonFor(time.June).Name != "Spring" {
		t.Errorf("June = %q, want Spring", SeasonFor(time.June).Name)
	}
}

// TestSeasonHeightBoxes pins the nine-boxes-per-month formula: eight for
// the mini month plus one of spacing.
func TestSeasonHeightBoxes(t *testing.T) {
	cases := map[int]int{
		2: 18,
		4: 36,
	}
	for count, want := range cases {
		if got := SeasonHeightBoxes(count); got != want {
			t.Errorf("SeasonHeightBoxes(%d) = %d, want %d", count, got, want)
		}
	}

	for _, s := range Seasons() {
		if got := s.HeightBoxes(); got != SeasonHeightBoxes(len(s.Months)) {
			t.Errorf("%s.HeightBoxes() = %d, want %d", s.Name, got, SeasonHeightBoxes(len(s.Months)))
		}
	}
}
