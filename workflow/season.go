package workflow

import (
	"fmt"
	"time"

	"github.com/voyago/tripcost/types"
)

// Northern-hemisphere meteorological seasons.
const (
	SeasonWinter = "winter"
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
)

// optimalSeasons maps each vibe to the seasons it works best in.
var optimalSeasons = map[types.Vibe][]string{
	types.VibeRomantic:  {SeasonSpring, SeasonAutumn},
	types.VibeAdventure: {SeasonSpring, SeasonSummer, SeasonAutumn},
	types.VibeBeach:     {SeasonSummer},
	types.VibeCultural:  {SeasonSpring, SeasonAutumn},
	types.VibeLuxury:    {SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter},
	types.VibeBudget:    {SeasonWinter, SeasonAutumn},
	types.VibeFamily:    {SeasonSummer, SeasonSpring},
	types.VibeNightlife: {SeasonSummer, SeasonSpring},
}

// SeasonForDate returns the meteorological season of a date.
func SeasonForDate(d types.Date) string {
	switch d.Month() {
	case time.December, time.January, time.February:
		return SeasonWinter
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	default:
		return SeasonAutumn
	}
}

// GetSeasonRecommendation compares the trip season against the vibe's
// optimal seasons. It is a pure function of its arguments: no clock, no
// hidden state, identical inputs give identical output.
func GetSeasonRecommendation(vibe types.Vibe, destination string, start types.Date) types.SeasonRecommendation {
	tripSeason := SeasonForDate(start)

	optimal, ok := optimalSeasons[vibe]
	if !ok {
		optimal = []string{SeasonSpring, SeasonSummer, SeasonAutumn}
	}

	isOptimal := false
	for _, s := range optimal {
		if s == tripSeason {
			isOptimal = true
			break
		}
	}

	rec := types.SeasonRecommendation{
		TripSeason:     tripSeason,
		OptimalSeasons: optimal,
		IsOptimal:      isOptimal,
	}
	if !isOptimal {
		rec.Note = fmt.Sprintf("%s trips to %s are usually best in %s",
			vibe, destination, joinSeasons(optimal))
	}
	return rec
}

func joinSeasons(seasons []string) string {
	switch len(seasons) {
	case 0:
		return ""
	case 1:
		return seasons[0]
	default:
		out := seasons[0]
		for _, s := range seasons[1 : len(seasons)-1] {
			out += ", " + s
		}
		return out + " or " + seasons[len(seasons)-1]
	}
}
