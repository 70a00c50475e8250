package tracker

import (
	"strings"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/sahilm/fuzzy"
)

var weekdayByName = map[string]time.Weekday{}

var weekdayNames []string

var weekdayGroups = map[string][]time.Weekday{
	"weekdays": {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	"weekend":  {time.Saturday, time.Sunday},
	"all":      dates.Weekdays(),
	"everyday": dates.Weekdays(),
}

func init() {
	for _, weekday := range dates.Weekdays() {
		weekdayByName[weekday.String()] = weekday
		weekdayNames = append(weekdayNames, strings.ToLower(weekday.String()))
	}
}

// ParseWeekdays turns free text such as "mon, weds fri" or "weekdays" into
// weekdays in calendar order. Tokens are matched against weekday names with
// fuzzy search and must resolve to exactly one day.
func ParseWeekdays(input string) ([]time.Weekday, error) {
	tokens := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return r == ',' || r == ' ' || r == ';' || r == '/'
	})
	if len(tokens) == 0 {
		return nil, errs.Invalid("no weekdays given")
	}

	selected := make(map[time.Weekday]bool)
	for _, token := range tokens {
		if group, ok := weekdayGroups[token]; ok {
			for _, weekday := range group {
				selected[weekday] = true
			}
			continue
		}

		weekday, err := matchWeekday(token)
		if err != nil {
			return nil, err
		}
		selected[weekday] = true
	}

	result := make([]time.Weekday, 0, len(selected))
	for _, weekday := range dates.Weekdays() {
		if selected[weekday] {
			result = append(result, weekday)
		}
	}
	return result, nil
}

func matchWeekday(token string) (time.Weekday, error) {
	prefixed := prefixMatches(token)
	switch {
	case len(prefixed) == 1:
		return dates.Weekdays()[prefixed[0]], nil
	case len(prefixed) > 1:
		return 0, errs.Invalid("weekday %q is ambiguous", token)
	}

	matches := fuzzy.Find(token, weekdayNames)
	if len(matches) == 0 {
		return 0, errs.Invalid("unknown weekday %q", token)
	}
	if len(matches) > 1 && matches[0].Score == matches[1].Score {
		return 0, errs.Invalid("weekday %q is ambiguous (%s or %s)", token, matches[0].Str, matches[1].Str)
	}
	return dates.Weekdays()[matches[0].Index], nil
}

func prefixMatches(token string) []int {
	var indexes []int
	for i, name := range weekdayNames {
		if strings.HasPrefix(name, token) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
