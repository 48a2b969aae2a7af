package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

var monthNumbers map[string]int

func init() {
	monthNumbers = make(map[string]int)

	monthNumbers["January"] = 1
	monthNumbers["February"] = 2
	monthNumbers["March"] = 3
	monthNumbers["April"] = 4
	monthNumbers["May"] = 5
	monthNumbers["June"] = 6
	monthNumbers["July"] = 7
	monthNumbers["August"] = 8
	monthNumbers["September"] = 9
	monthNumbers["October"] = 10
	monthNumbers["November"] = 11
	monthNumbers["December"] = 12
}

// WordDate converts the correction feed's "DD Month " date form into the
// "M/D/YY" form used by the primary series, with unpadded month and day.
// The feed only covers 2020, so the year is fixed; this is not a general
// date parser.
func WordDate(s string) (string, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return "", fmt.Errorf("unrecognized date %q", s)
	}

	day, err := strconv.Atoi(fields[0])
	if nil != err {
		return "", fmt.Errorf("unrecognized day in date %q", s)
	}

	month, ok := monthNumbers[fields[1]]
	if !ok {
		return "", fmt.Errorf("unknown month %q", fields[1])
	}

	return fmt.Sprintf("%d/%d/20", month, day), nil
}
