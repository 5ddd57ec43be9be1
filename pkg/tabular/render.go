package tabular

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// timeLayout renders timestamps as HH:mm MM/DD/YYYY.
const timeLayout = "15:04 01/02/2006"

// neverRendered is what absent or zero timestamps render as. Zero is "never
// set" in this domain, not midnight 1970.
const neverRendered = "never"

// FormatTime renders a unix timestamp in the given location.
func FormatTime(ts uint64, loc *time.Location) string {
	if ts == 0 {
		return neverRendered
	}
	if loc == nil {
		loc = time.Local
	}

	return time.Unix(int64(ts), 0).In(loc).Format(timeLayout)
}

// FormatTimePtr renders an optional unix timestamp.
func FormatTimePtr(ts *uint64, loc *time.Location) string {
	if ts == nil {
		return neverRendered
	}
	return FormatTime(*ts, loc)
}

func renderID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func renderBool(b bool) string {
	return strconv.FormatBool(b)
}

func renderList(vals []string) string {
	return strings.Join(vals, ",")
}

// renderJSON marshals structured content for cells flagged IsJSON. Marshal
// failures degrade to an empty object rather than poisoning the whole row.
func renderJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
