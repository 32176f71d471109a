package progress

import (
	"fmt"
	"time"

	"github.com/krau/tgxfer/common/utils/strutil"
)

const detailedTemplate = `%s
│ %s
│ Completed: %s/%s
│ Bytes: %.2f%%
│ Speed: %s
│ ETA: %s
╰─────────────────────╯`

// Detailed returns a Formatter that also reports speed and ETA measured from start.
func Detailed(title string, start time.Time) Formatter {
	return DetailedWithClock(title, start, time.Now)
}

func DetailedWithClock(title string, start time.Time, now func() time.Time) Formatter {
	return func(done, total int64) string {
		elapsed := now().Sub(start)
		percent := Percent(done, total)
		var speed float64
		if elapsed > 0 {
			speed = float64(done) / elapsed.Seconds()
		}
		var eta time.Duration
		if speed > 0 && total > done {
			eta = time.Duration(float64(total-done) / speed * float64(time.Second))
		}
		return fmt.Sprintf(detailedTemplate,
			title,
			render(percent, "♦", "◇"),
			strutil.HumanReadableSize(done),
			strutil.HumanReadableSize(total),
			percent,
			strutil.HumanReadableSpeed(speed),
			strutil.FormatDuration(eta.Truncate(time.Second)),
		)
	}
}
