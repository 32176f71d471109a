package strutil

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// HumanReadableSize formats size with binary units and two decimals,
// picking the largest unit whose magnitude is at least 1 (capped at PB).
func HumanReadableSize(size int64) string {
	value := float64(size)
	unit := sizeUnits[0]
	for i, u := range sizeUnits {
		unit = u
		if value < 1024 || i == len(sizeUnits)-1 {
			break
		}
		value /= 1024
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// HumanReadableSpeed formats a byte rate per second.
func HumanReadableSpeed(bytesPerSecond float64) string {
	if bytesPerSecond < 0 {
		bytesPerSecond = 0
	}
	return HumanReadableSize(int64(bytesPerSecond)) + "/s"
}
