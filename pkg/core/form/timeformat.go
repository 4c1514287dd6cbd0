package form

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// FormatClockTime converts a 24-hour "HH:MM" value to its "h:MM AM/PM"
// display form. Hours 0 and 12 both render as "12"; hours 13-23 drop 12.
// Values already carrying a meridiem are passed through unchanged, so the
// conversion is idempotent. A value that cannot be parsed is logged and
// echoed back unformatted; formatting never fails hard.
func FormatClockTime(logger *zap.Logger, value string) string {
	upper := strings.ToUpper(value)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		return value
	}

	hour, minute, err := parseClockTime(value)
	if err != nil {
		logger.Warn("Time formatting failed, echoing raw value",
			zap.String("value", value),
			zap.Error(err))
		return value
	}

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%s %s", displayHour, minute, meridiem)
}

// FormatTimeRange builds the display range "start - end" from two 24-hour
// time values
func FormatTimeRange(logger *zap.Logger, start, end string) string {
	return FormatClockTime(logger, start) + " - " + FormatClockTime(logger, end)
}

// parseClockTime splits an "HH:MM" value into its hour and minute parts.
// The minute part is kept as a string so the display form preserves it
// verbatim.
func parseClockTime(value string) (int, string, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("expected HH:MM, got %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, "", fmt.Errorf("invalid hour in %q", value)
	}

	minutePart := parts[1]
	minute, err := strconv.Atoi(minutePart)
	if err != nil || len(minutePart) != 2 || minute < 0 || minute > 59 {
		return 0, "", fmt.Errorf("invalid minutes in %q", value)
	}

	return hour, minutePart, nil
}
