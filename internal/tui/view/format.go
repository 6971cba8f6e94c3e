// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/javiermolinar/dayline/internal/layout"
)

// FormatDuration formats minutes as "45 min", "1 hr" or "1 hr 30 min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%d hr", h)
	}
	return fmt.Sprintf("%d hr %d min", h, m)
}

// FormatHour formats a fractional hour as HH:MM.
func FormatHour(h float64) string {
	total := int(math.Round(h * 60))
	return fmt.Sprintf("%02d:%02d", total/60%24, total%60)
}

// FormatHour12 formats a whole hour on a 12-hour clock: "7 AM", "12 PM".
// Minutes, when present, are kept: "9:15 AM".
func FormatHour12(h float64) string {
	total := int(math.Round(h*60)) % (24 * 60)
	hour, minute := total/60, total%60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	if minute == 0 {
		return fmt.Sprintf("%d %s", hour, suffix)
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}

// FormatRange formats a block's time span as "07:45 – 08:15 (30 min)".
func FormatRange(p layout.Positioned) string {
	return fmt.Sprintf("%s – %s (%s)",
		p.Start.Format("15:04"), p.End.Format("15:04"), FormatDuration(p.Duration))
}

// AgendaText renders positioned blocks as plain text, one per line.
func AgendaText(title string, ps []layout.Positioned) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for _, p := range ps {
		check := "[ ]"
		if p.Completed {
			check = "[x]"
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", p.Category.Icon(), check, FormatRange(p), p.Title)
	}
	return b.String()
}
