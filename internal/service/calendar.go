package service

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"band-scheduler-backend/internal/database/models"
)

// Calendar export: pure formatting over gig fields. Everything here is
// derived deterministically from date/time/whole-day/description/pay/status,
// so the same gig always produces the same payloads.

const (
	compactDateLayout     = "20060102"
	compactDateTimeLayout = "20060102T150405"
	outlookDateTimeLayout = "2006-01-02T15:04:05"
)

// BuildICS renders a gig as an iCalendar payload. Whole-day gigs use
// VALUE=DATE entries spanning the day; timed gigs use floating local
// date-times.
func BuildICS(gig *models.Gig) (string, error) {
	start, end, timed, err := eventBounds(gig)
	if err != nil {
		return "", err
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//band-scheduler-backend//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + gig.ID.String() + "@band-scheduler",
	}
	if timed {
		lines = append(lines,
			"DTSTAMP:"+start.Format(compactDateTimeLayout),
			"DTSTART:"+start.Format(compactDateTimeLayout),
			"DTEND:"+end.Format(compactDateTimeLayout),
		)
	} else {
		lines = append(lines,
			"DTSTAMP:"+start.Format(compactDateTimeLayout),
			"DTSTART;VALUE=DATE:"+start.Format(compactDateLayout),
			"DTEND;VALUE=DATE:"+end.Format(compactDateLayout),
		)
	}
	lines = append(lines,
		"SUMMARY:"+escapeICSText(gig.Name),
		"DESCRIPTION:"+escapeICSText(calendarDescription(gig)),
		"STATUS:"+icsStatus(gig.Status),
		"END:VEVENT",
		"END:VCALENDAR",
	)
	return strings.Join(lines, "\r\n") + "\r\n", nil
}

// GoogleCalendarURL builds a Google Calendar compose link for a gig
func GoogleCalendarURL(gig *models.Gig) (string, error) {
	start, end, timed, err := eventBounds(gig)
	if err != nil {
		return "", err
	}

	var dates string
	if timed {
		dates = start.Format(compactDateTimeLayout) + "/" + end.Format(compactDateTimeLayout)
	} else {
		dates = start.Format(compactDateLayout) + "/" + end.Format(compactDateLayout)
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", gig.Name)
	params.Set("dates", dates)
	params.Set("details", calendarDescription(gig))
	return "https://calendar.google.com/calendar/render?" + params.Encode(), nil
}

// OutlookCalendarURL builds an Outlook compose link for a gig
func OutlookCalendarURL(gig *models.Gig) (string, error) {
	start, end, timed, err := eventBounds(gig)
	if err != nil {
		return "", err
	}

	var startdt, enddt string
	if timed {
		startdt = start.Format(outlookDateTimeLayout)
		enddt = end.Format(outlookDateTimeLayout)
	} else {
		startdt = start.Format(models.GigDateLayout)
		enddt = end.Format(models.GigDateLayout)
	}

	params := url.Values{}
	params.Set("path", "/calendar/action/compose")
	params.Set("rru", "addevent")
	params.Set("startdt", startdt)
	params.Set("enddt", enddt)
	params.Set("subject", gig.Name)
	params.Set("body", calendarDescription(gig))
	return "https://outlook.office.com/calendar/0/deeplink/compose?" + params.Encode(), nil
}

// eventBounds resolves a gig to a start and end instant. Untimed gigs span
// the whole calendar day, ending at the start of the next day.
func eventBounds(gig *models.Gig) (start, end time.Time, timed bool, err error) {
	day, err := gig.Day()
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("invalid gig date: %w", err)
	}

	if !gig.IsWholeDay && gig.StartTime != nil && gig.EndTime != nil {
		startClock, err1 := time.Parse(models.GigTimeLayout, *gig.StartTime)
		endClock, err2 := time.Parse(models.GigTimeLayout, *gig.EndTime)
		if err1 == nil && err2 == nil {
			start = day.Add(time.Duration(startClock.Hour())*time.Hour + time.Duration(startClock.Minute())*time.Minute)
			end = day.Add(time.Duration(endClock.Hour())*time.Hour + time.Duration(endClock.Minute())*time.Minute)
			return start, end, true, nil
		}
	}

	return day, day.AddDate(0, 0, 1), false, nil
}

// calendarDescription assembles the shared description body: gig description,
// pay line, capitalized status, separated by blank lines.
func calendarDescription(gig *models.Gig) string {
	var parts []string
	if gig.Description != nil && *gig.Description != "" {
		parts = append(parts, *gig.Description)
	}
	if gig.Pay != nil {
		parts = append(parts, "Pay: $"+strconv.FormatFloat(*gig.Pay, 'f', -1, 64))
	}
	parts = append(parts, "Status: "+capitalize(string(gig.Status)))
	return strings.Join(parts, "\n\n")
}

// icsStatus maps gig lifecycle states onto the three states iCalendar
// defines. Completed gigs necessarily happened, so they export as confirmed.
func icsStatus(status models.GigStatus) string {
	switch status {
	case models.GigStatusConfirmed, models.GigStatusCompleted:
		return "CONFIRMED"
	case models.GigStatusDeclined:
		return "CANCELLED"
	default:
		return "TENTATIVE"
	}
}

func escapeICSText(text string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return replacer.Replace(text)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
