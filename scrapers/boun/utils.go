package main

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bounhub/boun-backend/common/model"
)

// dayTokens is the fixed token set of the Days column, two-letter tokens
// first so "Th" never reads as "T" followed by a stray "h".
var dayTokens = []string{"Th", "St", "Su", "M", "T", "W", "F"}

// parseDays scans left to right keeping every match, repeats included, so a
// string like "ThThM" stays aligned one-to-one with the hour and room lists.
func parseDays(text string) []string {
	var days []string
	for i := 0; i < len(text); {
		matched := false
		for _, token := range dayTokens {
			if strings.HasPrefix(text[i:], token) {
				days = append(days, token)
				i += len(token)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return days
}

// parseSlots reads the Hours column one character at a time. Every digit in
// 1-8 is a slot number, anything else is dropped.
func parseSlots(text string) []int {
	var slots []int
	for _, r := range text {
		if r >= '1' && r <= '8' {
			slots = append(slots, int(r-'0'))
		}
	}
	return slots
}

// resolveHours maps slot numbers to start hours through the legend. Slots
// missing from the legend are dropped. When the page carried no legend at
// all, the raw slot numbers are kept instead.
func resolveHours(slots []int, legend SlotLegend) []int {
	if len(legend) == 0 {
		return slots
	}

	var hours []int
	for _, slot := range slots {
		if hour, ok := legend[slot]; ok {
			hours = append(hours, hour)
		}
	}
	return hours
}

// The registration pages are served in a Turkish legacy charset and room
// names come through with mangled dotted-I glyphs.
var turkishGlyphs = strings.NewReplacer("Ý", "İ", "ý", "i")

func fixTurkishChars(text string) string {
	return turkishGlyphs.Replace(text)
}

var roomSeparators = regexp.MustCompile(`[,|]`)

// parseRooms prefers room codes held in span elements, filtering out the
// red bar separators the page renders between them. Cells without spans
// fall back to splitting the plain text.
func parseRooms(cell *goquery.Selection) []string {
	var rooms []string

	spans := cell.Find("span")
	if spans.Length() > 0 {
		spans.Each(func(_ int, span *goquery.Selection) {
			room := fixTurkishChars(strings.TrimSpace(span.Text()))
			if room != "" && room != "|" {
				rooms = append(rooms, room)
			}
		})
		return rooms
	}

	for _, piece := range roomSeparators.Split(strings.TrimSpace(cell.Text()), -1) {
		room := fixTurkishChars(strings.TrimSpace(piece))
		if room != "" {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// padSchedule equalizes the day/hour/room lists by repeating the last
// element of any non-empty list that is shorter than the longest one. A list
// that started out empty stays empty.
func padSchedule(course *model.Course) {
	if !course.Scheduled() {
		return
	}

	max := len(course.Days)
	if len(course.Hours) > max {
		max = len(course.Hours)
	}
	if len(course.Rooms) > max {
		max = len(course.Rooms)
	}

	for len(course.Days) > 0 && len(course.Days) < max {
		course.Days = append(course.Days, course.Days[len(course.Days)-1])
	}
	for len(course.Hours) > 0 && len(course.Hours) < max {
		course.Hours = append(course.Hours, course.Hours[len(course.Hours)-1])
	}
	for len(course.Rooms) > 0 && len(course.Rooms) < max {
		course.Rooms = append(course.Rooms, course.Rooms[len(course.Rooms)-1])
	}
}
