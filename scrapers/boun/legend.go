package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// SlotLegend maps slot numbers (1-8) to start hours on a 24 hour clock. An
// absent entry means the start hour is unknown, never hour zero.
type SlotLegend map[int]int

var (
	slotPattern = regexp.MustCompile(`Slot\s*(\d+)`)
	timePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-`)
)

// parseSlotLegend reads the slot legend table embedded in a schedule page.
// Pages without a legend yield an empty map, which callers must treat as
// "hour enrichment unavailable" rather than a failure.
func parseSlotLegend(doc *goquery.Document) SlotLegend {
	legend := SlotLegend{}

	table := doc.Find(`table[style="margin:20px 0"]`).First()
	if table.Length() == 0 {
		log.Debugln("time slot legend table not found")
		return legend
	}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		// The caption row spans the whole table.
		if row.Find("td[colspan]").Length() > 0 {
			return
		}

		cells := row.Find("td.bodygray")
		for i := 0; i+1 < cells.Length(); i += 2 {
			slotCell := cells.Eq(i)
			timeCell := cells.Eq(i + 1)

			// Slot labels are the bold cells.
			if slotCell.Find("b").Length() == 0 {
				continue
			}

			slotMatch := slotPattern.FindStringSubmatch(strings.TrimSpace(slotCell.Text()))
			if slotMatch == nil {
				continue
			}
			slot, err := strconv.Atoi(slotMatch[1])
			if err != nil {
				continue
			}

			timeMatch := timePattern.FindStringSubmatch(strings.TrimSpace(timeCell.Text()))
			if timeMatch == nil {
				continue
			}
			hour, err := strconv.Atoi(timeMatch[1])
			if err != nil {
				continue
			}

			legend[slot] = hour
		}
	})

	log.WithFields(log.Fields{"slots": len(legend)}).Debugln("parsed time slot legend")

	return legend
}
