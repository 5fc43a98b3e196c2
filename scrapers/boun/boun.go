package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bounhub/boun-backend/common/model"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Header labels of the schedule table, used to index data row cells.
const (
	codeSecHeader = "Code.Sec"
	creditsHeader = "Cr."
	ectsHeader    = "Ects"
	instrHeader   = "Instr."
	nameHeader    = "Name"
	daysHeader    = "Days"
	hoursHeader   = "Hours"
	roomsHeader   = "Rooms"
)

// Lab, problem session and recitation rows carry one of these tokens in the
// Name column instead of a course title.
var continuationPattern = regexp.MustCompile(`^(LAB|P\.S\.|PS|REC)\s*\d*$`)

func isContinuation(name string) bool {
	return continuationPattern.MatchString(name)
}

// isDataRow reports whether a table row carries course data. Header, divider
// and decorative rows do not wear the striped classes.
func isDataRow(row *goquery.Selection) bool {
	return row.HasClass("schtd") || row.HasClass("schtd2")
}

// sessionType collapses the continuation tokens into the two session kinds
// that appear in output keys.
func sessionType(token string) string {
	switch token {
	case "PS":
		return "P.S."
	case "REC":
		return "LAB"
	}
	return token
}

// extractPage parses one department page's decoded markup and extracts its
// course records, enriching hours through the page's own slot legend when
// one is present.
func extractPage(markup string, includeUnscheduled bool) (*model.Records, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return model.NewRecords(), errors.Wrap(err, "failed to parse markup")
	}

	if errText := strings.TrimSpace(doc.Find("div.error").Text()); errText != "" {
		return model.NewRecords(), errors.Errorf("error message on page: %s", errText)
	}

	legend := parseSlotLegend(doc)
	if len(legend) == 0 {
		log.Debugln("no slot legend on page, keeping raw slot numbers")
	}

	return extractCourses(doc, legend, includeUnscheduled)
}

// pageExtractor carries the read-only per-page state every decoding step
// needs: the column order of the schedule table, the slot legend and the
// caller's unscheduled-course policy.
type pageExtractor struct {
	legend             SlotLegend
	columns            map[string]int
	headerCount        int
	includeUnscheduled bool
}

// extractCourses walks the schedule table of one department page and builds
// the course record mapping, including derived lab/problem-session records.
// Only a missing table or header row is an error; every other anomaly
// degrades to a logged warning and a skipped row or a defaulted field.
func extractCourses(doc *goquery.Document, legend SlotLegend, includeUnscheduled bool) (*model.Records, error) {
	records := model.NewRecords()

	table := doc.Find(`table[border="1"][width="1300px"]`).First()
	if table.Length() == 0 {
		return records, errors.New("course schedule table not found")
	}

	headerRow := table.Find("tr.schtitle").First()
	if headerRow.Length() == 0 {
		return records, errors.New("schedule table header row not found")
	}

	columns := map[string]int{}
	headerCells := headerRow.Find("td")
	headerCells.Each(func(i int, cell *goquery.Selection) {
		columns[strings.TrimSpace(cell.Text())] = i
	})

	pe := &pageExtractor{
		legend:             legend,
		columns:            columns,
		headerCount:        headerCells.Length(),
		includeUnscheduled: includeUnscheduled,
	}

	// Every row of the table is collected and walked with a forward cursor,
	// so a primary row can consume the continuation rows that follow it. The
	// striped row classes mark data rows; any other row breaks a lookahead.
	var rows []*goquery.Selection
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		rows = append(rows, row)
	})

	for i := 0; i < len(rows); i++ {
		if !isDataRow(rows[i]) {
			continue
		}
		cells := rows[i].Find("td")
		if cells.Length() < pe.headerCount {
			continue
		}

		// Continuation rows are only ever consumed by the lookahead of
		// their parent below. One reaching this loop has no parent row
		// left to attach to.
		if isContinuation(pe.text(cells, nameHeader)) {
			continue
		}

		codeCell := pe.cell(cells, codeSecHeader)
		var code string
		if codeCell != nil {
			code = strings.TrimSpace(codeCell.Find("font").First().Text())
		}
		if code == "" {
			log.Warnln("course code not found in row, skipping")
			continue
		}

		course := pe.decodeCourse(code, cells)
		key := model.NormalizeCourseCode(code)

		emitted := false
		switch {
		case !course.Scheduled() && !pe.includeUnscheduled:
			log.WithFields(log.Fields{"code": key}).Debugln("skipping unscheduled course")
		case records.Add(key, course):
			emitted = true
		default:
			log.WithFields(log.Fields{"code": key}).Infoln("duplicate course code found")
		}

		// Lookahead: consume the session rows that belong to this course so
		// they are never processed twice. The sequence counter is shared by
		// all session kinds under one course. The walk stops at the first
		// non-data row, a continuation beyond one is an orphan.
		counter := 0
		for i+1 < len(rows) {
			if !isDataRow(rows[i+1]) {
				break
			}
			nextCells := rows[i+1].Find("td")
			if nextCells.Length() < pe.headerCount {
				break
			}
			match := continuationPattern.FindStringSubmatch(pe.text(nextCells, nameHeader))
			if match == nil {
				break
			}
			i++
			counter++

			if !emitted {
				continue
			}

			kind := sessionType(match[1])
			session := pe.decodeSession(course, kind, counter, nextCells)
			sessionKey := key + " " + kind + " " + strconv.Itoa(counter)
			if !records.Add(sessionKey, session) {
				log.WithFields(log.Fields{"code": sessionKey}).Infoln("duplicate session code found")
			}
		}
	}

	return records, nil
}

// cell returns the cell under a header label, nil when the label is unknown
// or the row is too short.
func (pe *pageExtractor) cell(cells *goquery.Selection, header string) *goquery.Selection {
	idx, ok := pe.columns[header]
	if !ok || idx >= cells.Length() {
		return nil
	}
	return cells.Eq(idx)
}

func (pe *pageExtractor) text(cells *goquery.Selection, header string) string {
	cell := pe.cell(cells, header)
	if cell == nil {
		return ""
	}
	return strings.TrimSpace(cell.Text())
}

func (pe *pageExtractor) decodeCourse(code string, cells *goquery.Selection) *model.Course {
	credits := 0
	if creditsText := pe.text(cells, creditsHeader); isDigits(creditsText) {
		credits, _ = strconv.Atoi(creditsText)
	}

	ects := 0.0
	if ectsText := pe.text(cells, ectsHeader); ectsText != "" {
		if parsed, err := strconv.ParseFloat(strings.Replace(ectsText, ",", ".", -1), 64); err == nil {
			ects = parsed
		}
	}

	course := &model.Course{
		Code:       code,
		Credits:    credits,
		Ects:       ects,
		Instructor: pe.text(cells, instrHeader),
		Name:       pe.text(cells, nameHeader),
	}
	pe.decodeSchedule(course, cells)

	return course
}

func (pe *pageExtractor) decodeSession(parent *model.Course, kind string, seq int, cells *goquery.Selection) *model.Course {
	instructor := pe.text(cells, instrHeader)
	if instructor == "" {
		instructor = parent.Instructor
	}

	session := &model.Course{
		Code:       fmt.Sprintf("%s %s %d", parent.Code, kind, seq),
		Instructor: instructor,
		Name:       fmt.Sprintf("%s %s %d", parent.Name, kind, seq),
	}
	pe.decodeSchedule(session, cells)

	return session
}

func (pe *pageExtractor) decodeSchedule(course *model.Course, cells *goquery.Selection) {
	course.Days = parseDays(pe.text(cells, daysHeader))
	course.Hours = resolveHours(parseSlots(pe.text(cells, hoursHeader)), pe.legend)
	if roomsCell := pe.cell(cells, roomsHeader); roomsCell != nil {
		course.Rooms = parseRooms(roomsCell)
	}

	padSchedule(course)

	// Serialized records carry empty arrays, not nulls.
	if course.Days == nil {
		course.Days = []string{}
	}
	if course.Hours == nil {
		course.Hours = []int{}
	}
	if course.Rooms == nil {
		course.Rooms = []string{}
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
