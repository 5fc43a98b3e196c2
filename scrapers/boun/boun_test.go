package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schedulePage = `
<html><body>
<table style="margin:20px 0">
  <tr><td colspan="4" class="bodygray">The course slots are as follows</td></tr>
  <tr>
    <td class="bodygray"><b>Slot 1</b></td><td class="bodygray">09:00 - 09:50</td>
    <td class="bodygray"><b>Slot 2</b></td><td class="bodygray">10:00 - 10:50</td>
  </tr>
  <tr>
    <td class="bodygray"><b>Slot 3</b></td><td class="bodygray">11:00 - 11:50</td>
    <td class="bodygray"><b>Slot 4</b></td><td class="bodygray">13:00 - 13:50</td>
  </tr>
  <tr>
    <td class="bodygray"><b>Slot 5</b></td><td class="bodygray">14:00 - 14:50</td>
    <td class="bodygray"><b>Slot 6</b></td><td class="bodygray">15:00 - 15:50</td>
  </tr>
</table>
<table border="1" width="1300px">
  <tr class="schtitle">
    <td>Code.Sec</td><td>Name</td><td>Cr.</td><td>Ects</td><td>Instr.</td><td>Days</td><td>Hours</td><td>Rooms</td>
  </tr>
  <tr class="schtd">
    <td><font>CMPE 150.01</font></td><td>REC</td><td></td><td></td><td></td><td>M</td><td>1</td><td></td>
  </tr>
  <tr class="schtd2">
    <td><font>CMPE 150.01</font></td><td>Intro to Computing</td><td>3</td><td>6,5</td><td>A. Lecturer</td><td>MW</td><td>12</td><td><span>BM A4</span><span>|</span><span>BM A4</span></td>
  </tr>
  <tr class="schtd">
    <td><font>CMPE 150.01</font></td><td>LAB</td><td></td><td></td><td></td><td>F</td><td>34</td><td><span>BM LAB2</span></td>
  </tr>
  <tr class="schtd2">
    <td><font>CMPE 150.01</font></td><td>PS</td><td></td><td></td><td></td><td>Th</td><td>4</td><td><span>BM A3</span></td>
  </tr>
  <tr class="schtd">
    <td><font>EC 101.01</font></td><td>Microeconomics</td><td>3</td><td>6</td><td>B. Economist</td><td></td><td></td><td></td>
  </tr>
  <tr class="schtd2">
    <td><font>PHYS 201.01</font></td><td>Basic Physics</td><td>4</td><td>7,5</td><td>C. Physicist</td><td>ThTh</td><td>56</td><td>&#221;B 101 | NH 202</td>
  </tr>
  <tr class="schtd">
    <td>CHEM 101.01</td><td>General Chemistry</td><td>4</td><td>6</td><td>D. Chemist</td><td>M</td><td>1</td><td></td>
  </tr>
  <tr class="schtd2">
    <td><font>CMPE 150.01</font></td><td>Impostor</td><td>0</td><td>0</td><td>E. Impostor</td><td>M</td><td>1</td><td><span>XX 1</span></td>
  </tr>
  <tr class="schtd">
    <td><font>CMPE 150.01</font></td><td>LAB</td><td></td><td></td><td></td><td>T</td><td>2</td><td><span>XX 2</span></td>
  </tr>
  <tr class="schtd2">
    <td><font>MATH 101.01</font></td><td>short row</td>
  </tr>
</table>
</body></html>`

const dividedPage = `
<html><body>
<table border="1" width="1300px">
  <tr class="schtitle">
    <td>Code.Sec</td><td>Name</td><td>Cr.</td><td>Ects</td><td>Instr.</td><td>Days</td><td>Hours</td><td>Rooms</td>
  </tr>
  <tr class="schtd">
    <td><font>CMPE 150.01</font></td><td>Intro to Computing</td><td>3</td><td>6</td><td>A. Lecturer</td><td>M</td><td>1</td><td><span>BM A4</span></td>
  </tr>
  <tr class="divider">
    <td colspan="8"></td>
  </tr>
  <tr class="schtd2">
    <td><font>CMPE 150.01</font></td><td>LAB</td><td></td><td></td><td></td><td>F</td><td>3</td><td><span>BM LAB2</span></td>
  </tr>
  <tr class="schtd">
    <td><font>EC 101.01</font></td><td>Microeconomics</td><td>3</td><td>6</td><td>B. Economist</td><td>T</td><td>2</td><td><span>NH 101</span></td>
  </tr>
  <tr class="schtd2">
    <td><font>EC 101.01</font></td><td>PS</td><td></td><td></td><td></td><td>W</td><td>4</td><td><span>NH 102</span></td>
  </tr>
</table>
</body></html>`

const noLegendPage = `
<html><body>
<table border="1" width="1300px">
  <tr class="schtitle">
    <td>Code.Sec</td><td>Name</td><td>Cr.</td><td>Ects</td><td>Instr.</td><td>Days</td><td>Hours</td><td>Rooms</td>
  </tr>
  <tr class="schtd">
    <td><font>HIST 105.01</font></td><td>Making of the Modern World</td><td>3</td><td>5</td><td>F. Historian</td><td>M</td><td>17</td><td><span>NH 101</span></td>
  </tr>
</table>
</body></html>`

func TestExtractPage(t *testing.T) {
	records, err := extractPage(schedulePage, false)
	require.NoError(t, err)

	expectedKeys := []string{
		"CMPE150.01",
		"CMPE150.01 LAB 1",
		"CMPE150.01 P.S. 2",
		"PHYS201.01",
	}
	assert.Equal(t, expectedKeys, records.Keys())
}

func TestExtractPagePrimaryCourse(t *testing.T) {
	records, err := extractPage(schedulePage, false)
	require.NoError(t, err)

	course, ok := records.Get("CMPE150.01")
	require.True(t, ok)

	assert.Equal(t, "CMPE 150.01", course.Code)
	assert.Equal(t, 3, course.Credits)
	assert.Equal(t, 6.5, course.Ects)
	assert.Equal(t, "A. Lecturer", course.Instructor)
	assert.Equal(t, "Intro to Computing", course.Name)
	assert.Equal(t, []string{"M", "W"}, course.Days)
	assert.Equal(t, []int{9, 10}, course.Hours)
	assert.Equal(t, []string{"BM A4", "BM A4"}, course.Rooms)
}

func TestExtractPageSessions(t *testing.T) {
	records, err := extractPage(schedulePage, false)
	require.NoError(t, err)

	lab, ok := records.Get("CMPE150.01 LAB 1")
	require.True(t, ok)

	assert.Equal(t, "CMPE 150.01 LAB 1", lab.Code)
	assert.Equal(t, 0, lab.Credits)
	assert.Equal(t, 0.0, lab.Ects)
	assert.Equal(t, "A. Lecturer", lab.Instructor)
	assert.Equal(t, "Intro to Computing LAB 1", lab.Name)
	assert.Equal(t, []string{"F", "F"}, lab.Days)
	assert.Equal(t, []int{11, 13}, lab.Hours)
	assert.Equal(t, []string{"BM LAB2", "BM LAB2"}, lab.Rooms)

	// The sequence counter is shared across session kinds of one course.
	ps, ok := records.Get("CMPE150.01 P.S. 2")
	require.True(t, ok)

	assert.Equal(t, "CMPE 150.01 P.S. 2", ps.Code)
	assert.Equal(t, []string{"Th"}, ps.Days)
	assert.Equal(t, []int{13}, ps.Hours)
	assert.Equal(t, []string{"BM A3"}, ps.Rooms)
}

func TestExtractPageNonDataRowBreaksSessionWalk(t *testing.T) {
	records, err := extractPage(dividedPage, false)
	require.NoError(t, err)

	// The lab row behind the divider is orphaned, not attached to the
	// course above it.
	assert.Equal(t, []string{"CMPE150.01", "EC101.01", "EC101.01 P.S. 1"}, records.Keys())
	_, ok := records.Get("CMPE150.01 LAB 1")
	assert.False(t, ok)

	// An adjacent continuation is still consumed as before.
	ps, ok := records.Get("EC101.01 P.S. 1")
	require.True(t, ok)
	assert.Equal(t, []string{"W"}, ps.Days)
}

func TestExtractPageRoomTextFallback(t *testing.T) {
	records, err := extractPage(schedulePage, false)
	require.NoError(t, err)

	phys, ok := records.Get("PHYS201.01")
	require.True(t, ok)

	assert.Equal(t, []string{"Th", "Th"}, phys.Days)
	assert.Equal(t, []int{14, 15}, phys.Hours)
	assert.Equal(t, []string{"İB 101", "NH 202"}, phys.Rooms)
}

func TestExtractPageDuplicateKeepsFirst(t *testing.T) {
	records, err := extractPage(schedulePage, false)
	require.NoError(t, err)

	course, ok := records.Get("CMPE150.01")
	require.True(t, ok)
	assert.Equal(t, "Intro to Computing", course.Name)

	// The duplicate's lab row was consumed but not emitted, so the first
	// lab's room survives.
	lab, _ := records.Get("CMPE150.01 LAB 1")
	assert.Equal(t, []string{"BM LAB2", "BM LAB2"}, lab.Rooms)
}

func TestExtractPageUnscheduledFiltering(t *testing.T) {
	records, err := extractPage(schedulePage, false)
	require.NoError(t, err)
	_, ok := records.Get("EC101.01")
	assert.False(t, ok)

	records, err = extractPage(schedulePage, true)
	require.NoError(t, err)
	course, ok := records.Get("EC101.01")
	require.True(t, ok)

	assert.Equal(t, []string{}, course.Days)
	assert.Equal(t, []int{}, course.Hours)
	assert.Equal(t, []string{}, course.Rooms)
}

func TestExtractPageSkipsRowWithoutCode(t *testing.T) {
	records, err := extractPage(schedulePage, true)
	require.NoError(t, err)

	_, ok := records.Get("CHEM101.01")
	assert.False(t, ok)
}

func TestExtractPageIdempotent(t *testing.T) {
	first, err := extractPage(schedulePage, false)
	require.NoError(t, err)

	second, err := extractPage(schedulePage, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractPageWithoutLegendKeepsRawSlots(t *testing.T) {
	records, err := extractPage(noLegendPage, false)
	require.NoError(t, err)

	course, ok := records.Get("HIST105.01")
	require.True(t, ok)

	assert.Equal(t, []int{1, 7}, course.Hours)
	assert.Equal(t, []string{"M", "M"}, course.Days)
}

func TestExtractPageMissingTable(t *testing.T) {
	records, err := extractPage(`<html><body><p>no schedule here</p></body></html>`, false)

	assert.Error(t, err)
	assert.Equal(t, 0, records.Len())
}

func TestExtractPageErrorMessage(t *testing.T) {
	_, err := extractPage(`<html><body><div class="error">No records found</div></body></html>`, false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "No records found")
}

func TestSessionType(t *testing.T) {
	assert.Equal(t, "LAB", sessionType("LAB"))
	assert.Equal(t, "P.S.", sessionType("PS"))
	assert.Equal(t, "P.S.", sessionType("P.S."))
	assert.Equal(t, "LAB", sessionType("REC"))
}

func TestIsContinuation(t *testing.T) {
	assert.True(t, isContinuation("LAB"))
	assert.True(t, isContinuation("LAB 2"))
	assert.True(t, isContinuation("P.S."))
	assert.True(t, isContinuation("PS 1"))
	assert.True(t, isContinuation("REC"))

	assert.False(t, isContinuation("Intro to Computing"))
	assert.False(t, isContinuation("LABORATORY TECHNIQUES"))
	assert.False(t, isContinuation("lab"))
}
