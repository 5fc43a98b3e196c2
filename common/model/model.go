package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const Json = "json"

type (
	// Course is one schedule entry, either a lecture row or a derived
	// lab/problem-session entry. Days, Hours and Rooms are parallel: after
	// reconciliation they are all the same length or all empty.
	Course struct {
		Code       string   `json:"code"`
		Credits    int      `json:"credits"`
		Ects       float64  `json:"ects"`
		Instructor string   `json:"instructor"`
		Name       string   `json:"name"`
		Days       []string `json:"days"`
		Hours      []int    `json:"hours"`
		Rooms      []string `json:"rooms"`
	}
)

// Scheduled reports whether the course has any meeting data at all.
func (course *Course) Scheduled() bool {
	return len(course.Days) > 0 || len(course.Hours) > 0 || len(course.Rooms) > 0
}

// NormalizeCourseCode strips internal spaces and upper-cases a course code,
// e.g. "Cmpe 150.01" -> "CMPE150.01". Normalized codes key the output mapping.
func NormalizeCourseCode(code string) string {
	return strings.ToUpper(strings.Replace(code, " ", "", -1))
}

// Records maps normalized course keys to courses while remembering insertion
// order, so serialized output follows the document row order of the pages it
// was scraped from. The zero value is not usable, construct with NewRecords.
type Records struct {
	keys    []string
	courses map[string]*Course
}

func NewRecords() *Records {
	return &Records{courses: map[string]*Course{}}
}

// Add inserts a course under key. The first insertion wins: if the key is
// already present the mapping is left untouched and Add returns false.
func (r *Records) Add(key string, course *Course) bool {
	if _, ok := r.courses[key]; ok {
		return false
	}
	r.keys = append(r.keys, key)
	r.courses[key] = course
	return true
}

func (r *Records) Get(key string) (*Course, bool) {
	course, ok := r.courses[key]
	return course, ok
}

func (r *Records) Len() int {
	return len(r.keys)
}

// Keys returns the record keys in insertion order.
func (r *Records) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Merge appends every record from other, keeping the first occurrence when a
// key is already present. The keys that lost are returned.
func (r *Records) Merge(other *Records) (collisions []string) {
	for _, key := range other.keys {
		if !r.Add(key, other.courses[key]) {
			collisions = append(collisions, key)
		}
	}
	return collisions
}

// MarshalJSON writes the records as a JSON object whose members appear in
// insertion order.
func (r *Records) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		course, err := json.Marshal(r.courses[key])
		if err != nil {
			return nil, err
		}
		buf.Write(course)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object member by member so that insertion order
// survives a round trip.
func (r *Records) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("records: expected object, got %v", tok)
	}

	r.keys = nil
	r.courses = map[string]*Course{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("records: expected object key, got %v", tok)
		}

		course := &Course{}
		if err := dec.Decode(course); err != nil {
			return err
		}
		r.Add(key, course)
	}

	_, err = dec.Token()
	return err
}
