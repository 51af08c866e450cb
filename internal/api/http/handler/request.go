package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst. An empty body leaves dst
// zero so that the field checks report what is missing.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// flexibleID accepts an id sent either as a JSON string or a JSON number.
// Falsy values decode to "" so that they are reported as missing.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("true")) {
		return errors.New("id must be a string or a number")
	}
	s, err := looseString(data)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = flexibleID(s)
	return nil
}

// flexibleText accepts any JSON scalar for a text field. Numbers and true
// keep their literal text; falsy values decode to "".
type flexibleText string

func (t *flexibleText) UnmarshalJSON(data []byte) error {
	s, err := looseString(data)
	if err != nil {
		return err
	}
	*t = flexibleText(s)
	return nil
}

// looseString reads a JSON scalar as text. null, false, "" and numeric
// zero all yield "".
func looseString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		return "", nil
	case bytes.Equal(data, []byte("true")):
		return "true", nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", errors.New("must be a string or a number")
	}
	f, err := n.Float64()
	if err == nil && f == 0 {
		return "", nil
	}
	return n.String(), nil
}

var (
	birthdayLayouts  = []string{time.DateOnly, time.RFC3339Nano}
	timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", time.DateOnly}
)

// parseTime tries each layout in turn. Layouts without a zone are read in loc.
func parseTime(value string, layouts []string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
