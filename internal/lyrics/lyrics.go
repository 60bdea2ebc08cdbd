// Package lyrics provides timed lyric lines for the lyrics view.
package lyrics

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Line is a single timestamped lyric line.
type Line struct {
	Time time.Duration
	Text string
}

// Lines is an ordered sequence of timed lyric lines.
type Lines []Line

// LineAt returns the index of the line active at the given playback
// position: the last line starting at or before pos. Returns -1 before
// the first line or when there are no lines.
func (l Lines) LineAt(pos time.Duration) int {
	idx := -1
	for i, line := range l {
		if line.Time > pos {
			break
		}
		idx = i
	}
	return idx
}

// Matches timestamps like [00:12.34], [00:12:34] or [00:12].
var timestampRe = regexp.MustCompile(`\[(\d+):(\d+)(?:[.:](\d+))?\]`)

// ParseLRC parses LRC-format lyrics. Metadata tags are skipped; a line
// may carry several timestamps, producing one entry per timestamp.
func ParseLRC(r io.Reader) (Lines, error) {
	var lines Lines
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		matches := timestampRe.FindAllStringSubmatchIndex(raw, -1)
		if len(matches) == 0 {
			continue
		}

		last := matches[len(matches)-1]
		text := strings.TrimSpace(raw[last[1]:])

		for _, match := range matches {
			ts, err := parseTimestamp(raw[match[0]:match[1]])
			if err != nil {
				continue
			}
			lines = append(lines, Line{Time: ts, Text: text})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Time < lines[j].Time
	})

	return lines, nil
}

func parseTimestamp(s string) (time.Duration, error) {
	matches := timestampRe.FindStringSubmatch(s)
	if matches == nil {
		return 0, nil
	}

	minutes, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, err
	}

	seconds, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, err
	}

	var millis int
	if matches[3] != "" {
		millis, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, err
		}
		// Two digits means centiseconds.
		if len(matches[3]) == 2 {
			millis *= 10
		}
	}

	return time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}
