package videometa

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

var errUnrecognisedURL = errors.New("not a YouTube video or playlist URL")

// ParseURL extracts the video id, or failing that the playlist id, from raw.
// Exactly one of the returned ids is non-empty on success.
func ParseURL(raw string) (videoID, playlistID string, err error) {
	raw = strings.TrimSpace(raw)
	if videoIDPattern.MatchString(raw) {
		return raw, "", nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", errUnrecognisedURL, err)
	}

	host := strings.ToLower(u.Hostname())
	for _, p := range []string{"www.", "m.", "music."} {
		host = strings.TrimPrefix(host, p)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	switch host {
	case "youtu.be":
		if len(segments) >= 1 && videoIDPattern.MatchString(segments[0]) {
			return segments[0], "", nil
		}
	case "youtube.com", "youtube-nocookie.com":
		q := u.Query()
		if v := q.Get("v"); videoIDPattern.MatchString(v) {
			return v, "", nil
		}
		if len(segments) >= 2 {
			switch segments[0] {
			case "shorts", "embed", "live", "v":
				if videoIDPattern.MatchString(segments[1]) {
					return segments[1], "", nil
				}
			}
		}
		if list := q.Get("list"); list != "" {
			return "", list, nil
		}
	}

	return "", "", errUnrecognisedURL
}

// ParseDuration converts an ISO 8601 duration as returned by the Data API
// ("PT1H2M3S", "P1DT2H") to a time.Duration.
func ParseDuration(s string) (time.Duration, error) {
	if !strings.HasPrefix(s, "P") {
		return 0, fmt.Errorf("bad duration %q", s)
	}

	var total time.Duration
	inTime := false
	num := ""
	for _, r := range s[1:] {
		switch {
		case r == 'T':
			inTime = true
		case r >= '0' && r <= '9':
			num += string(r)
		default:
			if num == "" {
				return 0, fmt.Errorf("bad duration %q", s)
			}
			n, err := strconv.Atoi(num)
			if err != nil {
				return 0, fmt.Errorf("bad duration %q: %w", s, err)
			}
			num = ""

			unit, ok := durationUnit(r, inTime)
			if !ok {
				return 0, fmt.Errorf("bad duration %q: unit %q", s, r)
			}
			total += time.Duration(n) * unit
		}
	}
	if num != "" {
		return 0, fmt.Errorf("bad duration %q: trailing number", s)
	}
	return total, nil
}

func durationUnit(r rune, inTime bool) (time.Duration, bool) {
	if inTime {
		switch r {
		case 'H':
			return time.Hour, true
		case 'M':
			return time.Minute, true
		case 'S':
			return time.Second, true
		}
		return 0, false
	}
	switch r {
	case 'W':
		return 7 * 24 * time.Hour, true
	case 'D':
		return 24 * time.Hour, true
	}
	return 0, false
}
