package utils

import "time"

// filetimeEpochDelta is the number of 100ns intervals between the
// FILETIME epoch (1601-01-01) and the Unix epoch (1970-01-01).
const filetimeEpochDelta = 116444736000000000

// FiletimeToTime converts an ASF creation date (100ns intervals since
// 1601-01-01 UTC) to a time.Time.
func FiletimeToTime(ft uint64) time.Time {
	ns := (int64(ft) - filetimeEpochDelta) * 100
	return time.Unix(0, ns).UTC()
}

// Duration100ns converts a 100ns-unit duration field (play duration,
// send duration, average time per frame) to a time.Duration.
func Duration100ns(d uint64) time.Duration {
	return time.Duration(d) * 100 * time.Nanosecond
}

// PrerollToDuration converts a preroll field, which is in milliseconds
// unlike the other duration fields, to a time.Duration.
func PrerollToDuration(ms uint64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
