package wire

import "time"

const (
	nanosPerMilli   = 1_000_000
	timestampLayout = "2006-01-02 15:04:05"
)

// TimeFromNanos переводит nat64 наносекунды в время с точностью до миллисекунд.
func TimeFromNanos(nanos uint64) time.Time {
	return time.UnixMilli(int64(nanos / nanosPerMilli))
}

func NanosFromTime(t time.Time) uint64 {
	if t.IsZero() || t.Before(time.Unix(0, 0)) {
		return 0
	}
	return uint64(t.UnixNano())
}

// FormatTimestamp отображение временной метки в локальном времени.
func FormatTimestamp(nanos uint64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return TimeFromNanos(nanos).In(loc).Format(timestampLayout)
}

func FormatTime(t time.Time, loc *time.Location) string {
	return FormatTimestamp(NanosFromTime(t), loc)
}

func optNanos(t *time.Time) Opt[uint64] {
	if t == nil {
		return None[uint64]()
	}
	return Some(NanosFromTime(*t))
}

func optTime(o Opt[uint64]) *time.Time {
	if !o.IsSome() {
		return nil
	}
	t := TimeFromNanos(o[0])
	return &t
}
