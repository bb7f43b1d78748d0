package mappers

import "time"

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}

func timePtrToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	m := t.UnixMilli()
	return &m
}

func millisPtrToTime(m *int64) *time.Time {
	if m == nil {
		return nil
	}
	t := millisToTime(*m)
	return &t
}
