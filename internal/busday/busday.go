package busday

import "time"

// Truncate 把时间归一化到 UTC 零点，时间轴上的计算只关心整天
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// AddBusinessDays 返回 date 之后（n 为负数时是之前）第 n 个工作日，
// 周六和周日既不会被计入也不会被落在上面
func AddBusinessDays(date time.Time, n int) time.Time {
	d := Truncate(date)
	if n == 0 {
		return d
	}

	step := 1
	if n < 0 {
		step = -1
		n = -n
	}

	for n > 0 {
		d = d.AddDate(0, 0, step)
		if IsBusinessDay(d) {
			n--
		}
	}

	return d
}

// Offset 返回从 origin 到 target 的带符号工作日数，周末不计入，
// target 和 origin 相同时返回 0。对于落在工作日上的 target，
// AddBusinessDays(origin, Offset(origin, target)) == target
func Offset(origin, target time.Time) int {
	o := Truncate(origin)
	t := Truncate(target)

	step := 1
	if t.Before(o) {
		step = -1
	}

	n := 0
	for !o.Equal(t) {
		o = o.AddDate(0, 0, step)
		if IsBusinessDay(o) {
			n += step
		}
	}

	return n
}

// MondayOf 返回 date 所在工作周的周一（周六、周日归入上一个工作周）
func MondayOf(date time.Time) time.Time {
	d := Truncate(date)
	// time.Weekday 以周日为 0，这里换算成以周一为 0
	back := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -back)
}

func FridayOf(date time.Time) time.Time {
	return MondayOf(date).AddDate(0, 0, 4)
}
