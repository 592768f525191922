package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ── 日历日期 ──────────────────────────────────────────────
//
// 职责：提供时区无关的 YYYY-MM-DD 日历日期与工作日（周一至周五）计数。
//
// 设计决策：
//   - 所有日期以年/月/日整数表示，不携带时区；比较与迭代统一换算为 UTC
//   - Parse 为宽松解析：字段缺失或非法时月/日回退为 1，不返回错误。
//     调用方（日期选择器）已保证输入格式，这里的宽松仅兜底
//   - 工作日计数不含节假日表
// ─────────────────────────────────────────────────────────────

// Date 时区无关的日历日期
type Date struct {
	Year  int
	Month int
	Day   int
}

// Parse 解析 YYYY-MM-DD 字符串
// 月/日字段缺失或非法时回退为 1，保持与前端日期选择器一致的宽松语义
func Parse(s string) Date {
	parts := strings.SplitN(s, "-", 3)
	atoi := func(i int) int {
		if i >= len(parts) {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return 0
		}
		return n
	}

	d := Date{Year: atoi(0), Month: atoi(1), Day: atoi(2)}
	if d.Month <= 0 {
		d.Month = 1
	}
	if d.Day <= 0 {
		d.Day = 1
	}
	return d
}

// Time 换算为 UTC 零点时刻（溢出字段按日历规则归一化）
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday 返回该日期的星期
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before 判断 d 是否早于 other
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// String 格式化为 YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsBusinessDay 判断是否为工作日（周一至周五）
func (d Date) IsBusinessDay() bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// BusinessDaysInclusive 闭区间 [start, end] 内的工作日天数
// end 早于 start 时返回 0；周六周日不计入
func BusinessDaysInclusive(start, end Date) int {
	s, e := start.Time(), end.Time()
	if e.Before(s) {
		return 0
	}

	count := 0
	for cur := s; !cur.After(e); cur = cur.AddDate(0, 0, 1) {
		wd := cur.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}
