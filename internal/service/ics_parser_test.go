package service

import (
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDutyICS_AllDayRange(t *testing.T) {
	ics := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:evt-1
SUMMARY:客户现场支持
DTSTART;VALUE=DATE:20250818
DTEND;VALUE=DATE:20250823
END:VEVENT
END:VCALENDAR
`
	periods, err := ParseDutyICS(strings.NewReader(ics))
	if err != nil {
		t.Fatalf("解析应成功: %v", err)
	}
	if len(periods) != 1 {
		t.Fatalf("期望1个区间，实际=%d", len(periods))
	}
	p := periods[0]
	if p.Agenda != "客户现场支持" {
		t.Errorf("期望日程=客户现场支持，实际=%s", p.Agenda)
	}
	if !p.Start.Equal(date(2025, 8, 18)) {
		t.Errorf("期望开始=2025-08-18，实际=%v", p.Start)
	}
	// DTEND 排他边界换算为闭区间
	if !p.End.Equal(date(2025, 8, 22)) {
		t.Errorf("期望结束=2025-08-22，实际=%v", p.End)
	}
}

func TestParseDutyICS_TimedEventTruncatesToDate(t *testing.T) {
	ics := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:evt-1
SUMMARY:现场会议
DTSTART:20250820T093000Z
DTEND:20250820T170000Z
END:VEVENT
END:VCALENDAR
`
	periods, err := ParseDutyICS(strings.NewReader(ics))
	if err != nil {
		t.Fatalf("解析应成功: %v", err)
	}
	p := periods[0]
	if !p.Start.Equal(date(2025, 8, 20)) || !p.End.Equal(date(2025, 8, 20)) {
		t.Errorf("期望时刻信息被截断为日历日，实际=%v~%v", p.Start, p.End)
	}
}

func TestParseDutyICS_NoEndDefaultsToSingleDay(t *testing.T) {
	ics := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:evt-1
SUMMARY:内部复盘
DTSTART;VALUE=DATE:20250825
END:VEVENT
END:VCALENDAR
`
	periods, err := ParseDutyICS(strings.NewReader(ics))
	if err != nil {
		t.Fatalf("解析应成功: %v", err)
	}
	p := periods[0]
	if !p.End.Equal(p.Start) {
		t.Errorf("期望无 DTEND 时为单日，实际=%v~%v", p.Start, p.End)
	}
}

func TestParseDutyICS_SkipsEventsWithoutSummary(t *testing.T) {
	ics := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:evt-1
DTSTART;VALUE=DATE:20250818
END:VEVENT
BEGIN:VEVENT
UID:evt-2
SUMMARY:有效事件
DTSTART;VALUE=DATE:20250819
END:VEVENT
END:VCALENDAR
`
	periods, err := ParseDutyICS(strings.NewReader(ics))
	if err != nil {
		t.Fatalf("解析应成功: %v", err)
	}
	if len(periods) != 1 {
		t.Fatalf("期望跳过无标题事件，实际=%d个区间", len(periods))
	}
	if periods[0].Agenda != "有效事件" {
		t.Errorf("期望保留有效事件，实际=%s", periods[0].Agenda)
	}
}

func TestParseDutyICS_InvalidContent(t *testing.T) {
	if _, err := ParseDutyICS(strings.NewReader("随便的文本")); err == nil {
		t.Error("期望非法内容解析失败")
	}
}
