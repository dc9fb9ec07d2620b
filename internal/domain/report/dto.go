package report

// DayEntry is one raw day in an employee's monthly report, used by callers to
// render calendars.
type DayEntry struct {
	Date        string   `json:"date"`
	Status      string   `json:"status"`
	WorkHours   *float64 `json:"workHours"`
	CheckInTime *string  `json:"checkInTime"`
}

// EmployeeSummary is one employee's monthly rollup. Employees with no
// attendance rows in the month do not appear at all.
type EmployeeSummary struct {
	EmployeeID           int64      `json:"employeeId"`
	EmployeeName         string     `json:"employeeName"`
	Present              int        `json:"present"`
	Absent               int        `json:"absent"`
	HalfDay              int        `json:"halfDay"`
	Leave                int        `json:"leave"`
	WorkingDays          int        `json:"workingDays"`
	AverageWorkHours     float64    `json:"averageWorkHours"`
	AttendancePercentage float64    `json:"attendancePercentage"`
	Days                 []DayEntry `json:"days"`
}
