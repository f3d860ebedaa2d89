package dbmodels

import "time"

type Timesheet struct {
	BaseModel
	EmployeeID string    `gorm:"type:varchar(36);index:idx_ts_employee_period;uniqueIndex:idx_ts_entry"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID"`
	ProjectID  string    `gorm:"type:varchar(36);uniqueIndex:idx_ts_entry"`
	Project    *Project  `gorm:"foreignKey:ProjectID"`
	EntryDate  time.Time `gorm:"type:date;uniqueIndex:idx_ts_entry"`
	Hours      float64   `gorm:"type:decimal(4,2)"`
	Month      int       `gorm:"index:idx_ts_employee_period"`
	Year       int       `gorm:"index:idx_ts_employee_period"`
}
