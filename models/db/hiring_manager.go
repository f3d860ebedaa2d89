package dbmodels

type HiringManager struct {
	BaseModel
	Name       string `gorm:"type:varchar(255)"`
	Email      string `gorm:"type:varchar(255);uniqueIndex"`
	Department string `gorm:"type:varchar(255)"`
	Position   string `gorm:"type:varchar(255)"`
}
