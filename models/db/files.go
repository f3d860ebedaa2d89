package dbmodels

type FileType string

const (
	FileTypeResume FileType = "resume"
	FileTypeDoc    FileType = "doc"
)

// FileRecord keeps metadata of objects stored in S3.
type FileRecord struct {
	BaseModel
	ApplicantID string   `gorm:"type:varchar(36);index"`
	FileType    FileType `gorm:"type:varchar(50)"`
	ObjectKey   string   `gorm:"type:varchar(512)"`
	FileName    string   `gorm:"type:varchar(255)"`
	ContentType string   `gorm:"type:varchar(255)"`
}
