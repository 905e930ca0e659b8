package model

type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName specifies the table name for GORM
func (Category) TableName() string {
	return "categories"
}
