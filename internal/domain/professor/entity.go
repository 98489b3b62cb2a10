package professor

// Professor is the canonical owner of uploads. UserID links to the signed-up
// account when the professor has one; Canvas imports may create rows that are
// not linked yet.
type Professor struct {
	ID     int64   `gorm:"column:id;primaryKey" json:"id"`
	Name   string  `gorm:"column:name;index" json:"name"`
	Email  *string `gorm:"column:email" json:"email,omitempty"`
	UserID *int64  `gorm:"column:user_id;index" json:"-"`
}

func (Professor) TableName() string { return "professors" }
