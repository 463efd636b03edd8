package types

// CategoryQuestion shares its table name with QuizzQuestion; the two live
// in separate databases and are never joined.
type CategoryQuestion struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionText string `gorm:"column:question_text;not null" json:"question_text"`
	Answer       string `gorm:"column:answer;not null" json:"answer"`
	CategoryID   uint   `gorm:"column:category_id;index" json:"category_id"`
}

func (CategoryQuestion) TableName() string { return "questions" }
