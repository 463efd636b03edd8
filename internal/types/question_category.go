package types

// QuestionCategory is the parent entity of the open-answer schema, stored
// in the dev database. Its questions carry a single free-text answer
// instead of labeled options.
type QuestionCategory struct {
	ID          uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string             `gorm:"column:name;not null" json:"name"`
	Description string             `gorm:"column:description" json:"description"`
	Questions   []CategoryQuestion `gorm:"foreignKey:CategoryID;references:ID" json:"questions,omitempty"`
}

func (QuestionCategory) TableName() string { return "question_categories" }
