package types

// Quizz is the parent entity of the multiple-choice schema, stored in the
// quizz database.
type Quizz struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:name" json:"name"`
	Description string          `gorm:"column:description" json:"description"`
	UserID      *string         `gorm:"column:user_id" json:"user_id,omitempty"`
	Questions   []QuizzQuestion `gorm:"foreignKey:QuizzID;references:ID" json:"questions,omitempty"`
}

func (Quizz) TableName() string { return "quizzes" }
