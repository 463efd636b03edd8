package types

type QuizzQuestion struct {
	ID           uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionText string        `gorm:"column:question_text" json:"question_text"`
	QuizzID      uint          `gorm:"column:quizz_id;index" json:"quizz_id"`
	Answers      []QuizzAnswer `gorm:"foreignKey:QuestionID;references:ID" json:"answers,omitempty"`
}

func (QuizzQuestion) TableName() string { return "questions" }
