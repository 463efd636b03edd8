package types

type QuizzAnswer struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID uint   `gorm:"column:question_id;index" json:"question_id"`
	AnswerText string `gorm:"column:answer_text" json:"answer_text"`
	IsCorrect  bool   `gorm:"column:is_correct" json:"is_correct"`
}

func (QuizzAnswer) TableName() string { return "answers" }
