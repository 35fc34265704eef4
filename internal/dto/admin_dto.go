package dto

// OptionCreateDTO is used within QuestionCreateDTO for admin test creation.
type OptionCreateDTO struct {
	OrderInQuestion int    `json:"order_in_question" binding:"required,min=1"`
	Text            string `json:"text" binding:"required"`
	IsCorrect       bool   `json:"is_correct"`
}

type QuestionCreateDTO struct {
	OrderInTest int               `json:"order_in_test" binding:"required,min=1"`
	Prompt      string            `json:"prompt" binding:"required"`
	Explanation string            `json:"explanation,omitempty"`
	Type        string            `json:"type" binding:"required,oneof=single_choice multiple_choice true_false short_answer"`
	Points      float64           `json:"points" binding:"required,gt=0"`
	Options     []OptionCreateDTO `json:"options" binding:"omitempty,dive"`
}

// TestCreateDTO is for admins creating a test with all its questions.
type TestCreateDTO struct {
	Title        string              `json:"title" binding:"required"`
	Description  string              `json:"description,omitempty"`
	ChapterID    uint                `json:"chapter_id" binding:"required"`
	ParagraphID  *uint               `json:"paragraph_id,omitempty"`
	Purpose      string              `json:"purpose" binding:"required,oneof=formative summative diagnostic practice"`
	PassingScore float64             `json:"passing_score" binding:"min=0,max=1"`
	Questions    []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type ParagraphCreateDTO struct {
	Title          string `json:"title" binding:"required"`
	OrderInChapter int    `json:"order_in_chapter" binding:"required,min=1"`
}

// ChapterCreateDTO creates a chapter with its paragraph anchors.
type ChapterCreateDTO struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description,omitempty"`
	Paragraphs  []ParagraphCreateDTO `json:"paragraphs" binding:"omitempty,dive"`
}
