package question

// DefaultPageSize is the number of questions per page when none is configured.
const DefaultPageSize = 10

// Category is a labelled grouping of questions.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a stored trivia question. Category holds the string-encoded Category id.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion carries the raw fields of a create request before validation.
type NewQuestion struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Category   string `validate:"required,numeric"`
	Difficulty string `validate:"required,numeric"`
}

// QuestionPage is one page of the full question list.
type QuestionPage struct {
	Questions      []Question
	TotalQuestions int
	Categories     map[int]string
}

// QuestionList is a search result.
type QuestionList struct {
	Questions      []Question
	TotalQuestions int
}

// CategoryQuestions is the result of filtering by category.
type CategoryQuestions struct {
	Questions       []Question
	TotalQuestions  int
	CurrentCategory string
}

// QuizRequest asks for the next quiz question. CategoryID uses display ids:
// 0 means every category.
type QuizRequest struct {
	CategoryID  int
	PreviousIDs []int
}
