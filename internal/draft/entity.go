package draft

// Draft has the shape of a question in an exam create request.
type Draft struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Marks        int      `json:"marks"`
}

type DraftRequest struct {
	Topic      string `json:"topic" validate:"required,max=200"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Count      int    `json:"count"`
	Context    string `json:"context" validate:"max=2000"`
}
