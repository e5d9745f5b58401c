package domain

type Candidate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StudentID  string `json:"student_id"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Session    string `json:"session"`
	Manifesto  string `json:"manifesto"`
	Symbol     string `json:"symbol"`
	Votes      int    `json:"votes"`
}
