package domain

type User struct {
	StudentID  string `json:"student_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Session    string `json:"session"`
	IsAdmin    bool   `json:"is_admin"`
}
