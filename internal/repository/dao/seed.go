package dao

import (
	"fmt"

	"github.com/campuselect/election-api/internal/store"
)

type Position struct {
	ID          string `json:"id"`
	TitleBn     string `json:"titleBn"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Positions is the fixed catalog of elected offices. It is compiled in, not
// stored, and voters cannot edit it.
var Positions = []Position{
	{ID: "VP", TitleBn: "সহ-সভাপতি", Title: "Vice President", Description: "Leads the student union and represents students to the administration."},
	{ID: "GS", TitleBn: "সাধারণ সম্পাদক", Title: "General Secretary", Description: "Runs the day-to-day affairs of the union."},
	{ID: "AGS", TitleBn: "সহ-সাধারণ সম্পাদক", Title: "Assistant General Secretary", Description: "Assists the general secretary and coordinates committees."},
	{ID: "SS", TitleBn: "ক্রীড়া সম্পাদক", Title: "Sports Secretary", Description: "Organizes inter-department sports and tournaments."},
	{ID: "CS", TitleBn: "সাংস্কৃতিক সম্পাদক", Title: "Cultural Secretary", Description: "Organizes cultural programs and festivals."},
}

func FindPosition(id string) (Position, bool) {
	for _, p := range Positions {
		if p.ID == id {
			return p, true
		}
	}
	return Position{}, false
}

// Roster is the seeded voter list for the device. Profile updates never
// modify it; they go into the customUsers override map instead.
var Roster = map[string]User{
	"2019331501": {StudentID: "2019331501", Name: "Admin", Department: "Election Commission", Session: "-", IsAdmin: true},
	"2019331502": {StudentID: "2019331502", Name: "Rahim Uddin", Department: "Computer Science & Engineering", Session: "2019-20"},
	"2019331503": {StudentID: "2019331503", Name: "Karima Akter", Department: "English", Session: "2019-20"},
	"2019331504": {StudentID: "2019331504", Name: "Sumon Mia", Department: "Mathematics", Session: "2019-20"},
	"2019331505": {StudentID: "2019331505", Name: "Farzana Yasmin", Department: "Law", Session: "2019-20"},
	"2019331506": {StudentID: "2019331506", Name: "Tanvir Hasan", Department: "Accounting & Information Systems", Session: "2019-20"},
}

// Passwords are the default credentials for the seeded roster, matched only
// when a student has no customPasswords override.
var Passwords = map[string]string{
	"2019331501": "admin123",
	"2019331502": "vote1234",
	"2019331503": "vote1234",
	"2019331504": "vote1234",
	"2019331505": "vote1234",
	"2019331506": "vote1234",
}

// SeedElectionState writes the default election record on first run so the
// singleton key always exists. TotalVoters defaults to the roster size minus
// the admin account.
func SeedElectionState(kv *store.Store) error {
	_, found, err := kv.Get(KeyElectionState)
	if err != nil {
		return fmt.Errorf("kv.Get -> %w", err)
	}
	if found {
		return nil
	}

	voters := 0
	for _, u := range Roster {
		if !u.IsAdmin {
			voters++
		}
	}

	d := NewElectionDAO(kv)
	if err = d.Put(ElectionState{IsActive: false, VotedCount: 0, TotalVoters: voters}); err != nil {
		return fmt.Errorf("d.Put -> %w", err)
	}

	return nil
}
