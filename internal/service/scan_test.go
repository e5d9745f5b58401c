package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuselect/election-api/internal/service"
)

func TestExtractStudentID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "labeled id field",
			raw:  "Name: Rahim Uddin, ID: 2019331502, Dept: CSE",
			want: "2019331502",
		},
		{
			name: "labeled id field is case insensitive",
			raw:  "id: 12345",
			want: "12345",
		},
		{
			name: "labeled student field",
			raw:  "Student: 2019331503",
			want: "2019331503",
		},
		{
			name: "bare digit run within noise",
			raw:  "||UNI-CARD||2019331504||END",
			want: "2019331504",
		},
		{
			name: "short digit run falls back to first digits",
			raw:  "card 42 issued",
			want: "42",
		},
		{
			name: "sid label",
			raw:  "SID: 987654321",
			want: "987654321",
		},
		{
			name: "no digits returns input unchanged",
			raw:  "no-id-here",
			want: "no-id-here",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ExtractStudentID(tt.raw))
		})
	}
}
