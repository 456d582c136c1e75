package dto_test

import (
	"testing"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
)

func TestUserFromDomainComposesFullName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Nadia", "Karim", "Nadia Karim"},
		{"Nadia", "", "Nadia"},
		{"", "Karim", "Karim"},
		{"", "", ""},
	}
	for _, tc := range cases {
		resp := dto.UserFromDomain(&domain.User{FirstName: tc.first, LastName: tc.last})
		if resp.FullName != tc.want {
			t.Fatalf("FullName(%q, %q) = %q, want %q", tc.first, tc.last, resp.FullName, tc.want)
		}
	}
}
