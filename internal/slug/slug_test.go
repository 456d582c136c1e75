package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Design", "design"},
		{"AI & Robotics 💡", "ai-robotics"},
		{"  Data   Science  ", "data-science"},
		{"Café Culture", "cafe-culture"},
		{"C++ / Systems", "c-systems"},
		{"back_end", "back_end"},
		{"already-slugged", "already-slugged"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
