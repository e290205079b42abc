package model

import "testing"

func TestInferSeniority(t *testing.T) {
	cases := []struct {
		title string
		want  Seniority
	}{
		{"CEO", SeniorityExecutive},
		{"Co-Founder & CTO", SeniorityExecutive},
		{"Managing Director, EMEA", SeniorityExecutive},
		{"VP of Engineering", SenioritySenior},
		{"Head of Product", SenioritySenior},
		{"Director of Sales", SenioritySenior},
		{"Engineering Manager", SeniorityPeer},
		{"Staff Software Engineer", SeniorityPeer},
		{"Principal Architect", SeniorityPeer},
		{"Marketing Associate", SeniorityJunior},
		{"Data Analyst", SeniorityJunior},
		{"Summer Intern", SeniorityJunior},
		{"Software Engineer", SeniorityUnset},
		{"", SeniorityUnset},
		{"   ", SeniorityUnset},
	}
	for _, tc := range cases {
		if got := InferSeniority(tc.title); got != tc.want {
			t.Fatalf("InferSeniority(%q) = %d, want %d", tc.title, got, tc.want)
		}
	}
}

func TestInferSeniorityMostSeniorWins(t *testing.T) {
	// "Founder" outranks "Manager" even when both appear.
	if got := InferSeniority("Founder and General Manager"); got != SeniorityExecutive {
		t.Fatalf("got %d, want executive", got)
	}
	// "Director" outranks "Lead".
	if got := InferSeniority("Director, Tech Lead Programs"); got != SenioritySenior {
		t.Fatalf("got %d, want senior", got)
	}
}

func TestInferSeniorityRequiresWordBoundary(t *testing.T) {
	// "vp" inside a word must not match.
	if got := InferSeniority("developer"); got != SeniorityUnset {
		t.Fatalf("developer = %d, want unset", got)
	}
}
