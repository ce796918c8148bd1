package core

import "testing"

func TestNewPerson_AgeGating(t *testing.T) {
	job := NewJob("Developer", 30, PerHour)
	partner := NewPerson("Pat", "Doe", 40, nil, nil)

	tests := []struct {
		name       string
		age        int
		wantJob    bool
		wantSpouse bool
	}{
		{"child", 10, false, false},
		{"just under working age", 15, false, false},
		{"working age", 16, true, false},
		{"teen", 17, true, false},
		{"adult", 18, true, true},
		{"older adult", 45, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPerson("Sam", "Doe", tt.age, job, partner)
			if (p.Job != nil) != tt.wantJob {
				t.Errorf("job present = %v, want %v", p.Job != nil, tt.wantJob)
			}
			if (p.Spouse != nil) != tt.wantSpouse {
				t.Errorf("spouse present = %v, want %v", p.Spouse != nil, tt.wantSpouse)
			}
			if tt.wantJob && p.Job != job {
				t.Errorf("job should be the shared instance")
			}
		})
	}
}

func TestNewPerson_SpouseNotReciprocal(t *testing.T) {
	bob := NewPerson("Bob", "Smith", 45, nil, nil)
	mary := NewPerson("Mary", "Smith", 43, nil, bob)
	if mary.Spouse != bob {
		t.Fatalf("expected Mary's spouse to be Bob")
	}
	if bob.Spouse != nil {
		t.Fatalf("Bob's spouse should stay unset, got %v", bob.Spouse)
	}
}

func TestPerson_String(t *testing.T) {
	bob := NewPerson("Bob", "Smith", 45, nil, nil)
	mary := NewPerson("Mary", "Smith", 43, NewJob("Developer", 34.5, PerHour), bob)

	if got := bob.String(); got != "Bob Smith, 45, Jobless, Spouseless" {
		t.Fatalf("unexpected %q", got)
	}
	want := "Mary Smith, 43, Developer, Bob Smith"
	if got := mary.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := mary.String(); got != want {
		t.Fatalf("second render differs: %q", got)
	}
}

func TestPerson_Narrate(t *testing.T) {
	bob := NewPerson("Bob", "Smith", 45, nil, nil)
	mary := NewPerson("Mary", "Smith", 43, NewJob("Developer", 34.5, PerHour), bob)

	want := "Mary Smith is 43 years old.\nMary is a Developer.\nMary's spouse is Bob Smith."
	if got := mary.Narrate(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := mary.Narrate(); got != want {
		t.Fatalf("second render differs: %q", got)
	}

	want = "Bob Smith is 45 years old.\nBob does not have a job.\nBob is single."
	if got := bob.Narrate(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
