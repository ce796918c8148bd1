package demo

import (
	"bytes"
	"strings"
	"testing"

	"household/internal/services"
)

const expected = `Money test cases
10.0
25.0
2.0
18.0
27.5
8.0
33.0
-2.0
USD15.0
CAN10.0
GBP5.0
EUR12.0
USD27.5
EUR-6.333333333333332
CAN12.0

Job test cases
6000.0
34.5
6900.0
50000.0
55000.0
55000.0
Developer, 34.5 per hour
Designer, 55000.0 per year

Person test cases
Mary Smith is 43 years old.
Mary is a Developer.
Mary's spouse is Bob Smith.
Mary Smith, 43, Developer, Bob Smith

Family test cases
34.5
Clyde Smith is born! Congrats!
Family members are: Bob Smith Mary Smith Clyde Smith
`

func TestRun(t *testing.T) {
	var out bytes.Buffer
	Run(&out, services.NewHouseholdService(&out, nil))

	got := out.String()
	if got == expected {
		return
	}
	gotLines := strings.Split(got, "\n")
	wantLines := strings.Split(expected, "\n")
	for i := 0; i < len(wantLines) || i < len(gotLines); i++ {
		var g, w string
		if i < len(gotLines) {
			g = gotLines[i]
		}
		if i < len(wantLines) {
			w = wantLines[i]
		}
		if g != w {
			t.Fatalf("line %d: expected %q, got %q", i+1, w, g)
		}
	}
}

func TestRun_Repeatable(t *testing.T) {
	var first, second bytes.Buffer
	Run(&first, services.NewHouseholdService(&first, nil))
	Run(&second, services.NewHouseholdService(&second, nil))
	if first.String() != second.String() {
		t.Fatalf("demo output differs between runs")
	}
}
