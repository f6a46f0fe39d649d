package quizgen

import "testing"

func testItem() *Item {
	return &Item{
		ID:              "test",
		Type:            TypeApplication,
		DifficultyLevel: 2,
		Prompt:          "Fix: Je vais à le parc.",
		CorrectAnswer:   "au parc",
		Explanation:     "à + le fuses into au.",
		Points:          PointsApplication,
		RuleID:          "contraction-au",
	}
}

func TestValidateAnswer_CaseAndPunctuationInsensitive(t *testing.T) {
	v := ValidateAnswer(testItem(), "Au Parc!")
	if !v.Correct {
		t.Fatal("want correct")
	}
	if v.Points != PointsApplication {
		t.Errorf("Points = %d, want %d", v.Points, PointsApplication)
	}
	if v.CorrectAnswer != "au parc" {
		t.Errorf("CorrectAnswer = %q", v.CorrectAnswer)
	}
}

func TestValidateAnswer_Whitespace(t *testing.T) {
	if v := ValidateAnswer(testItem(), "  au parc  "); !v.Correct {
		t.Error("trimmed answer should be correct")
	}
}

func TestValidateAnswer_Wrong(t *testing.T) {
	v := ValidateAnswer(testItem(), "à le parc")
	if v.Correct {
		t.Fatal("want incorrect")
	}
	if v.Points != 0 {
		t.Errorf("Points = %d, want 0", v.Points)
	}
	if v.Feedback == "" {
		t.Error("wrong answer should carry feedback")
	}
}

func TestValidateAnswer_AccentsMatter(t *testing.T) {
	it := testItem()
	it.CorrectAnswer = "créative"
	if v := ValidateAnswer(it, "creative"); v.Correct {
		t.Error("accent slip should be counted wrong")
	}
}

func TestValidateAnswer_NoFuzzyWordOrder(t *testing.T) {
	if v := ValidateAnswer(testItem(), "parc au"); v.Correct {
		t.Error("word-order slip should be counted wrong")
	}
}

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Au Parc!", "au parc"},
		{"  du pain.  ", "du pain"},
		{"vont", "vont"},
		{"Elle ne veut pas venir.", "elle ne veut pas venir"},
	}
	for _, c := range cases {
		if got := NormalizeAnswer(c.in); got != c.want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
