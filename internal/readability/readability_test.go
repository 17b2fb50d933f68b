package readability

import "testing"

func TestReadingLevelZeroGuard(t *testing.T) {
	cases := []struct{ letters, words, sentences int }{
		{0, 0, 0},
		{10, 0, 1},
		{10, 2, 0},
	}
	for _, c := range cases {
		if got := ReadingLevel(c.letters, c.words, c.sentences); got != 0 {
			t.Fatalf("ReadingLevel(%d, %d, %d) = %d, want 0", c.letters, c.words, c.sentences, got)
		}
	}
}

func TestReadingLevelFormula(t *testing.T) {
	// 100/20*4.71 + 20/2*0.5 - 21.43 = 23.55 + 5 - 21.43 = 7.12
	if got := ReadingLevel(100, 20, 2); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	// 60/20*4.71 + 20/1*0.5 - 21.43 = 14.13 + 10 - 21.43 = 2.7
	if got := ReadingLevel(60, 20, 1); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestReadingLevelFloorsAtZero(t *testing.T) {
	// 2/2*4.71 + 2/2*0.5 - 21.43 is far below zero.
	if got := ReadingLevel(2, 2, 2); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestClassifyNormalTarget(t *testing.T) {
	cases := []struct {
		level int
		words int
		want  Class
	}{
		{9, 20, ClassNormal},
		{10, 20, ClassHard},
		{12, 20, ClassHard},
		{14, 20, ClassVeryHard},
		{15, 20, ClassVeryHard},
		{15, 5, ClassNormal},
		{30, 13, ClassNormal},
	}
	for _, c := range cases {
		if got := Classify(c.level, c.words, Normal); got != c.want {
			t.Fatalf("Classify(%d, %d) = %s, want %s", c.level, c.words, got, c.want)
		}
	}
}

func TestClassifyOtherTargets(t *testing.T) {
	if got := Classify(15, 20, Technical); got != ClassHard {
		t.Fatalf("technical 15 should be hard, got %s", got)
	}
	if got := Classify(18, 20, Technical); got != ClassVeryHard {
		t.Fatalf("technical 18 should be very hard, got %s", got)
	}
	if got := Classify(9, 8, Accessible); got != ClassHard {
		t.Fatalf("accessible 9 should be hard, got %s", got)
	}
	if got := Classify(12, 8, Accessible); got != ClassVeryHard {
		t.Fatalf("accessible 12 should be very hard, got %s", got)
	}
}

func TestParseTarget(t *testing.T) {
	cases := map[string]Target{
		"":            Normal,
		"NORMAL":      Normal,
		" technical ": Technical,
		"accessible":  Accessible,
		"bogus":       Normal,
	}
	for in, want := range cases {
		if got := ParseTarget(in); got != want {
			t.Fatalf("ParseTarget(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestValidateTarget(t *testing.T) {
	if _, err := ValidateTarget("bogus"); err == nil {
		t.Fatalf("expected error for unknown target")
	}
	got, err := ValidateTarget("Technical")
	if err != nil || got != Technical {
		t.Fatalf("unexpected result %s, %v", got, err)
	}
}

func TestUnknownTargetUsesNormalThresholds(t *testing.T) {
	if Target("OTHER").Thresholds() != Normal.Thresholds() {
		t.Fatalf("expected normal thresholds for unknown target")
	}
}

func TestReadingTime(t *testing.T) {
	if got := ReadingTime(0); got != 0 {
		t.Fatalf("expected 0, got %f", got)
	}
	if got := ReadingTime(250); got != 60 {
		t.Fatalf("expected 60, got %f", got)
	}
	if got := ReadingTime(125); got != 30 {
		t.Fatalf("expected 30, got %f", got)
	}
}
