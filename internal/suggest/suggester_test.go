package suggest

import "testing"

func TestSuggest(t *testing.T) {
	s := NewSuggester([]string{"cat", "car", "dog", "elephant"})
	got := s.Suggest("cta")
	if len(got) == 0 {
		t.Fatal("expected suggestions for cta")
	}
	for _, sg := range got {
		if sg.Distance > 2 {
			t.Errorf("suggestion %q distance %d exceeds cap", sg.Term, sg.Distance)
		}
	}
	// cat (distance 2) and car (distance 2) both qualify; ties are lexicographic.
	if got[0].Term != "car" && got[0].Term != "cat" {
		t.Errorf("unexpected top suggestion %q", got[0].Term)
	}
}

func TestSuggest_ExactTermExcluded(t *testing.T) {
	s := NewSuggester([]string{"cat", "cut"})
	for _, sg := range s.Suggest("cat") {
		if sg.Term == "cat" {
			t.Error("the term itself must not be suggested")
		}
	}
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	s := NewSuggester([]string{"Cat"})
	for _, sg := range s.Suggest("caT") {
		if sg.Term == "cat" {
			t.Error("identical word after lowercasing must not be suggested")
		}
	}
}

func TestSuggest_Ordering(t *testing.T) {
	s := NewSuggester([]string{"cart", "cat", "bat"})
	got := s.Suggest("catt")
	if len(got) < 2 {
		t.Fatalf("got %v", got)
	}
	// cat is distance 1, bat and cart distance 2.
	if got[0].Term != "cat" {
		t.Errorf("top=%q, want cat (smallest distance)", got[0].Term)
	}
	if got[1].Term != "bat" {
		t.Errorf("second=%q, want bat (lexicographic tie-break)", got[1].Term)
	}
}

func TestSuggest_MaxSuggestions(t *testing.T) {
	terms := []string{"cat1", "cat2", "cat3", "cat4", "cat5", "cat6"}
	s := NewSuggester(terms, WithMaxSuggestions(3))
	if got := s.Suggest("cat0"); len(got) != 3 {
		t.Errorf("got %d suggestions, want 3", len(got))
	}
}

func TestSuggest_LengthPreFilter(t *testing.T) {
	s := NewSuggester([]string{"internationalization"}, WithMaxDistance(2))
	if got := s.Suggest("cat"); len(got) != 0 {
		t.Errorf("got %v, want none (length gap exceeds distance cap)", got)
	}
}

func TestForMissing(t *testing.T) {
	s := NewSuggester([]string{"cat", "dog", "bird"})
	got := s.ForMissing([]string{"catt", "dogg"}, 1)
	if len(got) != 2 || got[0] != "cat" || got[1] != "dog" {
		t.Errorf("ForMissing=%v, want [cat dog]", got)
	}
}

func TestForMissing_Dedup(t *testing.T) {
	s := NewSuggester([]string{"cat"})
	got := s.ForMissing([]string{"catt", "cats"}, 2)
	if len(got) != 1 || got[0] != "cat" {
		t.Errorf("ForMissing=%v, want [cat] once", got)
	}
}

func TestForMissing_NoCandidates(t *testing.T) {
	s := NewSuggester([]string{"elephant"})
	if got := s.ForMissing([]string{"xy"}, 2); len(got) != 0 {
		t.Errorf("ForMissing=%v, want empty", got)
	}
}
