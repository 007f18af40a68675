package pagination

import "testing"

func TestValidate_Defaults(t *testing.T) {
	got := Validate(Query{}, DefaultOptions())
	if got.Page != 1 || got.Limit != 10 {
		t.Fatalf("expected {1 10}, got {%d %d}", got.Page, got.Limit)
	}
}

func TestValidate_Clamping(t *testing.T) {
	got := Validate(Query{Page: "0", Limit: "1000"}, DefaultOptions())
	if got.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", got.Page)
	}
	if got.Limit != 100 {
		t.Fatalf("expected limit clamped to 100, got %d", got.Limit)
	}
}

func TestValidate_NegativeValues(t *testing.T) {
	got := Validate(Query{Page: "-3", Limit: "-5"}, DefaultOptions())
	if got.Page != 1 || got.Limit != 1 {
		t.Fatalf("expected {1 1}, got {%d %d}", got.Page, got.Limit)
	}
}

func TestValidate_NonNumeric(t *testing.T) {
	got := Validate(Query{Page: "abc", Limit: "xyz"}, DefaultOptions())
	if got.Page != 1 {
		t.Fatalf("expected non-numeric page to fall back to 1, got %d", got.Page)
	}
	if got.Limit != 1 {
		t.Fatalf("expected non-numeric limit to clamp to 1, got %d", got.Limit)
	}
}

func TestValidate_PassThrough(t *testing.T) {
	got := Validate(Query{Page: "3", Limit: "25"}, DefaultOptions())
	if got.Page != 3 || got.Limit != 25 {
		t.Fatalf("expected {3 25}, got {%d %d}", got.Page, got.Limit)
	}
}

func TestValidate_CustomOptions(t *testing.T) {
	opts := Options{MaxLimit: 50, DefaultLimit: 20, DefaultPage: 1}

	got := Validate(Query{}, opts)
	if got.Page != 1 || got.Limit != 20 {
		t.Fatalf("expected {1 20}, got {%d %d}", got.Page, got.Limit)
	}

	got = Validate(Query{Limit: "75"}, opts)
	if got.Limit != 50 {
		t.Fatalf("expected limit clamped to 50, got %d", got.Limit)
	}
}

func TestValidated_Offset(t *testing.T) {
	v := Validated{Page: 3, Limit: 25}
	if v.Offset() != 50 {
		t.Fatalf("expected offset 50, got %d", v.Offset())
	}
}
