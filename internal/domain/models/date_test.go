package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-02-01", "2024-02-01", false},
		{"2024-02-01T23:30:00+01:00", "2024-02-01", false},
		{"2024-02-01T00:00:00.000Z", "2024-02-01", false},
		{"01-02-2024", "", true},
		{"", "", true},
		{"2024-02-30", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got.String() != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDate_Before(t *testing.T) {
	a := Date{2024, time.January, 31}
	b := Date{2024, time.February, 1}
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("Before ordering is wrong")
	}
	if !(Date{2023, time.December, 31}).Before(a) {
		t.Error("earlier year should sort first")
	}
}

func TestDate_JSON(t *testing.T) {
	var v struct {
		D *Date `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"d":"2024-03-09"}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.D == nil || *v.D != (Date{2024, time.March, 9}) {
		t.Fatalf("got %v", v.D)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"d":"2024-03-09"}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestDate_UnmarshalJSON_Rejects(t *testing.T) {
	for _, in := range []string{`"2024-3-9"`, `"2024-03-09T00:00:00Z"`, `20240309`, `"2024-13-01"`} {
		var d Date
		if err := json.Unmarshal([]byte(in), &d); err == nil {
			t.Errorf("Unmarshal(%s) should fail, got %v", in, d)
		}
	}
}

func TestDate_IsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).IsZero() {
		t.Error("real date should not be zero")
	}
}
