package models

import "testing"

func TestParseValueKinds(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{"", KindNull},
		{"2019", KindInteger},
		{"45000", KindInteger},
		{"45000.5", KindReal},
		{"N/A", KindText},
		{"$45,000", KindText},
		{" 2019", KindText},
		{"Model 3", KindText},
		{"C001", KindText},
	}

	for _, tt := range tests {
		got := ParseValue(tt.raw).Kind()
		if got != tt.want {
			t.Errorf("ParseValue(%q).Kind() = %s; want %s", tt.raw, got, tt.want)
		}
	}
}

func TestValueNumeric(t *testing.T) {
	tests := []struct {
		v       Value
		want    float64
		wantErr bool
	}{
		{Int(45000), 45000, false},
		{Real(3.5), 3.5, false},
		{Text("2019"), 2019, false},
		{Text("$45,000"), 0, true},
		{Text("N/A"), 0, true},
		{Null(), 0, true},
	}

	for _, tt := range tests {
		got, err := tt.v.Numeric()
		if (err != nil) != tt.wantErr {
			t.Errorf("Numeric(%v): err = %v; wantErr %v", tt.v, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Numeric(%v) = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestValueStringRoundTrip(t *testing.T) {
	values := []Value{Null(), Int(2013), Real(1.25), Text("N/A"), Text(" Corolla  ")}
	for _, v := range values {
		back := ParseValue(v.String())
		if !back.Equal(v) {
			t.Errorf("ParseValue(%q) = %v; want %v", v.String(), back, v)
		}
	}
}

func TestValueEqualDistinguishesKinds(t *testing.T) {
	if Int(2019).Equal(Text("2019")) {
		t.Error("integer 2019 should not equal text \"2019\"")
	}
	if !Null().Equal(Null()) {
		t.Error("null should equal null")
	}
}

func TestFingerprintSeparatesCells(t *testing.T) {
	a := []Value{Text("ab"), Text("c")}
	b := []Value{Text("a"), Text("bc")}
	if Fingerprint(a) == Fingerprint(b) {
		t.Error("fingerprints should distinguish cell boundaries")
	}

	dup := []Value{Text("ab"), Text("c")}
	if Fingerprint(a) != Fingerprint(dup) {
		t.Error("identical rows should share a fingerprint")
	}
}
