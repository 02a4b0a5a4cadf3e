package business

import "testing"

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+18185550142", "(818) 555-0142"},
		{"8185550142", "(818) 555-0142"},
		{"+1 (818) 555-0142", "(818) 555-0142"},
		{"+442071838750", "+442071838750"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := FormatPhone(tc.in); got != tc.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDefaultHelpers(t *testing.T) {
	if got := Default.TelHref(); got != "tel:+18185550142" {
		t.Fatalf("unexpected tel href %q", got)
	}
	if got := Default.LicenseLabel(); got != "CSLB Lic. #1048291" {
		t.Fatalf("unexpected license label %q", got)
	}
	if got := Default.FullAddress(); got != "14320 Ventura Blvd, Suite 210, Sherman Oaks, CA 91423" {
		t.Fatalf("unexpected address %q", got)
	}
	if !Default.Serves("pasadena") {
		t.Fatalf("expected Pasadena in service area")
	}
	if Default.Serves("Fresno") {
		t.Fatalf("did not expect Fresno in service area")
	}
}

func TestLicenseLabelWithoutBoard(t *testing.T) {
	info := Info{LicenseNumber: "42"}
	if got := info.LicenseLabel(); got != "Lic. #42" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := (Info{}).LicenseLabel(); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}
