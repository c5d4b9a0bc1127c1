package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		region string
		want   string
	}{
		{
			name:   "valid E.164 format",
			input:  "+48601234567",
			region: "PL",
			want:   "+48601234567",
		},
		{
			name:   "with spaces",
			input:  "+48 601 234 567",
			region: "PL",
			want:   "+48601234567",
		},
		{
			name:   "with dashes",
			input:  "+48-601-234-567",
			region: "PL",
			want:   "+48601234567",
		},
		{
			name:   "local number uses default region",
			input:  "601 234 567",
			region: "PL",
			want:   "+48601234567",
		},
		{
			name:   "explicit country code wins over region",
			input:  "+1 (212) 555-1234",
			region: "PL",
			want:   "+12125551234",
		},
		{
			name:   "leading and trailing spaces",
			input:  "  +48601234567  ",
			region: "PL",
			want:   "+48601234567",
		},
		{
			name:   "empty string",
			input:  "",
			region: "PL",
			want:   "",
		},
		{
			name:   "only whitespace",
			input:  "   ",
			region: "PL",
			want:   "",
		},
		{
			name:   "letters only",
			input:  "call me",
			region: "PL",
			want:   "",
		},
		{
			name:   "too short",
			input:  "+1",
			region: "PL",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input, tt.region)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q, %q) = %q, want %q", tt.input, tt.region, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"+48 601 234 567", "601234567", "+1 212 555 1234"}

	for _, input := range inputs {
		once := NormalizePhone(input, "PL")
		twice := NormalizePhone(once, "PL")
		if once != twice {
			t.Errorf("NormalizePhone not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
