package ingest

import "testing"

func TestAllowedExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{"pdf", true},
		{".pdf", true},
		{"PDF", true},
		{"docx", true},
		{"txt", true},
		{"json", true},
		{"tiff", false},
		{"png", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AllowedExt(tt.ext); got != tt.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/leases/.archive", true},
		{"/leases/.smith_lease.pdf", true},
		{"/leases/smith_lease.pdf", false},
		{"relative/dir", false},
	}
	for _, tt := range tests {
		if got := IsHidden(tt.path); got != tt.want {
			t.Errorf("IsHidden(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
