package repo

import "testing"

func TestWithSSL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@db/spk", "postgres://u:p@db/spk?sslmode=require"},
		{"postgres://u:p@db/spk?sslmode=disable", "postgres://u:p@db/spk?sslmode=disable"},
		{"host=db dbname=spk", "host=db dbname=spk sslmode=require"},
	}
	for _, tt := range tests {
		if got := WithSSL(tt.in); got != tt.want {
			t.Errorf("WithSSL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
