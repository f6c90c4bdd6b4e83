package grisu

import "testing"

func TestKascadeID(t *testing.T) {
	tests := []struct {
		name      string
		corsikaID int
		want      int
		wantOK    bool
	}{
		{"gamma", 1, 1, true},
		{"electron", 2, 2, true},
		{"positron", 3, 3, true},
		{"mu plus", 5, 4, true},
		{"mu minus", 6, 5, true},
		{"pi zero", 7, 6, true},
		{"k zero long swaps order", 10, 11, true},
		{"k plus", 11, 9, true},
		{"k zero short", 16, 12, true},
		{"proton", 14, 13, true},
		{"neutron", 13, 14, true},
		{"code 4 intentionally unmapped", 4, 0, false},
		{"code 15 intentionally unmapped", 15, 0, false},
		{"iron nucleus unmapped", 5626, 0, false},
		{"unknown code", 99, 0, false},
		{"zero", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KascadeID(tt.corsikaID)
			if ok != tt.wantOK {
				t.Fatalf("KascadeID(%d) ok = %v, want %v", tt.corsikaID, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("KascadeID(%d) = %d, want %d", tt.corsikaID, got, tt.want)
			}
		})
	}
}
