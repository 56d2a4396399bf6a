package utils

import "testing"

func TestValidateNIP(t *testing.T) {
	tests := []struct {
		name    string
		nip     string
		wantErr bool
	}{
		{"valid", "198501012022011001", false},
		{"too short", "19850101202201100", true},
		{"too long", "1985010120220110011", true},
		{"letters", "19850101202201100A", true},
		{"spaces", "198501 1202201 1001", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNIP(tt.nip)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNIP(%q) error = %v, wantErr %v", tt.nip, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid", "2025-01-02", false},
		{"empty means unset", "", false},
		{"wrong order", "02-01-2025", true},
		{"missing padding", "2025-1-2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
		})
	}
}
