package domain

import "testing"

func TestFlagsEnabled(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		keys  []FlagKey
		want  bool
	}{
		{
			name:  "all true",
			flags: Flags{FlagSmartSearch: true, FlagSmartSearchCLIP: true},
			keys:  []FlagKey{FlagSmartSearch, FlagSmartSearchCLIP},
			want:  true,
		},
		{
			name:  "one false",
			flags: Flags{FlagSmartSearch: true, FlagSmartSearchCLIP: false},
			keys:  []FlagKey{FlagSmartSearch, FlagSmartSearchCLIP},
			want:  false,
		},
		{
			name:  "absent key fails closed",
			flags: Flags{FlagSmartSearch: true},
			keys:  []FlagKey{FlagSmartSearch, FlagSmartSearchCLIP},
			want:  false,
		},
		{
			name:  "nil snapshot fails closed",
			flags: nil,
			keys:  []FlagKey{FlagSmartSearch},
			want:  false,
		},
		{
			name:  "no keys is vacuously true",
			flags: Flags{},
			keys:  nil,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.Enabled(tt.keys...); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}
}
