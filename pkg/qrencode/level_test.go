package qrencode

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"auto", "auto", LevelAuto, false},
		{"auto uppercase", "AUTO", LevelAuto, false},
		{"low", "L", LevelLow, false},
		{"low lowercase", "l", LevelLow, false},
		{"medium", "M", LevelMedium, false},
		{"quartile", "Q", LevelQuartile, false},
		{"high", "H", LevelHigh, false},
		{"whitespace trimmed", " h ", LevelHigh, false},

		{"empty", "", LevelAuto, true},
		{"unknown", "X", LevelAuto, true},
		{"full word", "high", LevelAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		choice      Level
		logoPresent bool
		want        Level
	}{
		{"auto without logo", LevelAuto, false, LevelLow},
		{"auto with logo", LevelAuto, true, LevelHigh},
		{"explicit low with logo", LevelLow, true, LevelLow},
		{"explicit medium without logo", LevelMedium, false, LevelMedium},
		{"explicit quartile with logo", LevelQuartile, true, LevelQuartile},
		{"explicit high without logo", LevelHigh, false, LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.choice, tt.logoPresent); got != tt.want {
				t.Errorf("Resolve(%v, %v) = %v, want %v", tt.choice, tt.logoPresent, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelAuto, "auto"},
		{LevelLow, "L"},
		{LevelMedium, "M"},
		{LevelQuartile, "Q"},
		{LevelHigh, "H"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}
