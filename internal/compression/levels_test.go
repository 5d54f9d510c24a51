package compression

import "testing"

func TestLevelInvariants(t *testing.T) {
	for _, level := range Levels() {
		if level.DPI() <= 0 {
			t.Errorf("%s: expected positive DPI, got %v", level, level.DPI())
		}
		if q := level.Quality(); q <= 0 || q > 1 {
			t.Errorf("%s: expected quality in (0, 1], got %v", level, q)
		}
		if level.Label() == "" {
			t.Errorf("%s: expected non-empty label", level)
		}
	}
}

func TestLevelResolve(t *testing.T) {
	dpi, quality := LevelRecommended.Resolve(false)
	if dpi != 120 || quality != 0.60 {
		t.Errorf("Expected (120, 0.60), got (%v, %v)", dpi, quality)
	}
}

func TestLevelResolve_QualityBoost(t *testing.T) {
	for _, level := range Levels() {
		baseDPI, baseQuality := level.Resolve(false)
		dpi, quality := level.Resolve(true)

		if dpi != baseDPI*1.2 {
			t.Errorf("%s: expected boosted DPI %v, got %v", level, baseDPI*1.2, dpi)
		}
		if quality > 1.0 {
			t.Errorf("%s: boost pushed quality above 1.0: %v", level, quality)
		}
		if quality < baseQuality {
			t.Errorf("%s: boost lowered quality from %v to %v", level, baseQuality, quality)
		}

		// Resolving must never mutate the base values
		if d, q := level.Resolve(false); d != baseDPI || q != baseQuality {
			t.Errorf("%s: base values changed after boosted resolve", level)
		}
	}
}

func TestLevelResolve_BoostCapsQuality(t *testing.T) {
	// Low sits at 0.90; the +0.10 boost must land exactly on the cap
	_, quality := LevelLow.Resolve(true)
	if quality != 1.0 {
		t.Errorf("Expected quality capped at 1.0, got %v", quality)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "low", input: "low", want: LevelLow},
		{name: "recommended", input: "recommended", want: LevelRecommended},
		{name: "extreme", input: "extreme", want: LevelExtreme},
		{name: "unknown", input: "ultra", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
