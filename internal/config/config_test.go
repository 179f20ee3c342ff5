package config

import "testing"

func TestPathFor_Presets(t *testing.T) {
	cases := []struct {
		preset DerivationPreset
		index  uint32
		want   string
	}{
		{PresetEthereum, 0, "m/44'/60'/0'/0"},
		{PresetLedgerLegacy, 3, "m/44'/60'/0'/3"},
		{PresetTrezor, 1, "m/44'/60'/0'/1"},
		{PresetKeepkey, 2, "m/44'/60'/2'/0"},
		{PresetLedgerLive, 5, "m/44'/60'/5'/0/0"},
	}
	for _, c := range cases {
		path, err := PathFor(c.preset, c.index)
		if err != nil {
			t.Fatalf("PathFor(%s, %d): %v", c.preset, c.index, err)
		}
		if path.String() != c.want {
			t.Errorf("PathFor(%s, %d) = %s, want %s", c.preset, c.index, path.String(), c.want)
		}
	}
}

func TestPathFor_UnknownPreset(t *testing.T) {
	if _, err := PathFor(DerivationPreset("bogus"), 0); err == nil {
		t.Errorf("expected an error for an unknown preset")
	}
}

func TestDefault_MatchesBIP39Spec(t *testing.T) {
	cfg := Default()
	if cfg.PBKDF2Iterations != 2048 {
		t.Errorf("PBKDF2Iterations = %d, want 2048", cfg.PBKDF2Iterations)
	}
}
