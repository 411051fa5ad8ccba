package weather

import "testing"

// TestParseConditionAliases covers the case-insensitive alias table.
func TestParseConditionAliases(t *testing.T) {
	cases := []struct {
		input string
		want  Condition
	}{
		{"clear", ConditionClear},
		{"Sunny", ConditionClear},
		{"rain", ConditionRain},
		{"RAINY", ConditionRain},
		{"thunder", ConditionThunderstorm},
		{"thunderstorm", ConditionThunderstorm},
		{"hail", ConditionThunderstormHail},
		{"thunderstorm-hail", ConditionThunderstormHail},
		{"snow", ConditionSnow},
		{"snowy", ConditionSnow},
		{"partly_cloudy", ConditionPartlyCloudy},
		{"partlycloudy", ConditionPartlyCloudy},
		{"showers", ConditionRainShowers},
		{"freezing_rain", ConditionFreezingRain},
		{"foggy", ConditionFog},
		{" drizzle ", ConditionDrizzle},
	}

	for _, c := range cases {
		got, ok := ParseCondition(c.input)
		if !ok {
			t.Errorf("ParseCondition(%q) not recognized", c.input)
			continue
		}
		if got != c.want {
			t.Errorf("ParseCondition(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// TestParseConditionUnknown: unrecognized input falls back to Clear with
// ok=false so the caller can warn.
func TestParseConditionUnknown(t *testing.T) {
	got, ok := ParseCondition("zzz")
	if ok {
		t.Fatal("expected ok=false for unknown condition")
	}
	if got != ConditionClear {
		t.Fatalf("unknown condition mapped to %v, want Clear", got)
	}
}

// TestFlagsForAllConditions checks the full mapping: raining,
// thunderstorm and cloudy are mutually exclusive, and the fog/snow
// families land on the all-false default branch.
func TestFlagsForAllConditions(t *testing.T) {
	cases := []struct {
		cond  Condition
		flags SceneFlags
	}{
		{ConditionClear, SceneFlags{ShowSun: true}},
		{ConditionPartlyCloudy, SceneFlags{Cloudy: true, ShowSun: true}},
		{ConditionCloudy, SceneFlags{Cloudy: true}},
		{ConditionOvercast, SceneFlags{Cloudy: true}},
		{ConditionFog, SceneFlags{}},
		{ConditionDrizzle, SceneFlags{Raining: true}},
		{ConditionRain, SceneFlags{Raining: true}},
		{ConditionFreezingRain, SceneFlags{Raining: true}},
		{ConditionSnow, SceneFlags{}},
		{ConditionSnowGrains, SceneFlags{}},
		{ConditionRainShowers, SceneFlags{Raining: true}},
		{ConditionSnowShowers, SceneFlags{}},
		{ConditionThunderstorm, SceneFlags{Thunderstorm: true}},
		{ConditionThunderstormHail, SceneFlags{Thunderstorm: true}},
	}

	if len(cases) != len(displayNames) {
		t.Fatalf("test covers %d conditions, enum has %d", len(cases), len(displayNames))
	}

	for _, c := range cases {
		got := FlagsFor(c.cond)
		if got != c.flags {
			t.Errorf("FlagsFor(%v) = %+v, want %+v", c.cond, got, c.flags)
		}

		exclusive := 0
		for _, b := range []bool{got.Raining, got.Thunderstorm, got.Cloudy} {
			if b {
				exclusive++
			}
		}
		if exclusive > 1 {
			t.Errorf("FlagsFor(%v): raining/thunderstorm/cloudy not mutually exclusive: %+v", c.cond, got)
		}
	}
}

// TestSimulatedSnapshot pins the synthesized snapshot used by --simulate.
func TestSimulatedSnapshot(t *testing.T) {
	rain := Simulated(ConditionRain)
	if rain.Condition != ConditionRain {
		t.Fatalf("condition = %v, want rain", rain.Condition)
	}
	if rain.Precipitation != 2.5 {
		t.Fatalf("rain precipitation = %v, want 2.5", rain.Precipitation)
	}
	if rain.Timestamp != "simulated" {
		t.Fatalf("timestamp = %q, want \"simulated\"", rain.Timestamp)
	}

	clear := Simulated(ConditionClear)
	if clear.Precipitation != 0 {
		t.Fatalf("clear precipitation = %v, want 0", clear.Precipitation)
	}
	if !clear.IsDay {
		t.Fatal("simulated snapshots are daytime")
	}
}
