package stats

import (
	"testing"

	"github.com/yourusername/propsedge/internal/models"
)

func fp(v float64) *float64 { return &v }

func game(minutes, points float64) models.GameRecord {
	return models.GameRecord{Minutes: fp(minutes), Points: fp(points)}
}

func rangeSpec(key models.StatKey, min, max float64) *models.FilterSpec {
	spec := &models.FilterSpec{}
	spec.SetRange(key, &models.RangeBound{Min: min, Max: max})
	return spec
}

func TestApplyMinutesRange(t *testing.T) {
	records := []models.GameRecord{
		game(25, 18),
		game(30, 22),
		game(35, 27),
		game(40, 31),
		game(45, 36),
	}

	got := Apply(records, rangeSpec(models.StatMinutes, 28, 40))
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for _, rec := range got {
		if *rec.Minutes < 28 || *rec.Minutes > 40 {
			t.Errorf("record with %.0f minutes passed a [28,40] filter", *rec.Minutes)
		}
	}
}

func TestApplyRangeIsInclusive(t *testing.T) {
	records := []models.GameRecord{game(28, 10), game(40, 10)}
	if got := Apply(records, rangeSpec(models.StatMinutes, 28, 40)); len(got) != 2 {
		t.Errorf("boundary values must pass an inclusive range, got %d records", len(got))
	}
}

func TestApplyCombinesWithAnd(t *testing.T) {
	records := []models.GameRecord{
		game(30, 15), // fails points
		game(30, 25), // passes both
		game(20, 25), // fails minutes
	}

	spec := rangeSpec(models.StatMinutes, 28, 48)
	spec.SetRange(models.StatPoints, &models.RangeBound{Min: 20, Max: 50})

	got := Apply(records, spec)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
}

func TestApplyMissingStatFailsFilter(t *testing.T) {
	noMinutes := models.GameRecord{Points: fp(20)}
	records := []models.GameRecord{noMinutes, game(30, 20)}

	got := Apply(records, rangeSpec(models.StatMinutes, 0, 48))
	if len(got) != 1 {
		t.Fatalf("expected record without minutes to fail the minutes filter, got %d records", len(got))
	}
}

func TestApplyCategoricalToggles(t *testing.T) {
	home := models.GameRecord{Home: true, Win: true, Margin: 12, DaysRest: 0}
	away := models.GameRecord{Home: false, Win: false, Margin: -3, DaysRest: 2}

	records := []models.GameRecord{home, away}

	spec := &models.FilterSpec{}
	spec.SetHomeAway(true)
	if got := Apply(records, spec); len(got) != 1 || !got[0].Home {
		t.Errorf("home toggle: got %d records", len(got))
	}

	spec = &models.FilterSpec{}
	spec.SetWinLoss(false)
	if got := Apply(records, spec); len(got) != 1 || got[0].Win {
		t.Errorf("loss toggle: got %d records", len(got))
	}

	margin := 10
	spec = &models.FilterSpec{MarginAtLeast: &margin}
	if got := Apply(records, spec); len(got) != 1 || got[0].Margin != 12 {
		t.Errorf("margin filter: got %d records", len(got))
	}

	bucket := models.RestTwoPlus
	spec = &models.FilterSpec{RestBucket: &bucket}
	if got := Apply(records, spec); len(got) != 1 || got[0].DaysRest != 2 {
		t.Errorf("rest bucket filter: got %d records", len(got))
	}
}

func TestApplyWithoutTeammate(t *testing.T) {
	with := models.GameRecord{TeammatesOut: nil}
	without := models.GameRecord{TeammatesOut: []string{"J. Smith"}}
	records := []models.GameRecord{with, without}

	teammate := "J. Smith"
	spec := &models.FilterSpec{WithoutTeammate: &teammate}
	got := Apply(records, spec)
	if len(got) != 1 || len(got[0].TeammatesOut) != 1 {
		t.Fatalf("expected only the game the teammate sat out, got %d records", len(got))
	}
}

func TestApplyNilSpecPassesEverything(t *testing.T) {
	records := []models.GameRecord{game(30, 20), game(20, 10)}
	if got := Apply(records, nil); len(got) != 2 {
		t.Errorf("nil spec must pass all records, got %d", len(got))
	}
}

func TestHomeAwayMutualExclusion(t *testing.T) {
	spec := &models.FilterSpec{}
	spec.SetHomeAway(true)
	spec.SetHomeAway(false) // switching sides replaces, never stacks

	if spec.Home == nil || *spec.Home {
		t.Error("away activation must clear the home toggle")
	}

	spec.ClearHomeAway()
	if spec.Home != nil {
		t.Error("pair must clear entirely")
	}
}

func TestDomain(t *testing.T) {
	records := []models.GameRecord{game(25, 10), game(45, 30), game(35, 20)}

	d, ok := Domain(records, models.StatMinutes)
	if !ok {
		t.Fatal("expected a domain for minutes")
	}
	if d.Min != 25 || d.Max != 45 {
		t.Errorf("domain = [%.0f, %.0f], want [25, 45]", d.Min, d.Max)
	}

	if _, ok := Domain(records, models.StatBlocks); ok {
		t.Error("expected no domain for a stat no record carries")
	}
}

func TestReclampClearsFilterOutsideDomain(t *testing.T) {
	// Filter tuned to a heavy-minutes player, then a bench player's log
	// arrives
	spec := rangeSpec(models.StatMinutes, 38, 48)
	records := []models.GameRecord{game(12, 4), game(18, 8)}

	got := Reclamp(spec, records)
	if got.Ranges[models.StatMinutes] != nil {
		t.Error("filter entirely outside the new domain must clear")
	}
}

func TestReclampClampsPartialOverlap(t *testing.T) {
	spec := rangeSpec(models.StatMinutes, 10, 30)
	records := []models.GameRecord{game(20, 10), game(40, 25)}

	got := Reclamp(spec, records)
	bound := got.Ranges[models.StatMinutes]
	if bound == nil {
		t.Fatal("overlapping filter must survive reclamping")
	}
	if bound.Min != 20 || bound.Max != 30 {
		t.Errorf("reclamped to [%.0f, %.0f], want [20, 30]", bound.Min, bound.Max)
	}
}

// After reclamping, no surviving filter may fall outside its stat's domain
func TestReclampDomainInvariant(t *testing.T) {
	spec := &models.FilterSpec{}
	spec.SetRange(models.StatMinutes, &models.RangeBound{Min: 5, Max: 50})
	spec.SetRange(models.StatPoints, &models.RangeBound{Min: 0, Max: 100})

	records := []models.GameRecord{game(22, 11), game(31, 24), game(28, 17)}
	got := Reclamp(spec, records)

	for key, bound := range got.Ranges {
		if bound == nil {
			continue
		}
		domain, ok := Domain(records, key)
		if !ok {
			t.Fatalf("surviving filter on %s has no domain", key)
		}
		if bound.Min < domain.Min || bound.Max > domain.Max {
			t.Errorf("filter %s [%.0f, %.0f] outside domain [%.0f, %.0f]",
				key, bound.Min, bound.Max, domain.Min, domain.Max)
		}
	}
}

func TestReclampPreservesCategoricals(t *testing.T) {
	home := true
	spec := &models.FilterSpec{Home: &home}
	got := Reclamp(spec, []models.GameRecord{game(30, 20)})
	if got.Home == nil || !*got.Home {
		t.Error("reclamping must not touch categorical toggles")
	}
}

func TestReclampClearsFilterWhenStatAbsent(t *testing.T) {
	spec := rangeSpec(models.StatUsagePct, 20, 35)
	records := []models.GameRecord{game(30, 20)} // no usage tracked

	got := Reclamp(spec, records)
	if got.Ranges[models.StatUsagePct] != nil {
		t.Error("filter on an untracked stat must clear")
	}
}
