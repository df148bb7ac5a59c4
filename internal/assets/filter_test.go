package assets

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(records []AssetRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestDeriveVisibleAssets_Scenarios(t *testing.T) {
	records := SampleRecords()

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"identity", Filters{SearchQuery: "", Category: AllCategories}, []string{"AC Unit - Lab 3", "Server Rack 05", "Microscope X200"}},
		{"empty category acts as all", Filters{}, []string{"AC Unit - Lab 3", "Server Rack 05", "Microscope X200"}},
		{"search server", Filters{SearchQuery: "server", Category: AllCategories}, []string{"Server Rack 05"}},
		{"category lab", Filters{SearchQuery: "", Category: "Lab"}, []string{"Microscope X200"}},
		{"case insensitive", Filters{SearchQuery: "ac", Category: AllCategories}, []string{"AC Unit - Lab 3", "Server Rack 05"}},
		{"case insensitive single", Filters{SearchQuery: "ac unit", Category: AllCategories}, []string{"AC Unit - Lab 3"}},
		{"upper query", Filters{SearchQuery: "MICRO", Category: AllCategories}, []string{"Microscope X200"}},
		{"category excludes search hit", Filters{SearchQuery: "server", Category: "HVAC"}, []string{}},
		{"unknown category", Filters{Category: "Plumbing"}, []string{}},
		{"category is case sensitive", Filters{Category: "lab"}, []string{}},
		{"search matches name not category", Filters{SearchQuery: "hvac", Category: AllCategories}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(DeriveVisibleAssets(records, tt.filters))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("visible mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeriveVisibleAssets_CategoryExclusivity(t *testing.T) {
	records := SampleRecords()
	for _, q := range []string{"", "a", "unit", "server", "zzz"} {
		for _, r := range DeriveVisibleAssets(records, Filters{SearchQuery: q, Category: "HVAC"}) {
			assert.Equal(t, "HVAC", r.Category, "query %q leaked a non-HVAC record", q)
		}
	}
}

func TestDeriveVisibleAssets_MissingCategory(t *testing.T) {
	records := []AssetRecord{
		{ID: 1, Name: "Orphan Pump"},
		{ID: 2, Name: "Boiler", Category: "HVAC"},
	}

	assert.Len(t, DeriveVisibleAssets(records, Filters{Category: AllCategories}), 2)
	got := DeriveVisibleAssets(records, Filters{Category: "HVAC"})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestDeriveVisibleAssets_DoesNotAliasInput(t *testing.T) {
	records := SampleRecords()
	got := DeriveVisibleAssets(records, DefaultFilters())
	got[0].Name = "mutated"
	assert.Equal(t, "AC Unit - Lab 3", records[0].Name)
}

func TestDeriveVisibleAssets_NilInput(t *testing.T) {
	got := DeriveVisibleAssets(nil, Filters{SearchQuery: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// randomRecords builds a record set from a small alphabet so that searches
// hit often enough to be interesting.
func randomRecords(rng *rand.Rand, n int) []AssetRecord {
	words := []string{"Pump", "pump", "Chiller", "Rack", "Scope", "AC", "ac unit", "Fan"}
	cats := []string{"HVAC", "IT", "Lab", ""}
	out := make([]AssetRecord, n)
	for i := range out {
		out[i] = AssetRecord{
			ID:       i + 1,
			Name:     fmt.Sprintf("%s %d", words[rng.Intn(len(words))], rng.Intn(10)),
			Category: cats[rng.Intn(len(cats))],
			Status:   Statuses[rng.Intn(len(Statuses))],
		}
	}
	return out
}

func TestDeriveVisibleAssets_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	queries := []string{"", "p", "PUMP", "ac", "1", "rack 3", "nothing"}
	categories := []string{AllCategories, "", "HVAC", "IT", "Lab", "Other"}

	for iter := 0; iter < 200; iter++ {
		records := randomRecords(rng, rng.Intn(20))

		identity := DeriveVisibleAssets(records, Filters{Category: AllCategories})
		if diff := cmp.Diff(records, identity); diff != "" {
			t.Fatalf("identity filter changed the set:\n%s", diff)
		}

		for _, q := range queries {
			for _, c := range categories {
				f := Filters{SearchQuery: q, Category: c}
				got := DeriveVisibleAssets(records, f)

				// No fabrication and order preservation: got must be a
				// subsequence of records.
				j := 0
				for _, r := range got {
					for j < len(records) && records[j].ID != r.ID {
						j++
					}
					if j == len(records) {
						t.Fatalf("record %d not found in order for %+v", r.ID, f)
					}
					if diff := cmp.Diff(records[j], r); diff != "" {
						t.Fatalf("record %d altered:\n%s", r.ID, diff)
					}
					j++
				}

				// Exactly the matching records.
				want := 0
				for _, r := range records {
					if f.Matches(r) {
						want++
					}
				}
				if len(got) != want {
					t.Fatalf("got %d records, want %d for %+v", len(got), want, f)
				}

				// Idempotent.
				if diff := cmp.Diff(got, DeriveVisibleAssets(records, f)); diff != "" {
					t.Fatalf("second derivation differs:\n%s", diff)
				}
			}
		}
	}
}

func TestFilters_IsZero(t *testing.T) {
	assert.True(t, DefaultFilters().IsZero())
	assert.True(t, Filters{}.IsZero())
	assert.False(t, Filters{SearchQuery: "x", Category: AllCategories}.IsZero())
	assert.False(t, Filters{Category: "IT"}.IsZero())
}
