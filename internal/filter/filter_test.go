package filter

import (
	"reflect"
	"testing"

	"github.com/Ivaneres/coffee/internal/api"
)

func strPtr(s string) *string { return &s }

func testBeans() map[int]api.Bean {
	return BeanLookup([]api.Bean{
		{ID: 1, Variety: "Ethiopian Yirgacheffe", Roaster: strPtr("Square Mile")},
		{ID: 2, Variety: "Colombian Supremo", Roaster: strPtr("Monmouth")},
		{ID: 3, Variety: "House Blend"}, // no roaster
	})
}

func testRecords() []api.EspressoRecord {
	return []api.EspressoRecord{
		{ID: 10, BeanID: 1, Machine: "Linea Mini", Grinder: "EK43"},
		{ID: 11, BeanID: 2, Machine: "Linea PB", Grinder: "Niche Zero"},
		{ID: 12, BeanID: 1, Machine: "Gaggia Classic", Grinder: "Niche Zero"},
		{ID: 13, BeanID: 3, Machine: "Linea Mini", Grinder: "EK43"},
		{ID: 14, BeanID: 99, Machine: "Linea Mini", Grinder: "EK43"}, // orphan bean
	}
}

func recordIDs(records []api.EspressoRecord) []int {
	ids := make([]int, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	return ids
}

func TestRecordsNoCriteriaReturnsAll(t *testing.T) {
	records := testRecords()
	got := Records(records, testBeans(), Criteria{})
	if !reflect.DeepEqual(recordIDs(got), recordIDs(records)) {
		t.Errorf("Records() with empty criteria = %v, want all records in order", recordIDs(got))
	}
}

func TestRecordsMachineSubstringCaseInsensitive(t *testing.T) {
	// "linea" matches both "Linea Mini" and "Linea PB".
	got := Records(testRecords(), testBeans(), Criteria{Machine: "linea"})
	want := []int{10, 11, 13, 14}
	if !reflect.DeepEqual(recordIDs(got), want) {
		t.Errorf("Records(machine=linea) = %v, want %v", recordIDs(got), want)
	}

	got = Records(testRecords(), testBeans(), Criteria{Machine: "LINEA MINI"})
	want = []int{10, 13, 14}
	if !reflect.DeepEqual(recordIDs(got), want) {
		t.Errorf("Records(machine=LINEA MINI) = %v, want %v", recordIDs(got), want)
	}
}

func TestRecordsCriteriaAreConjunctive(t *testing.T) {
	got := Records(testRecords(), testBeans(), Criteria{Machine: "linea", Grinder: "niche"})
	want := []int{11}
	if !reflect.DeepEqual(recordIDs(got), want) {
		t.Errorf("Records(machine=linea, grinder=niche) = %v, want %v", recordIDs(got), want)
	}
}

func TestRecordsBeanDerivedCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []int
	}{
		{
			name:     "variety match",
			criteria: Criteria{BeanVariety: "yirgacheffe"},
			want:     []int{10, 12},
		},
		{
			name:     "roaster match",
			criteria: Criteria{BeanRoaster: "square"},
			want:     []int{10, 12},
		},
		{
			name:     "roaster never matches bean without one",
			criteria: Criteria{BeanRoaster: "house"},
			want:     []int{},
		},
		{
			name:     "variety plus machine",
			criteria: Criteria{BeanVariety: "yirgacheffe", Machine: "gaggia"},
			want:     []int{12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Records(testRecords(), testBeans(), tt.criteria)
			if !reflect.DeepEqual(recordIDs(got), tt.want) {
				t.Errorf("Records() = %v, want %v", recordIDs(got), tt.want)
			}
		})
	}
}

func TestRecordsOrphanBean(t *testing.T) {
	// Record 14 points at a bean missing from the lookup: it passes machine
	// criteria but fails any bean-derived criterion.
	got := Records(testRecords(), testBeans(), Criteria{Machine: "linea mini"})
	if ids := recordIDs(got); !reflect.DeepEqual(ids, []int{10, 13, 14}) {
		t.Errorf("machine criterion excluded orphan record: %v", ids)
	}

	got = Records(testRecords(), testBeans(), Criteria{Machine: "linea mini", BeanVariety: "e"})
	for _, rec := range got {
		if rec.ID == 14 {
			t.Error("orphan record matched a bean-derived criterion")
		}
	}
}

func TestRecordsIdempotent(t *testing.T) {
	c := Criteria{Machine: "linea"}
	once := Records(testRecords(), testBeans(), c)
	twice := Records(once, testBeans(), c)
	if !reflect.DeepEqual(recordIDs(once), recordIDs(twice)) {
		t.Errorf("filtering twice changed the result: %v vs %v", recordIDs(once), recordIDs(twice))
	}
}

func TestRecordsMonotonic(t *testing.T) {
	// Adding a criterion never grows the result set.
	loose := Records(testRecords(), testBeans(), Criteria{Machine: "linea"})
	tight := Records(testRecords(), testBeans(), Criteria{Machine: "linea", Grinder: "ek"})
	if len(tight) > len(loose) {
		t.Errorf("tightening criteria grew the result: %d > %d", len(tight), len(loose))
	}
	looseIDs := recordIDs(loose)
	for _, rec := range tight {
		found := false
		for _, id := range looseIDs {
			if rec.ID == id {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("record %d in tightened result but not in loose result", rec.ID)
		}
	}
}

func TestCriteriaEmpty(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{name: "zero value", criteria: Criteria{}, want: true},
		{name: "whitespace only", criteria: Criteria{Machine: "   ", Grinder: "\t"}, want: true},
		{name: "one criterion", criteria: Criteria{BeanRoaster: "x"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCriteriaQuery(t *testing.T) {
	if q := (Criteria{}).Query(); q != nil {
		t.Errorf("Query() on empty criteria = %+v, want nil", q)
	}

	q := Criteria{Machine: "  Linea Mini  ", BeanVariety: "Yirgacheffe"}.Query()
	if q == nil {
		t.Fatal("Query() = nil, want non-nil")
	}
	if q.Machine != "Linea Mini" {
		t.Errorf("Query().Machine = %q, want trimmed %q", q.Machine, "Linea Mini")
	}
	if q.BeanVariety != "Yirgacheffe" {
		t.Errorf("Query().BeanVariety = %q, want %q", q.BeanVariety, "Yirgacheffe")
	}
	if q.Grinder != "" || q.BeanRoaster != "" {
		t.Errorf("Query() carried empty criteria: %+v", q)
	}
}

func TestBeanLookup(t *testing.T) {
	lookup := BeanLookup([]api.Bean{{ID: 1, Variety: "A"}, {ID: 2, Variety: "B"}})
	if len(lookup) != 2 {
		t.Fatalf("BeanLookup() size = %d, want 2", len(lookup))
	}
	if lookup[2].Variety != "B" {
		t.Errorf("lookup[2].Variety = %q, want %q", lookup[2].Variety, "B")
	}
}
