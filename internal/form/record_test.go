package form

import (
	"testing"

	"github.com/Ivaneres/coffee/internal/api"
)

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestNewRecordFormSeedsDefaults(t *testing.T) {
	settings := &api.UserSettings{
		DefaultMachine: strPtr("Gaggia Classic"),
		DefaultGrinder: strPtr("Niche Zero"),
	}
	f := NewRecordForm(3, settings)

	if f.BeanID != 3 {
		t.Errorf("BeanID = %d, want 3", f.BeanID)
	}
	if f.Machine != "Gaggia Classic" {
		t.Errorf("Machine = %q, want default", f.Machine)
	}
	if f.Grinder != "Niche Zero" {
		t.Errorf("Grinder = %q, want default", f.Grinder)
	}
	if f.Rating != DefaultRating || f.Sourness != DefaultRating ||
		f.Bitterness != DefaultRating || f.Sweetness != DefaultRating {
		t.Errorf("ratings = %d/%d/%d/%d, want all %d",
			f.Rating, f.Sourness, f.Bitterness, f.Sweetness, DefaultRating)
	}
	if f.Editing() {
		t.Error("Editing() = true for a create-mode form")
	}
}

func TestNewRecordFormNilSettings(t *testing.T) {
	f := NewRecordForm(3, nil)
	if f.Machine != "" || f.Grinder != "" {
		t.Errorf("Machine/Grinder = %q/%q, want empty", f.Machine, f.Grinder)
	}
}

func TestEditRecordFormSeedsVerbatim(t *testing.T) {
	rec := &api.EspressoRecord{
		ID:             9,
		BeanID:         3,
		Machine:        "Linea Mini",
		Grinder:        "EK43",
		GrindSize:      strPtr("2.5"),
		Dose:           floatPtr(18.5),
		ExtractionTime: floatPtr(30),
		Rating:         intPtr(8),
		// Sourness absent: displays as the default
		Notes: strPtr("bright, juicy"),
	}
	f := EditRecordForm(rec)

	if !f.Editing() {
		t.Error("Editing() = false for an edit-mode form")
	}
	if f.RecordID != 9 || f.BeanID != 3 {
		t.Errorf("RecordID/BeanID = %d/%d, want 9/3", f.RecordID, f.BeanID)
	}
	if f.Dose != "18.5" {
		t.Errorf("Dose = %q, want %q", f.Dose, "18.5")
	}
	if f.ExtractionTime != "30" {
		t.Errorf("ExtractionTime = %q, want %q (no trailing zeros)", f.ExtractionTime, "30")
	}
	if f.YieldAmount != "" {
		t.Errorf("YieldAmount = %q, want empty for absent value", f.YieldAmount)
	}
	if f.Rating != 8 {
		t.Errorf("Rating = %d, want 8", f.Rating)
	}
	if f.Sourness != DefaultRating {
		t.Errorf("Sourness = %d, want default %d for absent rating", f.Sourness, DefaultRating)
	}
}

func TestValidateRequiresMachineAndGrinder(t *testing.T) {
	tests := []struct {
		name    string
		machine string
		grinder string
		wantErr bool
	}{
		{name: "both present", machine: "M", grinder: "G", wantErr: false},
		{name: "missing machine", machine: "", grinder: "G", wantErr: true},
		{name: "whitespace machine", machine: "   ", grinder: "G", wantErr: true},
		{name: "missing grinder", machine: "M", grinder: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewRecordForm(1, nil)
			f.Machine = tt.machine
			f.Grinder = tt.grinder
			err := f.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateRequestNormalization(t *testing.T) {
	f := NewRecordForm(3, nil)
	f.Machine = "Gaggia Classic"
	f.Grinder = "Niche Zero"
	f.Dose = "18.5"
	f.ExtractionTime = "" // unknown
	f.YieldAmount = "0"   // explicit zero also treated as unknown
	f.GrindSize = "  "    // whitespace collapses to absent
	f.Rating = 8

	req, err := f.CreateRequest()
	if err != nil {
		t.Fatalf("CreateRequest() error: %v", err)
	}

	if req.BeanID != 3 {
		t.Errorf("BeanID = %d, want 3", req.BeanID)
	}
	if req.Dose == nil || *req.Dose != 18.5 {
		t.Errorf("Dose = %v, want 18.5", req.Dose)
	}
	if req.ExtractionTime != nil {
		t.Errorf("ExtractionTime = %v, want absent", *req.ExtractionTime)
	}
	if req.YieldAmount != nil {
		t.Errorf("YieldAmount = %v, want absent for explicit zero", *req.YieldAmount)
	}
	if req.GrindSize != nil {
		t.Errorf("GrindSize = %q, want absent", *req.GrindSize)
	}
	if req.Rating == nil || *req.Rating != 8 {
		t.Errorf("Rating = %v, want 8", req.Rating)
	}
	// Ratings are always present even when untouched.
	if req.Sourness == nil || *req.Sourness != DefaultRating {
		t.Errorf("Sourness = %v, want default %d", req.Sourness, DefaultRating)
	}
}

func TestCreateRequestRejectsBadNumber(t *testing.T) {
	f := NewRecordForm(1, nil)
	f.Machine = "M"
	f.Grinder = "G"
	f.Dose = "eighteen"

	if _, err := f.CreateRequest(); err == nil {
		t.Error("CreateRequest() succeeded with unparseable dose")
	}
}

func TestUpdateRequestHasNoBeanID(t *testing.T) {
	rec := &api.EspressoRecord{ID: 9, BeanID: 3, Machine: "M", Grinder: "G"}
	f := EditRecordForm(rec)

	req, err := f.UpdateRequest()
	if err != nil {
		t.Fatalf("UpdateRequest() error: %v", err)
	}
	if req.Machine == nil || *req.Machine != "M" {
		t.Errorf("Machine = %v, want M", req.Machine)
	}
	// api.RecordUpdate has no bean id field at all; pinning that here would
	// be a compile error, which is the point.
	if req.Rating == nil || *req.Rating != DefaultRating {
		t.Errorf("Rating = %v, want default %d", req.Rating, DefaultRating)
	}
}

func TestSetRatingClamps(t *testing.T) {
	f := NewRecordForm(1, nil)

	f.SetRating("rating", 12)
	if f.Rating != MaxRating {
		t.Errorf("Rating = %d, want clamped to %d", f.Rating, MaxRating)
	}
	f.SetRating("sourness", 0)
	if f.Sourness != MinRating {
		t.Errorf("Sourness = %d, want clamped to %d", f.Sourness, MinRating)
	}
	f.SetRating("bitterness", 7)
	if f.Bitterness != 7 {
		t.Errorf("Bitterness = %d, want 7", f.Bitterness)
	}
	f.SetRating("unknown", 9) // ignored
	if f.Sweetness != DefaultRating {
		t.Errorf("Sweetness = %d, unknown name should not change anything", f.Sweetness)
	}
}
