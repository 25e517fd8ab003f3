// Package form bridges server representations and edit-form representations.
// Forms hold raw text input; building a request payload normalizes "empty"
// input into "absent" so the server never sees zero-valued measurements.
//
// Rating fields are the deliberate exception: the UI always shows a value
// (default 5) and the built payload always carries one. Physical
// measurements (dose, extraction time, yield) may be unknown; ratings may
// not.
package form

import (
	"strconv"
	"strings"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/errors"
)

// DefaultRating is the value rating fields seed to and fall back to.
const DefaultRating = 5

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 10
)

// RecordForm is the editable field set for creating or editing an espresso
// record. Text fields hold raw input; numeric text is parsed only when a
// payload is built.
type RecordForm struct {
	BeanID   int
	RecordID int // 0 in create mode
	editing  bool

	Machine        string
	Grinder        string
	GrindSize      string
	Dose           string
	ExtractionTime string
	YieldAmount    string
	Notes          string

	Rating     int
	Sourness   int
	Bitterness int
	Sweetness  int
}

// NewRecordForm seeds a create-mode form: machine and grinder come from the
// user's default settings when present, ratings seed to 5, everything else
// starts empty.
func NewRecordForm(beanID int, settings *api.UserSettings) *RecordForm {
	f := &RecordForm{
		BeanID:     beanID,
		Rating:     DefaultRating,
		Sourness:   DefaultRating,
		Bitterness: DefaultRating,
		Sweetness:  DefaultRating,
	}
	if settings != nil {
		f.Machine = stringValue(settings.DefaultMachine)
		f.Grinder = stringValue(settings.DefaultGrinder)
	}
	return f
}

// EditRecordForm seeds an edit-mode form verbatim from an existing record.
// Absent optional text renders as the empty string; absent ratings display
// as 5. The server value is only overwritten when the form is submitted.
func EditRecordForm(rec *api.EspressoRecord) *RecordForm {
	return &RecordForm{
		BeanID:         rec.BeanID,
		RecordID:       rec.ID,
		editing:        true,
		Machine:        rec.Machine,
		Grinder:        rec.Grinder,
		GrindSize:      stringValue(rec.GrindSize),
		Dose:           numberValue(rec.Dose),
		ExtractionTime: numberValue(rec.ExtractionTime),
		YieldAmount:    numberValue(rec.YieldAmount),
		Notes:          stringValue(rec.Notes),
		Rating:         ratingValue(rec.Rating),
		Sourness:       ratingValue(rec.Sourness),
		Bitterness:     ratingValue(rec.Bitterness),
		Sweetness:      ratingValue(rec.Sweetness),
	}
}

// Editing reports whether the form was seeded from an existing record.
func (f *RecordForm) Editing() bool {
	return f.editing
}

// Validate enforces the required-field contract: machine and grinder must
// be non-empty before a payload may be built.
func (f *RecordForm) Validate() error {
	if strings.TrimSpace(f.Machine) == "" {
		return errors.NewValidationError("machine is required").WithField("machine")
	}
	if strings.TrimSpace(f.Grinder) == "" {
		return errors.NewValidationError("grinder is required").WithField("grinder")
	}
	return nil
}

// CreateRequest builds the creation payload. Empty optional text and
// zero/empty optional numerics are omitted; ratings are always sent as the
// current 1-10 value.
func (f *RecordForm) CreateRequest() (*api.RecordCreate, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	dose, err := optionalNumber(f.Dose, "dose")
	if err != nil {
		return nil, err
	}
	extraction, err := optionalNumber(f.ExtractionTime, "extraction_time")
	if err != nil {
		return nil, err
	}
	yield, err := optionalNumber(f.YieldAmount, "yield_amount")
	if err != nil {
		return nil, err
	}

	return &api.RecordCreate{
		BeanID:         f.BeanID,
		Machine:        f.Machine,
		Grinder:        f.Grinder,
		GrindSize:      optionalText(f.GrindSize),
		Dose:           dose,
		ExtractionTime: extraction,
		YieldAmount:    yield,
		Rating:         ratingPtr(f.Rating),
		Sourness:       ratingPtr(f.Sourness),
		Bitterness:     ratingPtr(f.Bitterness),
		Sweetness:      ratingPtr(f.Sweetness),
		Notes:          optionalText(f.Notes),
	}, nil
}

// UpdateRequest builds the update payload. It applies the same
// normalization as CreateRequest but never carries a bean id: the
// association is immutable after creation.
func (f *RecordForm) UpdateRequest() (*api.RecordUpdate, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	dose, err := optionalNumber(f.Dose, "dose")
	if err != nil {
		return nil, err
	}
	extraction, err := optionalNumber(f.ExtractionTime, "extraction_time")
	if err != nil {
		return nil, err
	}
	yield, err := optionalNumber(f.YieldAmount, "yield_amount")
	if err != nil {
		return nil, err
	}

	machine := f.Machine
	grinder := f.Grinder
	return &api.RecordUpdate{
		Machine:        &machine,
		Grinder:        &grinder,
		GrindSize:      optionalText(f.GrindSize),
		Dose:           dose,
		ExtractionTime: extraction,
		YieldAmount:    yield,
		Rating:         ratingPtr(f.Rating),
		Sourness:       ratingPtr(f.Sourness),
		Bitterness:     ratingPtr(f.Bitterness),
		Sweetness:      ratingPtr(f.Sweetness),
		Notes:          optionalText(f.Notes),
	}, nil
}

// SetRating clamps and assigns one of the rating-family fields by name.
// Unknown names are ignored.
func (f *RecordForm) SetRating(name string, value int) {
	value = clampRating(value)
	switch name {
	case "rating":
		f.Rating = value
	case "sourness":
		f.Sourness = value
	case "bitterness":
		f.Bitterness = value
	case "sweetness":
		f.Sweetness = value
	}
}

// clampRating bounds a rating to [MinRating, MaxRating].
func clampRating(n int) int {
	if n < MinRating {
		return MinRating
	}
	if n > MaxRating {
		return MaxRating
	}
	return n
}

// ratingPtr returns the payload value for a rating field. Ratings are never
// collapsed to absent; an out-of-range value falls back to the default.
func ratingPtr(n int) *int {
	if n < MinRating || n > MaxRating {
		n = DefaultRating
	}
	return &n
}

// ratingValue converts a server rating to a display value, defaulting
// absent ratings to 5.
func ratingValue(p *int) int {
	if p == nil {
		return DefaultRating
	}
	return clampRating(*p)
}

// optionalText converts raw text input to an optional payload field:
// empty or whitespace-only input becomes absent.
func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// optionalNumber parses raw numeric input into an optional payload field.
// Empty input and an explicit zero both become absent; a measurement of
// zero is meaningless and is treated as "unknown". Unparseable input is a
// validation error.
func optionalNumber(s, field string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.NewValidationError("must be a number").WithField(field).WithValue(s)
	}
	if v == 0 {
		return nil, nil
	}
	return &v, nil
}

// stringValue dereferences an optional string for display, mapping absent
// to the empty string.
func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// numberValue formats an optional number for display, mapping absent to
// the empty string.
func numberValue(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
