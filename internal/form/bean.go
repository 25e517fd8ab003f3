package form

import (
	"slices"
	"strings"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/errors"
)

// BeanForm is the editable field set for creating or editing a bean.
// RoastLevel is either empty (unset) or one of api.RoastLevels.
type BeanForm struct {
	BeanID  int // 0 in create mode
	editing bool

	Variety    string
	Seller     string
	Roaster    string
	RoastLevel string
}

// NewBeanForm seeds an empty create-mode bean form.
func NewBeanForm() *BeanForm {
	return &BeanForm{}
}

// EditBeanForm seeds an edit-mode form from an existing bean; absent
// optional fields render as empty strings.
func EditBeanForm(bean *api.Bean) *BeanForm {
	return &BeanForm{
		BeanID:     bean.ID,
		editing:    true,
		Variety:    bean.Variety,
		Seller:     stringValue(bean.Seller),
		Roaster:    stringValue(bean.Roaster),
		RoastLevel: stringValue(bean.RoastLevel),
	}
}

// Editing reports whether the form was seeded from an existing bean.
func (f *BeanForm) Editing() bool {
	return f.editing
}

// Validate enforces the required-field contract: variety must be non-empty,
// and a non-empty roast level must be one of the fixed enumeration.
func (f *BeanForm) Validate() error {
	if strings.TrimSpace(f.Variety) == "" {
		return errors.NewValidationError("variety is required").WithField("variety")
	}
	if f.RoastLevel != "" && !slices.Contains(api.RoastLevels(), f.RoastLevel) {
		return errors.NewValidationError("unknown roast level").
			WithField("roast_level").WithValue(f.RoastLevel)
	}
	return nil
}

// CreateRequest builds the creation payload, collapsing empty optional
// fields to absent.
func (f *BeanForm) CreateRequest() (*api.BeanCreate, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &api.BeanCreate{
		Variety:    f.Variety,
		Seller:     optionalText(f.Seller),
		Roaster:    optionalText(f.Roaster),
		RoastLevel: optionalText(f.RoastLevel),
	}, nil
}

// UpdateRequest builds the update payload.
func (f *BeanForm) UpdateRequest() (*api.BeanUpdate, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	variety := f.Variety
	return &api.BeanUpdate{
		Variety:    &variety,
		Seller:     optionalText(f.Seller),
		Roaster:    optionalText(f.Roaster),
		RoastLevel: optionalText(f.RoastLevel),
	}, nil
}
