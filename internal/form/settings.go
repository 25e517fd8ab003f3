package form

import (
	"strings"

	"github.com/Ivaneres/coffee/internal/api"
)

// SettingsForm is the editable field set for the user's default equipment.
type SettingsForm struct {
	DefaultMachine string
	DefaultGrinder string
}

// NewSettingsForm seeds the form from the current settings record; absent
// defaults render as empty strings.
func NewSettingsForm(settings *api.UserSettings) *SettingsForm {
	f := &SettingsForm{}
	if settings != nil {
		f.DefaultMachine = stringValue(settings.DefaultMachine)
		f.DefaultGrinder = stringValue(settings.DefaultGrinder)
	}
	return f
}

// UpdateRequest builds the settings payload. Both fields are always sent:
// the server applies a partial update and leaves omitted fields unchanged,
// so an emptied default must go over the wire as "" to actually clear.
func (f *SettingsForm) UpdateRequest() *api.UserSettingsUpdate {
	machine := strings.TrimSpace(f.DefaultMachine)
	grinder := strings.TrimSpace(f.DefaultGrinder)
	return &api.UserSettingsUpdate{
		DefaultMachine: &machine,
		DefaultGrinder: &grinder,
	}
}
