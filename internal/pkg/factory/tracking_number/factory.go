package tracking_number

import (
	"strings"

	"github.com/google/uuid"
)

const prefix = "SWD"

type Factory struct{}

func New() *Factory {
	return &Factory{}
}

// NewTrackingID выдает непрозрачный трек-номер вида SWD-<uuid>.
func (f *Factory) NewTrackingID() string {
	return prefix + "-" + strings.ToUpper(uuid.NewString())
}
