package widget

// WidgetError is a custom error type for widget errors
type WidgetError string

// Error implements the error interface
func (e WidgetError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          WidgetError = "config cannot be nil"
	ErrNilConfigurator    WidgetError = "configurator cannot be nil"
	ErrNilDiceRoller      WidgetError = "dice roller cannot be nil"
	ErrNilRandom          WidgetError = "random source cannot be nil"
	ErrNilClock           WidgetError = "clock cannot be nil"
	ErrNilUUIDGenerator   WidgetError = "UUID generator cannot be nil"
	ErrNilInput           WidgetError = "input cannot be nil"
	ErrInvalidDieKind     WidgetError = "unsupported die kind"
	ErrInvalidSettleDelay WidgetError = "settle delay cannot be negative"
	ErrWidgetClosed       WidgetError = "widget is closed"
)
