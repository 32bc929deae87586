package logger

// Color :
// Defines the color that can be produced as valid console
// output display.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Grey
)

var colorCodes = [...]string{
	"30",
	"31",
	"32",
	"33",
	"34",
	"35",
	"36",
	"37",
	"90",
}

// Code :
// Returns the escape sequence switching the console display
// to this color. Unknown colors produce an empty string so
// that the text is left untouched.
func (c Color) Code() string {
	if c < Black || int(c) >= len(colorCodes) {
		return ""
	}
	return "\033[1;" + colorCodes[c] + "m"
}

// Reset :
// Returns the escape sequence restoring the default display.
func Reset() string {
	return "\033[0m"
}

// Colorize :
// Wraps the input text with the escape sequences needed to
// display it with the color `c`.
func Colorize(msg string, c Color) string {
	code := c.Code()
	if code == "" {
		return msg
	}
	return code + msg + Reset()
}

// FormatWithBrackets :
// Surrounds the message with brackets and colors it.
func FormatWithBrackets(msg string, c Color) string {
	return Colorize("["+msg+"]", c)
}
