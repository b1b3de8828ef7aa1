package symbols

type Class uint8

const (
	Static Class = iota
	Field
	Argument
	Local
	numClasses
)

func (c Class) String() string {
	switch c {
	case Static:
		return "static"
	case Field:
		return "field"
	case Argument:
		return "argument"
	case Local:
		return "local"
	}
	return "invalid"
}

// unitScoped reports whether symbols of the class live as long as the unit.
func (c Class) unitScoped() bool {
	return c == Static || c == Field
}

type Symbol struct {
	Name  string
	Class Class
	Type  string
	Index int
}
