package condition

// Connection supplies the text a condition evaluates. Implementations
// usually read from a form field or a request value.
type Connection interface {
	Text() (string, error)
	// IsEditable reports whether the user can change the value. Required
	// ignores connections that are not editable.
	IsEditable() bool
}

// StaticConnection holds a fixed text.
type StaticConnection struct {
	Value    string
	ReadOnly bool
}

// Static returns an editable connection holding text.
func Static(text string) StaticConnection {
	return StaticConnection{Value: text}
}

func (c StaticConnection) Text() (string, error) { return c.Value, nil }
func (c StaticConnection) IsEditable() bool      { return !c.ReadOnly }

// FuncConnection reads its text from a function on every evaluation.
type FuncConnection struct {
	Fn       func() (string, error)
	ReadOnly bool
}

func (c FuncConnection) Text() (string, error) {
	if c.Fn == nil {
		return "", ErrNoConnection
	}
	return c.Fn()
}

func (c FuncConnection) IsEditable() bool { return !c.ReadOnly }
