package tex

import "fmt"

// OptionKind selects the bracket style of an Option.
type OptionKind int

const (
	CurlyOption OptionKind = iota
	SquareOption
)

// Option is an extra argument appended to an element's text.
type Option struct {
	Kind OptionKind
	Arg  string
}

// Curly returns an option rendered as {arg}.
func Curly(arg string) Option {
	return Option{Kind: CurlyOption, Arg: arg}
}

// Square returns an option rendered as [arg].
func Square(arg string) Option {
	return Option{Kind: SquareOption, Arg: arg}
}

// Apply appends the option to s.
func (o Option) Apply(s string) string {
	if o.Kind == SquareOption {
		return s + "[" + o.Arg + "]"
	}
	return s + "{" + o.Arg + "}"
}

func (o Option) String() string {
	return o.Apply("")
}

// ParseOptions reads a sequence of {arg} and [arg] groups, the inverse of
// joining Option.String results. Groups may be separated by commas or
// spaces. Brackets of the group's own kind nest.
func ParseOptions(s string) ([]Option, error) {
	var res []Option
	i := 0
	for i < len(s) {
		c := s[i]
		if c == ' ' || c == ',' {
			i++
			continue
		}
		var kind OptionKind
		var lb, rb byte
		switch c {
		case '{':
			kind, lb, rb = CurlyOption, '{', '}'
		case '[':
			kind, lb, rb = SquareOption, '[', ']'
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrBadOption, c, i, s)
		}
		depth := 0
		j := i
		for ; j < len(s); j++ {
			if s[j] == lb {
				depth++
			} else if s[j] == rb {
				depth--
				if depth == 0 {
					break
				}
			}
		}
		if j == len(s) {
			return nil, fmt.Errorf("%w: unclosed %q at %d in %q", ErrBadOption, lb, i, s)
		}
		res = append(res, Option{Kind: kind, Arg: s[i+1 : j]})
		i = j + 1
	}
	return res, nil
}

// Modifier is implemented by everything whose text can be post-processed
// with extra options.
type Modifier interface {
	Modify(opts ...Option) error
}

// rebase computes the canonical text of a and applies opts to it in order.
func rebase(a *Any, opts []Option) (string, error) {
	if a.Type == EnvironmentType {
		begin := `\begin{` + a.Value + `}`
		for _, o := range opts {
			begin = o.Apply(begin)
		}
		return envLatex(begin, a.Value, a.Elements), nil
	}
	s, err := render(a)
	if err != nil {
		return "", err
	}
	for _, o := range opts {
		s = o.Apply(s)
	}
	return s, nil
}
