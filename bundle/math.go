package bundle

import (
	"github.com/signadot/texcore/tex"
)

// Case selects the lower or upper case form of a letter or arrow.
type Case int

const (
	Lower Case = iota
	Upper
)

type symbol struct {
	name  string
	lower string
	upper string
}

func (s symbol) latex(c Case) string {
	if c == Upper && s.upper != "" {
		return s.upper
	}
	return s.lower
}

// Greek is a greek letter. Var forms have no upper case.
type Greek int

const (
	Alpha Greek = iota
	Beta
	Gamma
	Delta
	Epsilon
	VarEpsilon
	Zeta
	Eta
	Theta
	VarTheta
	Iota
	Kappa
	Lambda
	Mu
	Nu
	Xi
	Omicron
	Pi
	Rho
	VarRho
	Sigma
	Tau
	Upsilon
	Phi
	VarPhi
	Chi
	Psi
	Omega
)

var greek = []symbol{
	Alpha:      {"alpha", `\alpha`, "A"},
	Beta:       {"beta", `\beta`, "B"},
	Gamma:      {"gamma", `\gamma`, `\Gamma`},
	Delta:      {"delta", `\delta`, `\Delta`},
	Epsilon:    {"epsilon", `\epsilon`, "E"},
	VarEpsilon: {"varepsilon", `\varepsilon`, ""},
	Zeta:       {"zeta", `\zeta`, "Z"},
	Eta:        {"eta", `\eta`, "H"},
	Theta:      {"theta", `\theta`, `\Theta`},
	VarTheta:   {"vartheta", `\vartheta`, ""},
	Iota:       {"iota", `\iota`, "I"},
	Kappa:      {"kappa", `\kappa`, "K"},
	Lambda:     {"lambda", `\lambda`, `\Lambda`},
	Mu:         {"mu", `\mu`, "M"},
	Nu:         {"nu", `\nu`, "N"},
	Xi:         {"xi", `\xi`, `\Xi`},
	Omicron:    {"omicron", "o", "O"},
	Pi:         {"pi", `\pi`, `\Pi`},
	Rho:        {"rho", `\rho`, "P"},
	VarRho:     {"varrho", `\varrho`, ""},
	Sigma:      {"sigma", `\sigma`, `\Sigma`},
	Tau:        {"tau", `\tau`, "T"},
	Upsilon:    {"upsilon", `\upsilon`, `\Upsilon`},
	Phi:        {"phi", `\phi`, `\Phi`},
	VarPhi:     {"varphi", `\varphi`, ""},
	Chi:        {"chi", `\chi`, "X"},
	Psi:        {"psi", `\psi`, `\Psi`},
	Omega:      {"omega", `\omega`, `\Omega`},
}

func (g Greek) Latex(c Case) string         { return greek[g].latex(c) }
func (g Greek) Element(c Case) *tex.Element { return Symbol(g.Latex(c)) }
func (g Greek) String() string              { return greek[g].name }

// Arrow is an arrow symbol. Upper case selects the double stroke form
// where there is one.
type Arrow int

const (
	LeftArrow Arrow = iota
	RightArrow
	LeftRightArrow
	RightLeftHarpoons
	UpArrow
	DownArrow
	UpDownArrow
	MapsTo
	LongMapsTo
	NEArrow
	SEArrow
	SWArrow
	NWArrow
	LeftHarpoonUp
	LeftHarpoonDown
	RightHarpoonUp
	RightHarpoonDown
)

var arrows = []symbol{
	LeftArrow:         {"leftarrow", `\leftarrow`, `\Leftarrow`},
	RightArrow:        {"rightarrow", `\rightarrow`, `\Rightarrow`},
	LeftRightArrow:    {"leftrightarrow", `\leftrightarrow`, `\Leftrightarrow`},
	RightLeftHarpoons: {"rightleftharpoons", `\rightleftharpoons`, ""},
	UpArrow:           {"uparrow", `\uparrow`, `\Uparrow`},
	DownArrow:         {"downarrow", `\downarrow`, `\Downarrow`},
	UpDownArrow:       {"updownarrow", `\Updownarrow`, ""},
	MapsTo:            {"mapsto", `\mapsto`, ""},
	LongMapsTo:        {"longmapsto", `\longmapsto`, ""},
	NEArrow:           {"nearrow", `\nearrow`, ""},
	SEArrow:           {"searrow", `\searrow`, ""},
	SWArrow:           {"swarrow", `\swarrow`, ""},
	NWArrow:           {"nwarrow", `\nwarrow`, ""},
	LeftHarpoonUp:     {"leftharpoonup", `\leftharpoonup`, ""},
	LeftHarpoonDown:   {"leftharpoondown", `\leftharpoondown`, ""},
	RightHarpoonUp:    {"rightharpoonup", `\rightharpoonup`, ""},
	RightHarpoonDown:  {"rightharpoondown", `\rightharpoondown`, ""},
}

func (a Arrow) Latex(c Case) string         { return arrows[a].latex(c) }
func (a Arrow) Element(c Case) *tex.Element { return Symbol(a.Latex(c)) }
func (a Arrow) String() string              { return arrows[a].name }

// Misc is a miscellaneous math symbol.
type Misc int

const (
	Infty Misc = iota
	ForAll
	Re
	Im
	Nabla
	Exists
	NExists
	Partial
	EmptySet
	VarNothing
	Wp
	Complement
	Neg
	CDots
	Square
	Surd
	BlackSquare
	Triangle
)

var misc = []symbol{
	Infty:       {"infty", `\infty`, ""},
	ForAll:      {"forall", `\forall`, ""},
	Re:          {"Re", `\Re`, ""},
	Im:          {"Im", `\Im`, ""},
	Nabla:       {"nabla", `\nabla`, ""},
	Exists:      {"exists", `\exists`, ""},
	NExists:     {"nexists", `\nexists`, ""},
	Partial:     {"partial", `\partial`, ""},
	EmptySet:    {"emptyset", `\emptyset`, ""},
	VarNothing:  {"varnothing", `\varnothing`, ""},
	Wp:          {"wp", `\wp`, ""},
	Complement:  {"complement", `\complement`, ""},
	Neg:         {"neg", `\neg`, ""},
	CDots:       {"cdots", `\cdots`, ""},
	Square:      {"square", `\square`, ""},
	Surd:        {"surd", `\surd`, ""},
	BlackSquare: {"blacksquare", `\blacksquare`, ""},
	Triangle:    {"triangle", `\triangle`, ""},
}

func (m Misc) Latex() string         { return misc[m].lower }
func (m Misc) Element() *tex.Element { return Symbol(m.Latex()) }
func (m Misc) String() string        { return misc[m].name }

// Binary is a binary operator or relation.
type Binary int

const (
	Times Binary = iota
	Div
	CDot
	Cap
	Cup
	Neq
	Leq
	Geq
	In
	Perp
	Nothing
	Subset
	Simeq
	Approx
	Wedge
	Vee
	OPlus
	OTimes
	Box
	BoxTimes
	Equiv
	Cong
)

var binary = []symbol{
	Times:    {"times", `\times`, ""},
	Div:      {"div", `\div`, ""},
	CDot:     {"cdot", `\cdot`, ""},
	Cap:      {"cap", `\cap`, ""},
	Cup:      {"cup", `\cup`, ""},
	Neq:      {"neq", `\neq`, ""},
	Leq:      {"leq", `\leq`, ""},
	Geq:      {"geq", `\geq`, ""},
	In:       {"in", `\in`, ""},
	Perp:     {"perp", `\perp`, ""},
	Nothing:  {"nothing", `\nothing`, ""},
	Subset:   {"subset", `\subset`, ""},
	Simeq:    {"simeq", `\simeq`, ""},
	Approx:   {"approx", `\approx`, ""},
	Wedge:    {"wedge", `\wedge`, ""},
	Vee:      {"vee", `\vee`, ""},
	OPlus:    {"oplus", `\oplus`, ""},
	OTimes:   {"otimes", `\otimes`, ""},
	Box:      {"box", `\box`, ""},
	BoxTimes: {"boxtimes", `\boxtimes`, ""},
	Equiv:    {"equiv", `\equiv`, ""},
	Cong:     {"cong", `\cong`, ""},
}

func (b Binary) Latex() string         { return binary[b].lower }
func (b Binary) Element() *tex.Element { return Symbol(b.Latex()) }
func (b Binary) String() string        { return binary[b].name }

// Symbol wraps raw symbol text as a Document level custom element.
func Symbol(latex string) *tex.Element {
	return tex.MustElement(tex.NewCustom(latex, tex.Document))
}

// SymbolInfo describes one entry of a symbol set.
type SymbolInfo struct {
	Set   string
	Name  string
	Lower string
	Upper string
}

// Symbols lists every symbol of every set, set by set in declaration
// order.
func Symbols() []SymbolInfo {
	var res []SymbolInfo
	for _, set := range []struct {
		name string
		syms []symbol
	}{
		{"greek", greek},
		{"arrow", arrows},
		{"misc", misc},
		{"binary", binary},
	} {
		for _, s := range set.syms {
			res = append(res, SymbolInfo{Set: set.name, Name: s.name, Lower: s.lower, Upper: s.upper})
		}
	}
	return res
}

// Equation is an equation environment, equation* when starred.
func Equation(starred bool) *tex.Environment {
	if starred {
		return tex.NewEnvironment("equation*")
	}
	return tex.NewEnvironment("equation")
}

// EquationSplit nests a split environment holding lines in an equation.
// Lines other than the last should end with \\.
func EquationSplit(starred bool, lines []*tex.Element) (*tex.Environment, error) {
	eq := Equation(starred)
	split := tex.NewEnvironment("split")
	split.SetElements(lines)
	e, err := tex.NewElement(split)
	if err != nil {
		return nil, err
	}
	eq.Push(e)
	return eq, nil
}
