package tex

import (
	"fmt"
	"strings"
)

const (
	beginDocument = `\begin{document}`
	endDocument   = `\end{document}`
	makeTitle     = `\maketitle`
)

// render is the formatting rule for every element type. It only reads
// structured fields; cached text is never consulted except for the
// children of an environment.
func render(a *Any) (string, error) {
	switch a.Type {
	case InputType:
		return `\input{` + a.Value + `}`, nil
	case PackageType:
		return `\usepackage{` + a.Value + `}`, nil
	case PartType:
		return `\part{` + a.Value + `}`, nil
	case ChapterType:
		return `\chapter{` + a.Value + `}`, nil
	case HeaderType:
		depth := 1
		if a.HeaderLevel != nil {
			depth = *a.HeaderLevel
		}
		return headerLatex(a.Value, depth)
	case ParagraphType:
		return `\paragraph{` + a.Value + `}`, nil
	case TextType:
		style := Normal
		if a.TextStyle != nil {
			style = *a.TextStyle
		}
		return textLatex(a.Value, style)
	case EnvironmentType:
		return envLatex(`\begin{`+a.Value+`}`, a.Value, a.Elements), nil
	case ListType:
		kind := Itemized
		if a.ListKind != nil {
			kind = *a.ListKind
		}
		return listLatex(kind, a.Items), nil
	case ItemType:
		return itemLatex(a.Value), nil
	case CustomType:
		return a.Value, nil
	case CommentType:
		return "% " + a.Value, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownType, int(a.Type))
	}
}

func headerLatex(name string, depth int) (string, error) {
	if depth < 1 {
		return "", &HeaderLevelError{Name: name, Depth: depth}
	}
	return `\` + strings.Repeat("sub", depth-1) + `section{` + name + `}`, nil
}

func textLatex(content string, style TextStyle) (string, error) {
	switch style {
	case Bold:
		return `\textbf{` + content + `}`, nil
	case Italics:
		return `\textit{` + content + `}`, nil
	case Normal:
		return content, nil
	case Math:
		return `$` + content + `$`, nil
	case Par:
		return `\par {` + content + `}`, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrBadStyle, int(style))
	}
}

func envLatex(begin, name string, children []*Element) string {
	inner := make([]string, 0, len(children))
	for _, c := range children {
		inner = append(inner, c.Latex())
	}
	return strings.Join([]string{begin, strings.Join(inner, "\n"), `\end{` + name + `}`}, "\n")
}

func listLatex(kind ListKind, items []Item) string {
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, `\begin{`+kind.env()+`}`)
	for i := range items {
		lines = append(lines, items[i].line())
	}
	lines = append(lines, `\end{`+kind.env()+`}`)
	return strings.Join(lines, "\n")
}

func itemLatex(label string) string {
	return `\item {` + label + `}`
}
