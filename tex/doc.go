// Package tex provides the element model and rendering engine for LaTeX
// documents.
//
// # Overview
//
// A document is an [ElementList]: one [Metadata] record plus an ordered
// sequence of [Element] envelopes. Callers build typed variants ([Part],
// [Chapter], [Header], [Text], [Package], [Environment], ...), convert them
// into envelopes with [NewElement] and push them onto the list. Rendering
// partitions the envelopes by [Level] and concatenates each group.
//
//	list := tex.NewDefaultList()
//	list.Push(tex.MustElement(tex.NewPackage("amsmath")))
//	list.Push(tex.MustElement(tex.NewPart("Introduction")))
//	fmt.Println(list.Latex())
//
// # Levels
//
// Every element is placed at exactly one level:
//
//   - Meta: document class, title, author and anything else before packages
//   - Packages: \usepackage declarations (a separate file in split renders)
//   - Document: everything between \begin{document} and \end{document}
//
// Within a level, elements keep the order in which they were pushed.
//
// # Erased Elements
//
// [Any] is the erased form of every variant. It is a tagged union: the
// [Type] field selects which of the optional fields are meaningful and which
// formatting rule applies. The rendered text is computed once, when a
// variant is converted, and cached on the envelope. Rendering a list never
// re-derives text from structured fields.
//
// # Extra Options
//
// Every variant, [Any] and [Element] implement [Modifier]. Modify recomputes
// the canonical text, appends each [Option] in order ({...} for [Curly],
// [...] for [Square]) and latches the element as modified. A modified
// element's text is authoritative from then on. Calling Modify again starts
// over from the canonical text; options never compound across calls.
//
//	ch := tex.NewChapter("A chapter")
//	ch.Modify(tex.Curly("opt")) // \chapter{A chapter}{opt}
//
// Environments are the exception to appending at the end: their options
// are appended to the \begin{name} line.
//
// # Thread Safety
//
// Element lists are not safe for concurrent mutation. Renders only read the
// list; use [ElementList.Clone] to hand a snapshot to another goroutine.
//
// # Related Packages
//
//   - github.com/signadot/texcore/emit - single, pooled and async writers
//   - github.com/signadot/texcore/template - persisted templates
//   - github.com/signadot/texcore/bundle - tables, graphics and math symbols
package tex
