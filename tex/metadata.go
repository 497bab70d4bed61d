package tex

import (
	"strconv"
	"strings"
)

// Metadata describes the document class and title block. A list holds
// exactly one; it is replaced wholesale, never merged.
type Metadata struct {
	Author    string `json:"author"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	FontSize  uint8  `json:"fontsize"`
	PaperSize string `json:"papersize"`
	DocClass  string `json:"doc_class"`
	MakeTitle bool   `json:"maketitle"`
}

func NewMetadata(author, date, title string, fontSize uint8, paperSize, docClass string, makeTitle bool) *Metadata {
	return &Metadata{
		Author:    author,
		Date:      date,
		Title:     title,
		FontSize:  fontSize,
		PaperSize: paperSize,
		DocClass:  docClass,
		MakeTitle: makeTitle,
	}
}

func DefaultMetadata() *Metadata {
	return NewMetadata("author", "date", "title", 11, "letterpaper", "article", true)
}

// Latex renders the class declaration, title, author and date lines, in
// that order.
func (m *Metadata) Latex() string {
	return strings.Join([]string{
		`\documentclass[` + strconv.Itoa(int(m.FontSize)) + `pt, ` + m.PaperSize + `]{` + m.DocClass + `}`,
		`\title{` + m.Title + `}`,
		`\author{` + m.Author + `}`,
		`\date{` + m.Date + `}`,
	}, "\n")
}
