package webui

import (
	"net/url"

	"github.com/LHMTR/haruto-information/internal/multilingual"
)

// Links builds the URLs a page points to.
type Links interface {
	// Directory is the line list in lang.
	Directory(lang multilingual.Language) string
	// Line is the detail page of code in lang.
	Line(code string, lang multilingual.Language) string
	// Language switches the current page to lang. lineCode is empty on the
	// line list.
	Language(lang multilingual.Language, lineCode string) string
}

// ServerLinks addresses the pages served by the HTTP server.
type ServerLinks struct{}

func (ServerLinks) Directory(lang multilingual.Language) string {
	return "/?lang=" + lang.Code()
}

func (ServerLinks) Line(code string, lang multilingual.Language) string {
	return "/information/" + url.PathEscape(code) + "?lang=" + lang.Code()
}

func (ServerLinks) Language(lang multilingual.Language, lineCode string) string {
	next := "/"
	if lineCode != "" {
		next = "/information/" + url.PathEscape(lineCode)
	}
	return "/lang/" + lang.Code() + "?next=" + url.QueryEscape(next)
}
