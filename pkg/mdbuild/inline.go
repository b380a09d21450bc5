package mdbuild

import "strconv"

const nbsp = "&nbsp;"

// Bold wraps text in double asterisks.
func Bold(text string) string {
	return "**" + text + "**"
}

// Italic wraps text in single asterisks.
func Italic(text string) string {
	return "*" + text + "*"
}

// Code wraps text in backticks.
func Code(text string) string {
	return "`" + text + "`"
}

// Link returns an inline link to url labelled title.
func Link(url, title string) string {
	return "[" + title + "](" + url + ")"
}

// Image returns an inline image.
func Image(url, title string) string {
	return "!" + Link(url, title)
}

// ImageSized returns an HTML <img> tag when both width and height are
// positive. Otherwise it falls back to Image.
func ImageSized(url, title string, width, height int) string {
	if width <= 0 || height <= 0 {
		return Image(url, title)
	}
	return `<img src="` + url + `" alt="` + title +
		`" width="` + strconv.Itoa(width) + `" height="` + strconv.Itoa(height) + `">`
}

// Tab returns four non-breaking spaces.
func Tab() string {
	return nbsp + nbsp + nbsp + nbsp
}

// NBSP returns a single non-breaking space entity.
func NBSP() string {
	return nbsp
}
