package janet

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//nolint:gochecknoglobals
var (
	doPostBackRegex  = regexp.MustCompile(`__doPostBack\(\s*'([^']*)'\s*,\s*'([^']*)'\s*\)`)
	postBackOptRegex = regexp.MustCompile(`WebForm_PostBackOptions\(\s*"([^"]*)"\s*,\s*"([^"]*)"`)
)

const (
	fieldEventTarget   = "__EVENTTARGET"
	fieldEventArgument = "__EVENTARGUMENT"
)

var errNoForm = errors.New("no form on the page")

// form is the one server-side form of an ASP.NET page.
type form struct {
	page   *page
	node   *html.Node
	action *url.URL
	values url.Values
}

// request is what the browser would send next.
type request struct {
	method string
	url    *url.URL
	values url.Values
}

func (p *page) form() (*form, error) {
	node := findFirst(p.doc, isTag(atom.Form))
	if node == nil {
		return nil, errNoForm
	}

	action, err := p.url.Parse(attr(node, "action"))
	if err != nil {
		return nil, fmt.Errorf("bad form action %q: %w", attr(node, "action"), err)
	}

	f := &form{page: p, node: node, action: action, values: url.Values{}}
	f.collect()
	return f, nil
}

// collect fills in the values a browser would submit without any user input.
func (f *form) collect() {
	for _, n := range findAll(f.node, func(n *html.Node) bool {
		return n.DataAtom == atom.Input || n.DataAtom == atom.Select || n.DataAtom == atom.Textarea
	}) {
		name := attr(n, "name")
		if name == "" || hasAttr(n, "disabled") {
			continue
		}

		switch n.DataAtom {
		case atom.Input:
			switch strings.ToLower(attr(n, "type")) {
			case "submit", "button", "image", "reset", "file":
			case "checkbox", "radio":
				if hasAttr(n, "checked") {
					f.values.Add(name, checkValue(n))
				}
			default:
				f.values.Add(name, attr(n, "value"))
			}
		case atom.Select:
			if o := selectedOption(findAll(n, isTag(atom.Option))); o != nil {
				f.values.Set(name, optionValue(o))
			}
		case atom.Textarea:
			f.values.Add(name, strings.TrimPrefix(rawText(n), "\n"))
		}
	}
}

// selectedOption gives the option a browser would submit: the selected one, or the first one.
func selectedOption(opts []*html.Node) *html.Node {
	for _, o := range opts {
		if hasAttr(o, "selected") {
			return o
		}
	}
	if len(opts) > 0 {
		return opts[0]
	}
	return nil
}

func checkValue(n *html.Node) string {
	if hasAttr(n, "value") {
		return attr(n, "value")
	}
	return "on"
}

func (f *form) field(id string) (*html.Node, string, error) {
	n := f.page.byID(id)
	if n == nil {
		return nil, "", fmt.Errorf("missing field %s", id)
	}
	name := attr(n, "name")
	if name == "" {
		return nil, "", fmt.Errorf("field %s has no name", id)
	}
	return n, name, nil
}

// set fills in a text field, a text area, or a select element.
// Select elements accept either the value or the text of an option.
func (f *form) set(id, value string) error {
	n, name, err := f.field(id)
	if err != nil {
		return err
	}

	if n.DataAtom == atom.Select {
		for _, o := range f.page.options(id) {
			if o.value == value || o.text == value {
				f.values.Set(name, o.value)
				return nil
			}
		}
		return fmt.Errorf("field %s has no option %q", id, value)
	}

	f.values.Set(name, value)
	return nil
}

// check ticks or unticks a checkbox.
func (f *form) check(id string, on bool) error {
	n, name, err := f.field(id)
	if err != nil {
		return err
	}
	if on {
		f.values.Set(name, checkValue(n))
	} else {
		f.values.Del(name)
	}
	return nil
}

func (f *form) post(extra url.Values) request {
	values := url.Values{}
	for k, vs := range f.values {
		values[k] = append([]string(nil), vs...)
	}
	for k, vs := range extra {
		values[k] = vs
	}
	return request{method: http.MethodPost, url: f.action, values: values}
}

// postBack emulates the script an ASP.NET control runs when it changes.
func (f *form) postBack(id string) (request, error) {
	_, name, err := f.field(id)
	if err != nil {
		return request{}, err
	}
	return f.post(url.Values{fieldEventTarget: {name}, fieldEventArgument: {""}}), nil
}

// click emulates a click on a button or a link.
func (f *form) click(n *html.Node) (request, error) {
	switch n.DataAtom {
	case atom.Input, atom.Button:
		name := attr(n, "name")
		if name == "" {
			return f.post(nil), nil
		}
		if strings.EqualFold(attr(n, "type"), "image") {
			return f.post(url.Values{name + ".x": {"1"}, name + ".y": {"1"}}), nil
		}
		return f.post(url.Values{name: {attr(n, "value")}}), nil

	case atom.A:
		href := attr(n, "href")
		if m := doPostBackRegex.FindStringSubmatch(href); m != nil {
			return f.post(url.Values{fieldEventTarget: {m[1]}, fieldEventArgument: {m[2]}}), nil
		}
		if m := postBackOptRegex.FindStringSubmatch(href); m != nil {
			return f.post(url.Values{fieldEventTarget: {m[1]}, fieldEventArgument: {m[2]}}), nil
		}
		target, err := f.page.url.Parse(href)
		if err != nil {
			return request{}, fmt.Errorf("bad link %q: %w", href, err)
		}
		return request{method: http.MethodGet, url: target, values: nil}, nil

	default:
		return request{}, fmt.Errorf("cannot click on <%s>", n.Data)
	}
}

// clickID clicks on the element with the id.
func (f *form) clickID(id string) (request, error) {
	n := f.page.byID(id)
	if n == nil {
		return request{}, fmt.Errorf("missing control %s", id)
	}
	return f.click(n)
}
