package janet_test

import (
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	sessionCookie = "ASP.NET_SessionId"
	sessionID     = "0123456789abcdef"
	receiptText   = "Your modification request has been submitted"
)

type fakeDomain struct {
	name        string
	nameServers [][2]string
	ds          []string
	registrant  [][2]string
	tickets     int
}

// fakeRegistry imitates just enough of the registry web site.
type fakeRegistry struct {
	mu sync.Mutex

	user, pass    string
	domains       []fakeDomain
	modifications int
	times         [][2]string
	delay         time.Duration

	submitted []url.Values
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		user: "hostmaster",
		pass: "s3cret",
		domains: []fakeDomain{
			{
				name: "example.ac.uk",
				nameServers: [][2]string{
					{"ns2.example.ac.uk", "192.0.2.2"},
					{"ns1.example.ac.uk", "192.0.2.1"},
				},
				ds: []string{
					"example.ac.uk. IN DS 60485 5 1 2BB183AF5F22588179A53B0A98631FAD1A292118",
					"example.ac.uk. IN DS 60485 5 2 D4B7D520E7BB5F0F67674A0CCEB1E3E0614B93C4F9E99B8383F6A1E4469DA50A",
				},
				registrant: [][2]string{{"Name", "Example University"}, {"PostCode", "EX1 1AA"}},
				tickets:    0,
			},
			{
				name:        "example2.ac.uk",
				nameServers: [][2]string{{"ns.other.org", ""}},
				ds:          nil,
				registrant:  [][2]string{{"Name", "Other"}},
				tickets:     2,
			},
		},
		modifications: 3,
		times:         [][2]string{{"00:00", "0"}, {"08:00", "1"}, {"14:00", "2"}, {"20:00", "3"}},
		delay:         0,
		submitted:     nil,
	}
}

func (f *fakeRegistry) start(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/dns/", f.handleLoginPage)
	mux.HandleFunc("/dns/Login.aspx", f.handleLogin)
	mux.HandleFunc("/dns/Home.aspx", f.session(f.handleHome))
	mux.HandleFunc("/dns/ViewPendingTickets.aspx", f.session(f.handleTickets))
	mux.HandleFunc("/dns/ListDomains.aspx", f.session(f.handleDomains))
	mux.HandleFunc("/dns/DomainDetails.aspx", f.session(f.handleDetails))
	mux.HandleFunc("/dns/ModifyDomain.aspx", f.session(f.handleModify))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func page(w http.ResponseWriter, title, heading, action, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html><head><title>%s</title></head>
<body><h1>%s</h1>
<form method="post" action="%s" id="form1">
<input type="hidden" name="__VIEWSTATE" value="opaque">
<a id="commonActionsMenuLogin_ListPendingTickets" href="ViewPendingTickets.aspx">Pending tickets</a>
<a id="commonActionsMenuLogin_ListDomains" href="ListDomains.aspx">Domains</a>
%s
</form></body></html>`, html.EscapeString(title), html.EscapeString(heading), action, body)
}

func (f *fakeRegistry) session(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if f.delay > 0 {
			time.Sleep(f.delay)
		}
		if c, err := r.Cookie(sessionCookie); err != nil || c.Value != sessionID {
			f.handleLoginPage(w, r)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		h(w, r)
	}
}

func (f *fakeRegistry) handleLoginPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<html><head><title>Login</title></head><body><h1>Log in</h1>
<form method="post" action="Login.aspx" id="form1">
<input type="hidden" name="__VIEWSTATE" value="login">
<input name="ctl00$MainContent$Login1$UserName" id="MainContent_Login1_UserName" type="text">
<input name="ctl00$MainContent$Login1$Password" id="MainContent_Login1_Password" type="password">
<input type="submit" name="ctl00$MainContent$Login1$LoginButton" id="MainContent_Login1_LoginButton" value="Log In">
</form></body></html>`)
}

func (f *fakeRegistry) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil || r.Method != http.MethodPost ||
		r.PostForm.Get("ctl00$MainContent$Login1$LoginButton") == "" ||
		r.PostForm.Get("ctl00$MainContent$Login1$UserName") != f.user ||
		r.PostForm.Get("ctl00$MainContent$Login1$Password") != f.pass {
		f.handleLoginPage(w, r)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: sessionID, Path: "/dns"})
	page(w, "Domain Registry Service", "Welcome", "Home.aspx", "")
}

func (f *fakeRegistry) handleHome(w http.ResponseWriter, _ *http.Request) {
	page(w, "Domain Registry Service", "Welcome", "Home.aspx", "")
}

func ticketTable(rows int) string {
	var b strings.Builder
	b.WriteString(`<table id="MainContent_TicketListView"><tr><th>Ticket</th><th>Type</th></tr>`)
	for i := range rows {
		fmt.Fprintf(&b, `<tr><td>%d</td><td>Modification</td></tr>`, 1000+i)
	}
	b.WriteString(`<tr><td colspan="2">Page 1</td></tr></table>`)
	if rows > 0 {
		b.WriteString(`<span id="MainContent_TicketListView_CurrentPageLabel">1</span>`)
	}
	return b.String()
}

func (f *fakeRegistry) handleTickets(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	if r.URL.Query().Get("submitted") == "1" {
		fmt.Fprintf(&b, `<p id="MainContent_SubmissionText">%s</p>`, receiptText)
	}
	b.WriteString(`<select name="ctl00$MainContent$TicketTypeChoice" id="MainContent_TicketTypeChoice">
<option selected="selected" value="">All</option><option value="Modification">Modification</option></select>
<input type="text" name="ctl00$MainContent$DomainFilterInput" id="MainContent_DomainFilterInput">
<input type="submit" name="ctl00$MainContent$FilterSubmit" id="MainContent_FilterSubmit" value="Filter">`)

	if r.Method == http.MethodPost && r.PostForm.Get("ctl00$MainContent$FilterSubmit") != "" {
		rows := 0
		name := r.PostForm.Get("ctl00$MainContent$DomainFilterInput")
		switch {
		case r.PostForm.Get("ctl00$MainContent$TicketTypeChoice") == "Modification" && name == "":
			rows = f.modifications
		case name != "":
			for _, d := range f.domains {
				if d.name == name {
					rows = d.tickets
				}
			}
		}
		b.WriteString(ticketTable(rows))
	}

	page(w, "Domain Registry Service", "Pending tickets", "ViewPendingTickets.aspx", b.String())
}

func (f *fakeRegistry) listed(filter string) []fakeDomain {
	var found []fakeDomain
	for _, d := range f.domains {
		if filter != "" && strings.Contains(d.name, filter) {
			found = append(found, d)
		}
	}
	return found
}

func (f *fakeRegistry) handleDomains(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		filter := r.PostForm.Get("filter")
		if r.PostForm.Get("ctl00$MainContent$btnFilter") != "" {
			filter = r.PostForm.Get("ctl00$MainContent$tbDomainNames")
		}
		listed := f.listed(filter)

		for i, d := range listed {
			if r.PostForm.Get("__EVENTTARGET") == fmt.Sprintf("ctl00$MainContent$DomainListView$ctrl%d$ViewDomainNumber", i) {
				f.renderDetails(w, d)
				return
			}
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<input type="hidden" name="filter" value="%s"><table id="MainContent_DomainListView">`, html.EscapeString(filter))
		for i, d := range listed {
			fmt.Fprintf(&b, `<tr><td><a id="MainContent_DomainListView_ViewDomainNumber%d_%d" `+
				`href="javascript:__doPostBack(&#39;ctl00$MainContent$DomainListView$ctrl%d$ViewDomainNumber&#39;,&#39;&#39;)">View</a></td>`+
				`<td>%d</td><td>Jisc</td><td>%s</td><td>Delegated</td></tr>`,
				i, i, i, i, strings.ToUpper(d.name))
		}
		b.WriteString(`</table>`)
		page(w, "Domain Registry Service", "Domains", "ListDomains.aspx", b.String())
		return
	}

	page(w, "Domain Registry Service", "Domains", "ListDomains.aspx", `
<input type="text" name="ctl00$MainContent$tbDomainNames" id="MainContent_tbDomainNames">
<input type="checkbox" name="ctl00$MainContent$ShowReverseDelegatedDomains" id="MainContent_ShowReverseDelegatedDomains">
<input type="submit" name="ctl00$MainContent$btnFilter" id="MainContent_btnFilter" value="Search">`)
}

func (f *fakeRegistry) find(name string) (fakeDomain, bool) {
	for _, d := range f.domains {
		if d.name == name {
			return d, true
		}
	}
	return fakeDomain{}, false
}

func (f *fakeRegistry) renderDetails(w http.ResponseWriter, d fakeDomain) {
	var b strings.Builder
	fmt.Fprintf(&b, `<input type="hidden" name="domain" value="%s">`, d.name)
	b.WriteString(`<table id="MainContent_nameServersTab"><tr><th>Role</th><th>Name</th><th>Address</th></tr>`)
	for i, ns := range d.nameServers {
		role := "Secondary"
		if i == 0 {
			role = "Primary"
		}
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td></tr>`, role, ns[0], ns[1])
	}
	b.WriteString(`</table>`)
	if len(d.ds) > 0 {
		fmt.Fprintf(&b, `<span id="MainContent_DsKeysDisplay">%s</span>`, strings.Join(d.ds, "<br/>\n"))
	}
	for _, field := range d.registrant {
		fmt.Fprintf(&b, `<span id="MainContent_Reg%s">%s</span>`, field[0], html.EscapeString(field[1]))
	}
	b.WriteString(`<input type="submit" name="ctl00$MainContent$ModifyDomainButton" id="MainContent_ModifyDomainButton" value="Modify">`)
	page(w, "Domain Registry Service", "Domain details", "DomainDetails.aspx", b.String())
}

func (f *fakeRegistry) handleDetails(w http.ResponseWriter, r *http.Request) {
	d, ok := f.find(r.PostForm.Get("domain"))
	if !ok || r.PostForm.Get("ctl00$MainContent$ModifyDomainButton") == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f.renderForm(w, d, len(d.nameServers)-1, false)
}

func (f *fakeRegistry) renderForm(w http.ResponseWriter, d fakeDomain, nsec int, dsOpen bool) {
	var b strings.Builder
	fmt.Fprintf(&b, `<input type="hidden" name="domain" value="%s"><input type="hidden" name="nsec" value="%d">`, d.name, nsec)
	if dsOpen {
		b.WriteString(`<input type="hidden" name="dsopen" value="1">`)
	}

	b.WriteString(`<select name="ctl00$MainContent$NumberOfSecServers" id="MainContent_NumberOfSecServers" ` +
		`onchange="javascript:setTimeout('__doPostBack(\'ctl00$MainContent$NumberOfSecServers\',\'\')', 0)">`)
	for i := range 6 {
		selected := ""
		if i == nsec {
			selected = ` selected="selected"`
		}
		fmt.Fprintf(&b, `<option%s value="%d">%d</option>`, selected, i, i)
	}
	b.WriteString(`</select>`)

	b.WriteString(`<input type="text" name="ctl00$MainContent$PrimeNameserverName" id="MainContent_PrimeNameserverName">
<input type="text" name="ctl00$MainContent$PrimeNameserverIp" id="MainContent_PrimeNameserverIp">`)
	for i := range nsec {
		fmt.Fprintf(&b, `<input type="text" name="ctl00$MainContent$SecAddress%d" id="MainContent_SecAddress%d">`, i, i)
		fmt.Fprintf(&b, `<input type="text" name="ctl00$MainContent$SecIp%d" id="MainContent_SecIp%d">`, i, i)
	}

	b.WriteString(`<span id="ModifyDsKeyIcon"><input type="image" name="ctl00$MainContent$ModifyDsKeyIcon" src="edit.png"></span>`)
	if dsOpen {
		fmt.Fprintf(&b, `<textarea name="ctl00$MainContent$DsKeyTabContainer$DsPasteTab$DsKeyText" `+
			`id="MainContent_DsKeyTabContainer_DsPasteTab_DsKeyText">
%s</textarea>`, strings.Join(d.ds, "\n"))
	}

	for _, field := range d.registrant {
		key := field[0]
		if key == "PostCode" {
			key = "Postcode"
		}
		fmt.Fprintf(&b, `<input type="text" name="ctl00$MainContent$Registrant$Reg%s" id="MainContent_Registrant_Reg%s" value="%s">`,
			key, key, html.EscapeString(field[1]))
	}

	b.WriteString(`<select name="ctl00$MainContent$ModificationTime" id="MainContent_ModificationTime">`)
	for _, t := range f.times {
		fmt.Fprintf(&b, `<option value="%s">%s</option>`, t[1], t[0])
	}
	b.WriteString(`</select>
<input type="text" name="ctl00$MainContent$ModificationDateCalendar" id="MainContent_ModificationDateCalendar">
<input type="submit" name="ctl00$MainContent$ConfirmRequest" id="MainContent_ConfirmRequest" value="Confirm">`)

	page(w, "Domain Registry Service", "Modify domain", "ModifyDomain.aspx", b.String())
}

func (f *fakeRegistry) handleModify(w http.ResponseWriter, r *http.Request) {
	d, ok := f.find(r.PostForm.Get("domain"))
	if !ok {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	nsec, _ := strconv.Atoi(r.PostForm.Get("nsec"))
	dsOpen := r.PostForm.Get("dsopen") == "1"

	switch {
	case r.PostForm.Get("__EVENTTARGET") == "ctl00$MainContent$NumberOfSecServers":
		nsec, _ = strconv.Atoi(r.PostForm.Get("ctl00$MainContent$NumberOfSecServers"))
		f.renderForm(w, d, nsec, dsOpen)
	case r.PostForm.Get("ctl00$MainContent$ModifyDsKeyIcon.x") != "":
		f.renderForm(w, d, nsec, true)
	case r.PostForm.Get("ctl00$MainContent$ConfirmRequest") != "":
		f.submitted = append(f.submitted, r.PostForm)
		http.Redirect(w, r, "ViewPendingTickets.aspx?submitted=1", http.StatusFound)
	default:
		http.Error(w, "bad request", http.StatusBadRequest)
	}
}
