package janet

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ipreg/superglue/internal/delegation"
	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/registrant"
	"github.com/ipreg/superglue/internal/sliceutil"
	"github.com/ipreg/superglue/internal/zonetext"
)

// ticketRows counts the rows of the ticket list, which has a header row and a pager row.
func (g *Gateway) ticketRows() int {
	list := g.page.byID(idTicketList)
	if list == nil {
		return 0
	}
	return max(len(findAll(list, isTag(atom.Tr)))-2, 0) //nolint:mnd
}

func (g *Gateway) filterTickets(ctx context.Context, ppfmt pp.PP, step string, ticketType string, name domain.Name) error {
	if err := g.menu(ctx, ppfmt, "tickets", idMenuTickets); err != nil {
		return err
	}
	return g.fill(ctx, ppfmt, step, idTicketFilter, func(f *form) error {
		if err := f.set(idTicketType, ticketType); err != nil {
			return err
		}
		return f.set(idTicketDomain, string(name))
	})
}

// CountPendingModifications counts modification tickets of all domains.
func (g *Gateway) CountPendingModifications(ctx context.Context, ppfmt pp.PP) (int, error) {
	const op = "count pending modifications"

	if err := g.login(ctx, ppfmt); err != nil {
		return 0, failure.Operational(op, "", err)
	}
	if err := g.filterTickets(ctx, ppfmt, "modification tickets", ticketTypeModification, ""); err != nil {
		return 0, failure.Operational(op, "", err)
	}

	n := g.ticketRows()
	ppfmt.Infof(pp.EmojiTicket, "Pending modifications: %d", n)
	return n, nil
}

// GetPendingTicketCount counts pending tickets of the domain.
func (g *Gateway) GetPendingTicketCount(ctx context.Context, ppfmt pp.PP, name domain.Name) (int, error) {
	const op = "read pending tickets"

	if err := g.login(ctx, ppfmt); err != nil {
		return 0, failure.Operational(op, name.Describe(), err)
	}
	if err := g.filterTickets(ctx, ppfmt, "filtered tickets", "", name); err != nil {
		return 0, failure.Operational(op, name.Describe(), err)
	}

	if !g.page.exists(idTicketPageInfo) {
		return 0, nil
	}
	return max(g.ticketRows(), 1), nil
}

// openDomain makes the details page of the domain the current page.
func (g *Gateway) openDomain(ctx context.Context, ppfmt pp.PP, name domain.Name) error {
	if g.current == name && !g.onForm {
		return nil
	}

	if err := g.login(ctx, ppfmt); err != nil {
		return err
	}
	if err := g.menu(ctx, ppfmt, "domain list", idMenuDomains); err != nil {
		return err
	}
	err := g.fill(ctx, ppfmt, "filtered list", idDomainSubmit, func(f *form) error {
		if err := f.set(idDomainFilter, string(name)); err != nil {
			return err
		}
		return f.check(idShowReverse, true)
	})
	if err != nil {
		return err
	}

	for i := 0; ; i++ {
		button := g.page.byID(fmt.Sprintf(fmtDomainButton, i, i))
		if button == nil {
			return fmt.Errorf("could not find domain %s", name)
		}

		found := domainInRow(button)
		ppfmt.Debugf(pp.EmojiRegistry, "Found domain number %d %s", i, found)
		if found != string(name) {
			continue
		}

		f, err := g.page.form()
		if err != nil {
			return err
		}
		r, err := f.click(button)
		if err != nil {
			return err
		}
		if err := g.do(ctx, ppfmt, "domain details", r); err != nil {
			return err
		}
		g.current, g.onForm = name, false
		return nil
	}
}

// domainInRow reads the domain name from the fourth cell of the row of the button.
func domainInRow(button *html.Node) string {
	tr := ancestor(button, atom.Tr)
	if tr == nil {
		return ""
	}
	cells := children(tr, atom.Td)
	if len(cells) < 4 { //nolint:mnd
		return ""
	}
	return strings.ToLower(text(cells[3]))
}

// parseNameServers reads the name server table. A cell holding an address is the
// glue of the name server in the cell before it.
func parseNameServers(ppfmt pp.PP, table *html.Node) ([]delegation.NameServer, error) {
	var nss []delegation.NameServer
	for _, td := range findAll(table, isTag(atom.Td)) {
		cell := text(td)
		if cell == "" {
			continue
		}
		if addr, err := zonetext.ParseAddress(cell); err == nil {
			if len(nss) == 0 {
				return nil, fmt.Errorf("glue address %s without a name server", cell)
			}
			last := &nss[len(nss)-1]
			if last.Address != "" {
				nss = append(nss, delegation.NameServer{Name: last.Name, Address: addr})
			} else {
				last.Address = addr
			}
			continue
		}
		if name, err := domain.New(cell); err == nil {
			nss = append(nss, delegation.NameServer{Name: name, Address: ""})
			continue
		}
		ppfmt.Debugf(pp.EmojiRegistry, "Skipping name server table cell %q", cell)
	}
	return sliceutil.SortAndCompact(nss, delegation.Compare), nil
}

// GetCurrentDelegation reads the name servers and the DS records shown on the domain details page.
func (g *Gateway) GetCurrentDelegation(ctx context.Context, ppfmt pp.PP, name domain.Name) (delegation.Set, error) {
	const op = "read current delegation"

	if err := g.openDomain(ctx, ppfmt, name); err != nil {
		return delegation.Set{}, failure.Operational(op, name.Describe(), err)
	}

	set := delegation.Set{Origin: name, NameServers: nil, DS: ""}
	if table := g.page.byID(idNameServers); table != nil {
		nss, err := parseNameServers(ppfmt, table)
		if err != nil {
			return delegation.Set{}, failure.Operational(op, name.Describe(), err)
		}
		set.NameServers = nss
	}
	delegation.PrintNameServers(ppfmt, pp.Debug, pp.EmojiRegistry, name, set.NameServers)

	if ds, ok := g.page.textOf(idDSDisplay); ok {
		set.DS = ds
		ppfmt.Debugf(pp.EmojiRegistry, "%s", ds)
	} else {
		ppfmt.Debugf(pp.EmojiRegistry, "No DS records")
	}

	return set, nil
}

// GetCurrentRegistrant reads every field whose id starts with the registrant prefix.
func (g *Gateway) GetCurrentRegistrant(ctx context.Context, ppfmt pp.PP, name domain.Name) (registrant.Record, error) {
	const op = "read current registrant"

	if err := g.openDomain(ctx, ppfmt, name); err != nil {
		return registrant.Record{}, failure.Operational(op, name.Describe(), err)
	}

	var r registrant.Record
	for _, n := range findAll(g.page.doc, func(n *html.Node) bool {
		return strings.HasPrefix(attr(n, "id"), prefixRegistrant)
	}) {
		key := strings.TrimPrefix(attr(n, "id"), prefixRegistrant)
		r.Set(key, text(n))
		ppfmt.Debugf(pp.EmojiRegistry, "%s: %s", key, text(n))
	}
	return r, nil
}

// openForm makes the modification form of the domain the current page.
func (g *Gateway) openForm(ctx context.Context, ppfmt pp.PP, name domain.Name) error {
	if g.current == name && g.onForm {
		return nil
	}
	if err := g.openDomain(ctx, ppfmt, name); err != nil {
		return err
	}
	if err := g.fill(ctx, ppfmt, "modification form", idModifyButton, nil); err != nil {
		return err
	}
	g.current, g.onForm = name, true

	if _, ok := g.timeFieldPrefix(); !ok {
		return fmt.Errorf("the modification form has no time field")
	}
	return nil
}

func (g *Gateway) timeFieldPrefix() (string, bool) {
	for _, prefix := range modificationPrefixes {
		if g.page.exists(prefix + suffixModificationTime) {
			return prefix, true
		}
	}
	return "", false
}

// GetAvailableSlots lists the modification times offered by the modification form.
func (g *Gateway) GetAvailableSlots(ctx context.Context, ppfmt pp.PP, name domain.Name) ([]string, error) {
	const op = "read modification times"

	if err := g.openForm(ctx, ppfmt, name); err != nil {
		return nil, failure.Operational(op, name.Describe(), err)
	}

	prefix, _ := g.timeFieldPrefix()
	g.slotValue = map[string]string{}
	var slots []string
	for _, o := range g.page.options(prefix + suffixModificationTime) {
		slots = append(slots, o.text)
		g.slotValue[o.text] = o.value
	}
	ppfmt.Debugf(pp.EmojiRegistry, "Modification times: %s", strings.Join(slots, " "))
	return slots, nil
}
