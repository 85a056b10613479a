package janet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/registrant"
	"github.com/ipreg/superglue/internal/registry"
)

// resize makes the form show exactly n-1 secondary name server rows.
func (g *Gateway) resize(ctx context.Context, ppfmt pp.PP, name domain.Name, n int) error {
	want := strconv.Itoa(n - 1)

	current, _ := g.page.selected(idSecondaries)
	ppfmt.Infof(pp.EmojiRegistry, "Number of secondaries for %s is %s", name.Describe(), current)
	if current != want {
		f, err := g.page.form()
		if err != nil {
			return err
		}
		if err := f.set(idSecondaries, want); err != nil {
			return err
		}
		r, err := f.postBack(idSecondaries)
		if err != nil {
			return err
		}
		if err := g.do(ctx, ppfmt, "resized form", r); err != nil {
			return err
		}
	}

	current, _ = g.page.selected(idSecondaries)
	if current != want || (n >= 2 && !g.page.exists(fmt.Sprintf(fmtSecondaryName, n-2))) {
		return fmt.Errorf("unable to resize the name server form to %s secondaries", want)
	}
	return nil
}

// expandDS opens the DS editor, which is collapsed on a fresh form.
func (g *Gateway) expandDS(ctx context.Context, ppfmt pp.PP) error {
	if g.page.exists(idDSText) {
		return nil
	}

	icon := g.page.byID(idDSIcon)
	if icon == nil {
		return fmt.Errorf("missing control %s", idDSIcon)
	}
	button := findFirst(icon, func(n *html.Node) bool { return n.DataAtom == atom.Input })
	if button == nil {
		return fmt.Errorf("missing control %s input", idDSIcon)
	}

	f, err := g.page.form()
	if err != nil {
		return err
	}
	r, err := f.click(button)
	if err != nil {
		return err
	}
	if err := g.do(ctx, ppfmt, "DS editor", r); err != nil {
		return err
	}

	if !g.page.exists(idDSText) {
		return fmt.Errorf("unable to expand the DS form")
	}
	return nil
}

func fillPlan(f *form, plan registry.Plan, prefix string, slotValue string) error {
	if plan.ManagesNameServers() {
		if err := f.set(idPrimaryName, string(plan.Primary.Name)); err != nil {
			return err
		}
		if err := f.set(idPrimaryAddress, plan.Primary.Address); err != nil {
			return err
		}
		for i, ns := range plan.Secondaries {
			if err := f.set(fmt.Sprintf(fmtSecondaryName, i), string(ns.Name)); err != nil {
				return err
			}
			if err := f.set(fmt.Sprintf(fmtSecondaryAddress, i), ns.Address); err != nil {
				return err
			}
		}
	}

	if plan.ManagesDS() {
		if err := f.set(idDSText, plan.DS); err != nil {
			return err
		}
	}

	for _, field := range plan.Registrant.Fields() {
		if err := f.set(prefixFormRegistrant+registrant.FormField(field.Key), field.Value); err != nil {
			return err
		}
	}

	if err := f.set(prefix+suffixModificationTime, slotValue); err != nil {
		return err
	}
	return f.set(prefix+suffixModificationDate, plan.Slot.Date)
}

// SubmitChange fills in the modification form and confirms it.
func (g *Gateway) SubmitChange(ctx context.Context, ppfmt pp.PP, name domain.Name, plan registry.Plan) (string, error) {
	const op = "submit modification"
	wrap := func(err error) error { return failure.Operational(op, name.Describe(), err) }

	if err := g.openForm(ctx, ppfmt, name); err != nil {
		return "", wrap(err)
	}

	if plan.ManagesNameServers() {
		if err := g.resize(ctx, ppfmt, name, len(plan.NameServers())); err != nil {
			return "", wrap(err)
		}
	}
	if plan.ManagesDS() {
		if err := g.expandDS(ctx, ppfmt); err != nil {
			return "", wrap(err)
		}
	}

	prefix, ok := g.timeFieldPrefix()
	if !ok {
		return "", wrap(fmt.Errorf("the modification form has no time field"))
	}
	value := plan.Slot.Time
	if v, ok := g.slotValue[plan.Slot.Time]; ok {
		value = v
	}

	err := g.fill(ctx, ppfmt, "submission", idConfirm, func(f *form) error {
		return fillPlan(f, plan, prefix, value)
	})
	g.current, g.onForm = "", false
	if err != nil {
		return "", wrap(err)
	}

	receipt, ok := g.page.textOf(idSubmissionText)
	if !strings.Contains(g.page.url.Path, pendingTicketsPage) || !ok {
		ppfmt.Debugf(pp.EmojiRegistry, "%s", text(g.page.doc))
		return "", wrap(fmt.Errorf("unexpected response after submitting the modification"))
	}
	return receipt, nil
}
