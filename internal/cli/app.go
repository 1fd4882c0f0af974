// Package cli implements the buylog terminal commands on top of the service container.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// OpenFunc connects the services a command needs. The returned func releases them.
type OpenFunc func(ctx context.Context) (*portssvc.ServiceContainer, func(), error)

// App is shared by every command.
type App struct {
	Open   OpenFunc
	Out    io.Writer
	Logger *slog.Logger
	// Plain disables terminal styling; markdown is written as is.
	Plain bool
}

// Register adds the buylog commands to c.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&addFxCmd{app: app}, "rates")

	c.Register(&addVendorCmd{app: app}, "catalog")
	c.Register(&addProductCmd{app: app}, "catalog")

	c.Register(&addQuoteCmd{app: app}, "quotes")
	c.Register(&setPriceCmd{app: app}, "quotes")
	c.Register(&historyCmd{app: app}, "quotes")

	c.Register(&bestCmd{app: app}, "pricing")
	c.Register(&compareCmd{app: app}, "pricing")
	c.Register(&checkAlertsCmd{app: app}, "pricing")
}

// run opens the services, runs fn, and maps its error to an exit status.
func (a *App) run(ctx context.Context, fn func(ctx context.Context, svc *portssvc.ServiceContainer) error) subcommands.ExitStatus {
	svc, closeFn, err := a.Open(ctx)
	if err != nil {
		a.Logger.Error("Failed to open services", slog.String("error", err.Error()))
		fmt.Fprintf(a.Out, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	if err := fn(ctx, svc); err != nil {
		fmt.Fprintf(a.Out, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, falling back to the raw text.
func (a *App) printMarkdown(md string) {
	if a.Plain {
		fmt.Fprint(a.Out, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(a.Out, out)
			return
		}
	}
	a.Logger.Debug("Falling back to plain markdown", slog.String("error", err.Error()))
	fmt.Fprint(a.Out, md)
}

func usageError(out io.Writer, format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(out, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}

// optionalDecimal parses a flag value, nil when the flag was left empty.
func optionalDecimal(name, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("-%s: %q is not a number", name, value)
	}
	return &d, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
