package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"keyremap/internal/watch"
)

type watchCmd struct {
	*app `no-flag:"true"`

	Debounce time.Duration `long:"debounce" default:"100ms" description:"Quiet period before reloading"`
}

func (c *watchCmd) Execute([]string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := watch.New(c.cfg.SettingsPath, c.report, watch.WithDebounce(c.Debounce))

	return w.Run(ctx)
}

func (c *watchCmd) report(res watch.Result) {
	fmt.Fprintln(c.out, c.ui.header.Render(time.Now().Format(time.TimeOnly)))

	if res.Err != nil {
		fmt.Fprintf(c.out, "%s %v\n", c.ui.errorS.Render("error"), res.Err)
		return
	}

	c.printDiagnostics(res.Diagnostics)
}
