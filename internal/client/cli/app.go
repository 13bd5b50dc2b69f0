package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/client"
	"github.com/dmitrijs2005/clientdesk/internal/client/config"
	"github.com/dmitrijs2005/clientdesk/internal/client/modal"
	"github.com/dmitrijs2005/clientdesk/internal/client/notify"
	"github.com/dmitrijs2005/clientdesk/internal/client/services"
	"github.com/dmitrijs2005/clientdesk/internal/client/store"
	"github.com/dmitrijs2005/clientdesk/internal/client/workflow"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

type App struct {
	config   *config.Config
	ctrl     *workflow.Controller
	notifier *notify.Center
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	loc      *time.Location

	// assumeYes answers every confirmation prompt with yes.
	assumeYes bool
}

// NewApp wires the client from c. User dialogue goes through in and out;
// diagnostics are logged to errOut.
func NewApp(c *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	logger, err := logging.New(errOut, c.LogLevel, "text")
	if err != nil {
		return nil, err
	}

	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   c,
		notifier: notify.NewConsole(out, c.ToastDuration),
		logger:   logger,
		reader:   bufio.NewReader(in),
		out:      out,
		loc:      loc,
	}

	st := store.New(logger)
	svc := services.NewCustomerService(apiClient, st, a.notifier, services.ConfirmFunc(a.confirm), logger,
		services.WithRequestTimeout(c.RequestTimeout))
	a.ctrl = workflow.New(st, svc, logger)

	return a, nil
}

func (a *App) confirm(prompt string) bool {
	if a.assumeYes {
		return true
	}
	return Confirm(a.reader, prompt, a.out)
}

// Run loads the list and starts the interactive shell.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Customer desk (type 'help' for commands)")
	a.logger.Debug(ctx, "starting shell", "api_url", a.config.APIURL)

	_ = a.Reload(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) getStatus() string {
	s := fmt.Sprintf("(%d)", a.ctrl.Count())
	if a.ctrl.ModalState() == modal.Open {
		r, _ := a.ctrl.Dialog()
		s += fmt.Sprintf(" editing %q", r.Name)
	}
	return s
}
