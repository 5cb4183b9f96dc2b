// Command inquiry submits a contact inquiry to a running site, the same
// way the page's form does.
//
//	inquiry --url http://localhost:8080/api/contact \
//		--name "Jane Tan" --email jane@example.com \
//		--org "Acme School" --message "Hello"
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/khorlingling/site/pkg/contactclient"
	"github.com/khorlingling/site/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		url     string
		verbose bool
		form    contactclient.Form
	)

	cmd := &cobra.Command{
		Use:           "inquiry",
		Short:         "Send a contact inquiry to the site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			return submit(cmd.Context(), logger.New(level), url, &form)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&url, "url", "http://localhost:8080/api/contact", "contact endpoint")
	flags.StringVar(&form.Name, "name", "", "full name")
	flags.StringVar(&form.Email, "email", "", "email address")
	flags.StringVar(&form.Organization, "org", "", "organization or school")
	flags.StringVar(&form.Message, "message", "", "message")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every form state change")

	return cmd
}

func submit(ctx context.Context, log *slog.Logger, url string, form *contactclient.Form) error {
	c := contactclient.New(url, contactclient.WithOnChange(func(s contactclient.Snapshot) {
		log.Debug("form state", slog.String("state", string(s.State)))
	}))
	defer c.Close()

	snap, err := c.Submit(ctx, form)
	if err != nil {
		log.Error("submit failed", slog.Any("error", err))
		return err
	}
	if snap.State != contactclient.StateSuccess {
		log.Error(snap.Message, slog.String("state", string(snap.State)))
		return errors.New(snap.Message)
	}

	log.Info(snap.Message)
	return nil
}
