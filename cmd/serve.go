package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/adilsezer/lithuaningo-sub000/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		sc := a.Config.Server
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			sc.Addr = addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(a.Engine, a.Logger)
		err = srv.ListenAndServe(ctx, sc.Addr, sc.ReadTimeout, sc.WriteTimeout, sc.ShutdownTimeout)
		if errors.Is(err, http.ErrServerClosed) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}
