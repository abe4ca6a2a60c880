package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gosuda/teachat/chat"
)

var rootCmd = &cobra.Command{
	Use:   "teachat",
	Short: "TeaChat: a multi-room websocket chat server",
	RunE:  runServer,
}

var flagPort int

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagPort, "port", 8080, "HTTP port to serve on")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("execute teachat command")
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := chat.NewEngine()
	srv := newWebServer(engine)

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", flagPort),
		Handler:           srv.router(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Info().Msgf("[teachat] listening on http://127.0.0.1:%d", flagPort)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("[teachat] http server stopped")
		}
	}()

	// Operator console; the goroutine dies with the process.
	go newConsole(engine).run(os.Stdin)

	<-ctx.Done()
	log.Info().Msg("[teachat] server closing")
	engine.BroadcastAll(chat.KindUrgent, "⚠️ SERVER IS SHUTTING DOWN")

	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(sctx); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("[teachat] http server shutdown error")
	}
	log.Info().Msg("[teachat] shutdown complete")
	return nil
}
