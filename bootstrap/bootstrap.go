package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fulldump/box"

	"github.com/fulldump/datagrid/api"
	"github.com/fulldump/datagrid/configuration"
	"github.com/fulldump/datagrid/service"
)

var VERSION = "dev"

var ShutdownTimeout = 10 * time.Second

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	grid := service.NewGrid(&service.Config{
		SampleRows: c.SampleRows,
		Seed:       c.Seed,
		Logger:     log.New(os.Stderr, "GRID: ", log.LstdFlags),
	})

	b := api.Build(grid, VERSION)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	if c.EnableAccessLog {
		b.WithInterceptors(api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)))
	}
	b.WithInterceptors(
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic,
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	c.HttpAddr = ln.Addr().String()
	log.Println("listening on", c.HttpAddr)

	stop = func() {
		// event streams only end when the grid closes their channels
		grid.Close()

		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		err := s.Shutdown(ctx)
		if err != nil {
			log.Println("ERROR: shutdown:", err.Error())
		}
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		fmt.Println("Signal received", sig.String())
		stop()
	}()

	start = func() {
		err := s.Serve(ln)
		if err != nil && err != http.ErrServerClosed {
			fmt.Println(err.Error())
		}
	}

	return
}
