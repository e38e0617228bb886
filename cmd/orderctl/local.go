package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vladislavdragonenkov/orderflow/internal/app"
	"github.com/vladislavdragonenkov/orderflow/internal/console"
	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

var allowCancellationFlag = &cli.BoolFlag{
	Name:  "allow-cancellation",
	Usage: "allow moving any non-terminal order to cancelled",
}

// localRuntime собирает ядро в процессе из ORDERFLOW_* настроек.
func localRuntime(c *cli.Context) (*app.Runtime, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}
	if c.Bool(allowCancellationFlag.Name) {
		cfg.AllowCancellation = true
	}
	return app.NewRuntime(c.Context, cfg, log.WithField("component", "orderctl"), nil)
}

func shellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "interactive console on an in-process core",
		Flags: []cli.Flag{allowCancellationFlag},
		Action: func(c *cli.Context) error {
			rt, err := localRuntime(c)
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return console.New(rt.Core, c.App.Reader, c.App.Writer, log.WithField("component", "console")).Run(ctx)
		},
	}
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "run the sample order through Created -> Shipped and print its report",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "customer", Value: "C001"},
		},
		Action: func(c *cli.Context) error {
			rt, err := localRuntime(c)
			if err != nil {
				return err
			}
			defer rt.Close()
			return runDemo(rt, c.String("customer"), c.App.Writer)
		},
	}
}

type demoLine struct {
	productID string
	quantity  int
}

var demoItems = []demoLine{{productID: "P001", quantity: 1}, {productID: "P002", quantity: 2}}

var demoPath = []domain.OrderStatus{domain.OrderStatusPaid, domain.OrderStatusPacked, domain.OrderStatusShipped}

func runDemo(rt *app.Runtime, customerID string, out io.Writer) error {
	core := rt.Core
	order, err := core.CreateOrderForCustomer("", customerID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created order %s for %s\n", order.ID(), order.Customer().Name)

	for _, item := range demoItems {
		product, err := core.Product(item.productID)
		if err != nil {
			return err
		}
		if err := core.AddItem(order, product, item.quantity); err != nil {
			return err
		}
		fmt.Fprintf(out, "added %d x %s\n", item.quantity, product.Name)
	}

	for _, target := range demoPath {
		_, old, err := core.RequestTransition(order, target)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s -> %s\n", old.Title(), target.Title())
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, core.GenerateReport(order))
	return nil
}
