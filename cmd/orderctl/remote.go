package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	orderflowv1 "github.com/vladislavdragonenkov/orderflow/api/orderflow/v1"
)

const remoteTimeout = 10 * time.Second

func remoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "remote",
		Usage: "call a running order-service over gRPC",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   "localhost:50051",
				Usage:   "order-service gRPC address",
				EnvVars: []string{"ORDERFLOW_GRPC_TARGET"},
			},
		},
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "create an order",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "customer", Aliases: []string{"c"}, Required: true},
					&cli.StringFlag{Name: "id", Usage: "order id (generated when empty)"},
				},
				Action: withClient(func(ctx context.Context, c *cli.Context, client orderflowv1.OrderServiceClient) error {
					resp, err := client.CreateOrder(ctx, &orderflowv1.CreateOrderRequest{
						OrderId:    c.String("id"),
						CustomerId: c.String("customer"),
					})
					if err != nil {
						return err
					}
					printOrder(c.App.Writer, resp.GetOrder())
					return nil
				}),
			},
			{
				Name:  "add",
				Usage: "add a line item",
				Flags: []cli.Flag{
					orderFlag(),
					&cli.StringFlag{Name: "product", Aliases: []string{"p"}, Required: true},
					&cli.IntFlag{Name: "qty", Aliases: []string{"q"}, Value: 1},
				},
				Action: withClient(func(ctx context.Context, c *cli.Context, client orderflowv1.OrderServiceClient) error {
					resp, err := client.AddItem(ctx, &orderflowv1.AddItemRequest{
						OrderId:   c.String("order"),
						ProductId: c.String("product"),
						Quantity:  int32(c.Int("qty")),
					})
					if err != nil {
						return err
					}
					printOrder(c.App.Writer, resp.GetOrder())
					return nil
				}),
			},
			{
				Name:  "transition",
				Usage: "request a status change",
				Flags: []cli.Flag{
					orderFlag(),
					&cli.StringFlag{Name: "to", Aliases: []string{"t"}, Required: true},
				},
				Action: withClient(func(ctx context.Context, c *cli.Context, client orderflowv1.OrderServiceClient) error {
					resp, err := client.RequestTransition(ctx, &orderflowv1.RequestTransitionRequest{
						OrderId: c.String("order"),
						Target:  c.String("to"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "%s -> %s\n", resp.PreviousStatus, resp.GetOrder().GetStatus())
					if resp.SubscriberError != "" {
						fmt.Fprintf(c.App.Writer, "warning: %s\n", resp.SubscriberError)
					}
					return nil
				}),
			},
			{
				Name:  "report",
				Usage: "print the order report",
				Flags: []cli.Flag{orderFlag()},
				Action: withClient(func(ctx context.Context, c *cli.Context, client orderflowv1.OrderServiceClient) error {
					resp, err := client.GetReport(ctx, &orderflowv1.GetReportRequest{OrderId: c.String("order")})
					if err != nil {
						return err
					}
					fmt.Fprint(c.App.Writer, resp.GetReport())
					return nil
				}),
			},
		},
	}
}

func orderFlag() cli.Flag {
	return &cli.StringFlag{Name: "order", Aliases: []string{"o"}, Usage: "order id", Required: true}
}

type clientAction func(ctx context.Context, c *cli.Context, client orderflowv1.OrderServiceClient) error

// withClient открывает соединение на время одной команды.
func withClient(action clientAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		conn, err := grpc.NewClient(c.String("addr"), grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(c.Context, remoteTimeout)
		defer cancel()
		return action(ctx, c, orderflowv1.NewOrderServiceClient(conn))
	}
}

func printOrder(w io.Writer, order *orderflowv1.Order) {
	fmt.Fprintf(w, "order %s (%s) status=%s total=%s\n", order.GetId(), order.GetCustomerName(), order.GetStatus(), order.GetTotal())
	for _, item := range order.GetItems() {
		fmt.Fprintf(w, "  %s x%d %s\n", item.GetProductName(), item.GetQuantity(), item.GetLineTotal())
	}
}
