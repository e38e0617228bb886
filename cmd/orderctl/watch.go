package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vladislavdragonenkov/orderflow/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orderflow/internal/report"
)

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "print order status events from Kafka",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "brokers",
				Usage:    "Kafka brokers",
				EnvVars:  []string{"ORDERFLOW_KAFKA_BROKERS"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "topic",
				Value:   kafka.TopicOrderEvents,
				EnvVars: []string{"ORDERFLOW_KAFKA_TOPIC"},
			},
			&cli.StringFlag{Name: "group", Value: "orderctl-watch"},
		},
		Action: func(c *cli.Context) error {
			consumer, err := kafka.NewConsumer(
				c.StringSlice("brokers"),
				c.String("group"),
				[]string{c.String("topic")},
				printEvent(c.App.Writer),
				log.WithField("component", "orderctl-watch"),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := consumer.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			return consumer.Stop()
		},
	}
}

func printEvent(w io.Writer) kafka.EventHandler {
	return func(_ context.Context, event kafka.StatusChangedEvent) error {
		_, err := fmt.Fprintf(w, "%s  %s  %s -> %s  total=%s items=%d\n",
			event.Timestamp.Format(report.TimeLayout), event.OrderID, event.From, event.To, event.Total, event.ItemsCount)
		return err
	}
}
