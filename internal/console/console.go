// Package console - построчный интерактивный интерфейс поверх ядра.
// Консоль только разбирает ввод и печатает результат, вся логика в lifecycle.Service.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
	"github.com/vladislavdragonenkov/orderflow/internal/service/lifecycle"
)

const prompt = "orderflow> "

var errUsage = errors.New("usage")

// Console читает команды из in и пишет ответы в out.
type Console struct {
	core   *lifecycle.Service
	in     io.Reader
	out    io.Writer
	logger *log.Entry
}

// New создаёт консоль.
func New(core *lifecycle.Service, in io.Reader, out io.Writer, logger *log.Entry) *Console {
	if logger == nil {
		logger = log.WithField("component", "console")
	}
	return &Console{core: core, in: in, out: out, logger: logger}
}

// Run обрабатывает строки до команды quit, конца ввода или отмены ctx.
// Ошибка отдельной команды печатается и не прерывает цикл.
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	fmt.Fprintln(c.out, "Type 'help' for the list of commands.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		quit, err := c.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Execute выполняет одну команду. quit=true означает завершение сессии.
func (c *Console) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		c.help()
	case "products":
		err = c.products()
	case "customers":
		err = c.customers()
	case "create":
		err = c.create(args)
	case "add":
		err = c.add(args)
	case "status":
		err = c.status(args)
	case "report":
		err = c.report(args)
	case "orders":
		err = c.orders()
	case "transitions":
		err = c.transitions(args)
	case "quit", "exit":
		fmt.Fprintln(c.out, "bye")
		return true, nil
	default:
		err = fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
	if err != nil {
		c.logger.WithError(err).WithField("command", cmd).Debug("command failed")
	}
	return false, err
}

func (c *Console) help() {
	fmt.Fprint(c.out, `Commands:
  products                              list products
  customers                             list customers
  create <customer-id> [order-id]       create an order
  add <order-id> <product-id> <qty>     add a line item
  status <order-id> <status>            request a status change
  report <order-id>                     print the order report
  orders                                list orders
  transitions [from-status]             show allowed transitions
  help                                  show this help
  quit                                  exit
`)
}

func (c *Console) products() error {
	products, err := c.core.Products()
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Fprintf(c.out, "  %-6s %-12s %10s  %s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Category)
	}
	return nil
}

func (c *Console) customers() error {
	customers, err := c.core.Customers()
	if err != nil {
		return err
	}
	for _, cu := range customers {
		fmt.Fprintf(c.out, "  %-6s %-12s %s\n", cu.ID, cu.Name, cu.Address)
	}
	return nil
}

func (c *Console) create(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: create <customer-id> [order-id]", errUsage)
	}
	orderID := ""
	if len(args) == 2 {
		orderID = args[1]
	}
	order, err := c.core.CreateOrderForCustomer(orderID, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "order %s created for %s\n", order.ID(), order.Customer().Name)
	return nil
}

func (c *Console) add(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: add <order-id> <product-id> <qty>", errUsage)
	}
	qty, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("quantity %q is not a number", args[2])
	}
	order, err := c.core.AddItemByID(args[0], args[1], qty)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "added %d x %s, total %s\n", qty, args[1], order.CalculateTotal().StringFixed(2))
	return nil
}

func (c *Console) status(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: status <order-id> <status>", errUsage)
	}
	target, err := domain.ParseOrderStatus(args[1])
	if err != nil {
		return err
	}
	order, old, err := c.core.TransitionByID(args[0], target)
	var subErr *domain.SubscriberError
	switch {
	case errors.As(err, &subErr):
		fmt.Fprintf(c.out, "status changed %s -> %s\n", old.Title(), order.Status().Title())
		fmt.Fprintf(c.out, "warning: notification %q failed: %v\n", subErr.Subscriber, subErr.Err)
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(c.out, "status changed %s -> %s\n", old.Title(), order.Status().Title())
	return nil
}

func (c *Console) report(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: report <order-id>", errUsage)
	}
	text, err := c.core.ReportByID(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, text)
	return nil
}

func (c *Console) orders() error {
	orders, err := c.core.Orders()
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(c.out, "  (no orders)")
		return nil
	}
	for _, o := range orders {
		snap := o.Snapshot()
		fmt.Fprintf(c.out, "  %-36s %-10s %-12s %10s\n", snap.ID, snap.Status.Title(), snap.Customer.Name, snap.Total().StringFixed(2))
	}
	return nil
}

func (c *Console) transitions(args []string) error {
	rules := c.core.Rules()
	if len(args) == 0 {
		for _, p := range rules.Pairs() {
			fmt.Fprintf(c.out, "  %s -> %s\n", p.From.Title(), p.To.Title())
		}
		return nil
	}
	from, err := domain.ParseOrderStatus(args[0])
	if err != nil {
		return err
	}
	next := rules.Next(from)
	if len(next) == 0 {
		fmt.Fprintf(c.out, "  %s is terminal\n", from.Title())
		return nil
	}
	for _, to := range next {
		fmt.Fprintf(c.out, "  %s -> %s\n", from.Title(), to.Title())
	}
	return nil
}
